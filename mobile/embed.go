//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要把 data/ 复制到 mobile/ 下。
package mobile

import "embed"

//go:embed data/levels data/chain.yaml data/ant_archetypes.yaml data/audio_cues.yaml data/strings.txt
var dataFS embed.FS
