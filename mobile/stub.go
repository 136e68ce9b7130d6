//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口，只在 -tags mobile 时有实际内容
package mobile

// Dummy 桌面构建下的空导出，让 gomobile 之外的工具也能解析本包
func Dummy() {}
