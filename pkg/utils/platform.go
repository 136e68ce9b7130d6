//go:build !mobile

package utils

import "os"

// IsMobile 桌面构建返回 false
// 设置 ANTCHAIN_MOBILE_EMULATE=1 可以在桌面上模拟移动端界面
func IsMobile() bool {
	return os.Getenv("ANTCHAIN_MOBILE_EMULATE") == "1"
}
