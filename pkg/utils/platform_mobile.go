//go:build mobile

package utils

// IsMobile 移动端构建恒为 true（隐藏键位提示）
func IsMobile() bool {
	return true
}
