//go:build !android

package utils

// EnsureStorageDir 准备设置存储目录
// 桌面平台由 gdata 自行创建目录，这里什么也不做，返回空路径
func EnsureStorageDir() (string, error) {
	return "", nil
}
