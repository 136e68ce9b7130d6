//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开存储之前创建 /data/data/{包名}/saves 并检查可写
// gdata 在 Android 上不会预先创建这个子目录
func EnsureStorageDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("detect android package: %w", err)
	}
	// cmdline 以 NUL 分隔，第一个字段即包名
	pkg := string(bytes.TrimSpace(bytes.SplitN(cmdline, []byte{0}, 2)[0]))
	if pkg == "" {
		return "", fmt.Errorf("detect android package: empty cmdline")
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create saves directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, nil, 0644); err != nil {
		return "", fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	os.Remove(testFile)
	return dir, nil
}
