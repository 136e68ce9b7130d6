package config

import (
	"fmt"
	"os"

	"github.com/decker502/antchain/pkg/embedded"
)

// readConfigFile 读取配置文件
// 优先读取嵌入资源；embedded 未初始化（测试、工具）时直接读磁盘
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
