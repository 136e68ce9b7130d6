package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChainConfig 蚂蚁队列的全局参数
//
// 配置文件位置: data/chain.yaml
type ChainConfig struct {
	// FollowThreshold 跟随阈值（格）：与前驱距离不超过该值时原地不动
	FollowThreshold float64 `yaml:"followThreshold"`

	// TowerOffset 叠塔时相对前驱的竖直偏移（格），正值向上
	TowerOffset float64 `yaml:"towerOffset"`

	// JoinOffset 新成员加入时相对队首的水平偏移（格）
	JoinOffset float64 `yaml:"joinOffset"`

	// Gravity 重力加速度（格/秒²）
	Gravity float64 `yaml:"gravity"`

	// PixelsPerUnit 渲染比例：1 格对应的像素数
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`

	// CameraFollowRate 镜头每秒向目标靠拢的比例
	CameraFollowRate float64 `yaml:"cameraFollowRate"`

	// HighlightTint 选择轮盘高亮颜色，格式 "#RRGGBB"
	HighlightTint string `yaml:"highlightTint"`
}

// DefaultChainConfig 返回内置默认值
func DefaultChainConfig() *ChainConfig {
	return &ChainConfig{
		FollowThreshold:  6.5,
		TowerOffset:      1.0,
		JoinOffset:       3.0,
		Gravity:          30.0,
		PixelsPerUnit:    32.0,
		CameraFollowRate: 4.0,
		HighlightTint:    "#FFD84A",
	}
}

// LoadChainConfig 加载队列配置
//
// 参数:
//   - path: 配置文件路径（如 "data/chain.yaml"）
//
// 返回:
//   - *ChainConfig: 加载成功后的配置结构（缺省字段使用默认值）
//   - error: 加载失败时返回错误
func LoadChainConfig(path string) (*ChainConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain config: %w", err)
	}
	return ParseChainConfig(data)
}

// ParseChainConfig 从 YAML 数据解析队列配置
func ParseChainConfig(data []byte) (*ChainConfig, error) {
	cfg := DefaultChainConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse chain config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *ChainConfig) Validate() error {
	if c.FollowThreshold < 0 {
		return fmt.Errorf("followThreshold must be >= 0, got %.2f", c.FollowThreshold)
	}
	if c.JoinOffset < 0 {
		return fmt.Errorf("joinOffset must be >= 0, got %.2f", c.JoinOffset)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %.2f", c.Gravity)
	}
	if c.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixelsPerUnit must be > 0, got %.2f", c.PixelsPerUnit)
	}
	if c.CameraFollowRate <= 0 {
		return fmt.Errorf("cameraFollowRate must be > 0, got %.2f", c.CameraFollowRate)
	}
	if _, err := ParseHexColor(c.HighlightTint); err != nil {
		return fmt.Errorf("highlightTint: %w", err)
	}
	return nil
}
