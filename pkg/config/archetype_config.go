package config

import (
	"fmt"
	"sort"

	"github.com/decker502/antchain/pkg/types"
	"gopkg.in/yaml.v3"
)

// ArchetypeConfig 蚂蚁种类属性表
//
// 配置文件位置: data/ant_archetypes.yaml
type ArchetypeConfig struct {
	// BaseSpeed 基础移动速度（格/秒）
	BaseSpeed float64 `yaml:"baseSpeed"`

	// BaseJump 基础起跳速度（格/秒）
	BaseJump float64 `yaml:"baseJump"`

	// Archetypes 种类名称 -> 属性修正
	Archetypes map[string]ArchetypeStats `yaml:"archetypes"`
}

// ArchetypeStats 单个种类的属性修正
type ArchetypeStats struct {
	SpeedModifier float64 `yaml:"speedModifier"` // 速度倍率
	JumpModifier  float64 `yaml:"jumpModifier"`  // 跳跃倍率
	Color         string  `yaml:"color"`         // 身体颜色 "#RRGGBB"
	Cue           string  `yaml:"cue"`           // 成为队首时播放的音效ID
	Width         float64 `yaml:"width"`         // 碰撞盒宽度（格）
	Height        float64 `yaml:"height"`        // 碰撞盒高度（格）
}

// LoadArchetypeConfig 加载种类属性表
func LoadArchetypeConfig(path string) (*ArchetypeConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype config: %w", err)
	}
	return ParseArchetypeConfig(data)
}

// ParseArchetypeConfig 从 YAML 数据解析种类属性表
func ParseArchetypeConfig(data []byte) (*ArchetypeConfig, error) {
	var cfg ArchetypeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse archetype config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid archetype config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 基础速度和跳跃必须为正
//   - 种类名称必须可被 types.ParseAntType 识别
//   - 倍率、尺寸为正，颜色格式正确
func (c *ArchetypeConfig) Validate() error {
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be > 0, got %.2f", c.BaseSpeed)
	}
	if c.BaseJump <= 0 {
		return fmt.Errorf("baseJump must be > 0, got %.2f", c.BaseJump)
	}
	if len(c.Archetypes) == 0 {
		return fmt.Errorf("no archetypes defined")
	}

	for _, name := range c.Names() {
		stats := c.Archetypes[name]
		if _, ok := types.ParseAntType(name); !ok {
			return fmt.Errorf("unknown archetype %q", name)
		}
		if stats.SpeedModifier <= 0 || stats.JumpModifier <= 0 {
			return fmt.Errorf("archetype %q: modifiers must be > 0", name)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("archetype %q: size must be > 0", name)
		}
		if _, err := ParseHexColor(stats.Color); err != nil {
			return fmt.Errorf("archetype %q: %w", name, err)
		}
	}
	return nil
}

// Names 返回按字母排序的种类名称
func (c *ArchetypeConfig) Names() []string {
	names := make([]string, 0, len(c.Archetypes))
	for name := range c.Archetypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup 按种类查找属性
func (c *ArchetypeConfig) Lookup(t types.AntType) (ArchetypeStats, bool) {
	stats, ok := c.Archetypes[t.String()]
	return stats, ok
}
