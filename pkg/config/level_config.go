package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/decker502/antchain/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义地形、初始蚂蚁、雨区和终点
type LevelConfig struct {
	ID    string `yaml:"id"`    // 关卡ID，如 "level_1"
	Name  string `yaml:"name"`  // 关卡名称
	Music string `yaml:"music"` // 背景音乐ID，默认 "MUSIC_LEVEL"

	// Width 关卡宽度（格），镜头不会超出 [0, Width]
	Width float64 `yaml:"width"`

	// Head 初始队首
	Head AntPlacement `yaml:"head"`

	// Chain 开局就在队列中的蚂蚁，按顺序排在队首之后，保持摆放位置
	Chain []AntPlacement `yaml:"chain"`

	// Ants 散落在关卡中等待加入的蚂蚁
	Ants []AntPlacement `yaml:"ants"`

	Platforms []RectConfig     `yaml:"platforms"`
	RainZones []RainZoneConfig `yaml:"rainZones"`
	Goal      GoalConfig       `yaml:"goal"`
}

// AntPlacement 蚂蚁的初始位置
// Type 在创建实体时才解析，未知种类只记录错误并跳过
type AntPlacement struct {
	Type      string  `yaml:"type"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction int     `yaml:"direction"` // 1 或 -1，默认 1
}

// RectConfig 以中心点描述的矩形
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RainZoneConfig 雨区配置
type RainZoneConfig struct {
	RectConfig   `yaml:",inline"`
	DryDuration  float64 `yaml:"dry"`       // 干燥期（秒）
	RainDuration float64 `yaml:"rain"`      // 降雨期（秒）
	SoakLimit    float64 `yaml:"soakLimit"` // 队首可承受的淋雨时长（秒）
}

// GoalConfig 终点配置
type GoalConfig struct {
	RectConfig   `yaml:",inline"`
	RequiredAnts int `yaml:"requiredAnts"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
//
// 参数:
//   - filePath: 关卡配置文件路径（如 "data/levels/level_1.yaml"）
//
// 返回:
//   - *LevelConfig: 解析后的关卡配置对象
//   - error: 文件读取、解析或校验失败时返回错误
func LoadLevelConfig(filePath string) (*LevelConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filePath, err)
	}

	level, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("level config %s: %w", filePath, err)
	}
	return level, nil
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var level LevelConfig
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&level)

	if err := validateLevelConfig(&level); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}
	return &level, nil
}

// LevelPath 返回关卡ID对应的配置文件路径
func LevelPath(levelID string) string {
	return path.Join(LevelConfigDir, levelID+".yaml")
}

// ListLevels 返回嵌入资源中所有关卡ID（按名称排序）
func ListLevels() ([]string, error) {
	files, err := embedded.Glob(LevelConfigDir + "/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(path.Base(f), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(level *LevelConfig) {
	if level.Music == "" {
		level.Music = "MUSIC_LEVEL"
	}
	if level.Head.Direction == 0 {
		level.Head.Direction = 1
	}
	for _, list := range [][]AntPlacement{level.Chain, level.Ants} {
		for i := range list {
			if list[i].Direction == 0 {
				list[i].Direction = 1
			}
		}
	}
	if level.Goal.RequiredAnts == 0 {
		level.Goal.RequiredAnts = 1
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(level *LevelConfig) error {
	if level.ID == "" {
		return fmt.Errorf("level ID is required")
	}
	if level.Width <= 0 {
		return fmt.Errorf("level width must be > 0, got %.1f", level.Width)
	}
	if level.Head.Type == "" {
		return fmt.Errorf("head ant type is required")
	}

	for i, p := range level.Placements() {
		if p.Direction != 1 && p.Direction != -1 {
			return fmt.Errorf("ant %d: direction must be 1 or -1, got %d", i, p.Direction)
		}
	}

	for i, p := range level.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d: size must be > 0", i)
		}
	}

	for i, r := range level.RainZones {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("rain zone %d: size must be > 0", i)
		}
		if r.DryDuration <= 0 || r.RainDuration <= 0 {
			return fmt.Errorf("rain zone %d: dry/rain durations must be > 0", i)
		}
		if r.SoakLimit <= 0 {
			return fmt.Errorf("rain zone %d: soakLimit must be > 0", i)
		}
	}

	if level.Goal.Width <= 0 || level.Goal.Height <= 0 {
		return fmt.Errorf("goal size must be > 0")
	}
	if level.Goal.RequiredAnts < 1 {
		return fmt.Errorf("goal requiredAnts must be >= 1, got %d", level.Goal.RequiredAnts)
	}
	return nil
}

// Placements 队首、初始队列和待入队蚂蚁的全部摆放
func (level *LevelConfig) Placements() []AntPlacement {
	all := make([]AntPlacement, 0, 1+len(level.Chain)+len(level.Ants))
	all = append(all, level.Head)
	all = append(all, level.Chain...)
	return append(all, level.Ants...)
}
