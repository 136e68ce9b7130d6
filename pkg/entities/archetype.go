package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/types"
)

// Archetype 蚂蚁种类的能力集合
// 在创建实体时解析一次，之后实体只保存数值结果
type Archetype interface {
	Kind() types.AntType
	// Speed 基础速度 × 种类速度倍率（格/秒）
	Speed() float64
	// JumpImpulse 基础跳跃 × 种类跳跃倍率（格/秒）
	JumpImpulse() float64
	Color() color.RGBA
	Size() (width, height float64)
	// Cue 成为队首时播放的音效ID
	Cue() string
}

// statArchetype 由属性表驱动的种类实现
type statArchetype struct {
	kind  types.AntType
	base  *config.ArchetypeConfig
	stats config.ArchetypeStats
	color color.RGBA
}

func (a *statArchetype) Kind() types.AntType  { return a.kind }
func (a *statArchetype) Speed() float64       { return a.base.BaseSpeed * a.stats.SpeedModifier }
func (a *statArchetype) JumpImpulse() float64 { return a.base.BaseJump * a.stats.JumpModifier }
func (a *statArchetype) Color() color.RGBA    { return a.color }
func (a *statArchetype) Cue() string          { return a.stats.Cue }

func (a *statArchetype) Size() (float64, float64) {
	return a.stats.Width, a.stats.Height
}

// ResolveArchetype 根据名称解析蚂蚁种类
//
// 返回：
//   - error: 名称不是已知种类，或属性表中没有该种类
func ResolveArchetype(cfg *config.ArchetypeConfig, name string) (Archetype, error) {
	kind, ok := types.ParseAntType(name)
	if !ok {
		return nil, fmt.Errorf("unknown ant archetype %q", name)
	}

	stats, ok := cfg.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("archetype %q has no stats entry", kind)
	}

	c, err := config.ParseHexColor(stats.Color)
	if err != nil {
		return nil, fmt.Errorf("archetype %q: %w", kind, err)
	}

	return &statArchetype{kind: kind, base: cfg, stats: stats, color: c}, nil
}
