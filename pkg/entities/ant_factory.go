package entities

import (
	"image/color"
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
)

// AntFactory 创建蚂蚁实体
type AntFactory struct {
	em         *ecs.EntityManager
	archetypes *config.ArchetypeConfig
	tint       color.RGBA

	resolved map[string]Archetype // 名称 -> 已解析的种类
}

// NewAntFactory 创建蚂蚁工厂
//
// 参数：
//   - em: 实体管理器
//   - archetypes: 种类属性表
//   - chainCfg: 队列参数（用于高亮颜色）
func NewAntFactory(em *ecs.EntityManager, archetypes *config.ArchetypeConfig, chainCfg *config.ChainConfig) *AntFactory {
	tint, err := config.ParseHexColor(chainCfg.HighlightTint)
	if err != nil {
		log.Printf("[AntFactory] 警告: 高亮颜色无效 %q，使用默认值: %v", chainCfg.HighlightTint, err)
		tint = color.RGBA{R: 0xFF, G: 0xD8, B: 0x4A, A: 0xFF}
	}

	return &AntFactory{
		em:         em,
		archetypes: archetypes,
		tint:       tint,
		resolved:   make(map[string]Archetype),
	}
}

// Resolve 解析并缓存种类
func (f *AntFactory) Resolve(name string) (Archetype, error) {
	if a, ok := f.resolved[name]; ok {
		return a, nil
	}
	a, err := ResolveArchetype(f.archetypes, name)
	if err != nil {
		return nil, err
	}
	f.resolved[name] = a
	return a, nil
}

// NewAnt 创建一只未入队的蚂蚁
// 未入队的蚂蚁是运动学触发器：不受重力，碰撞体只用于检测入队
//
// 返回：
//   - ecs.EntityID: 新实体ID
//   - bool: 种类未知时记录错误并返回 false（不创建实体）
func (f *AntFactory) NewAnt(name string, x, y float64, direction int) (ecs.EntityID, bool) {
	archetype, err := f.Resolve(name)
	if err != nil {
		log.Printf("[AntFactory] 错误: 无法创建蚂蚁 (%.1f, %.1f): %v", x, y, err)
		return 0, false
	}

	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	width, height := archetype.Size()
	id := f.em.CreateEntity()

	ecs.AddComponent(f.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(f.em, id, &components.AntComponent{
		Archetype:   archetype.Kind(),
		Direction:   direction,
		BaseSpeed:   archetype.Speed(),
		JumpImpulse: archetype.JumpImpulse(),
		CueID:       archetype.Cue(),
	})
	ecs.AddComponent(f.em, id, &components.PhysicsBodyComponent{
		Mode:      components.BodyKinematic,
		IsTrigger: true,
	})
	ecs.AddComponent(f.em, id, &components.ColliderComponent{Width: width, Height: height})
	ecs.AddComponent(f.em, id, &components.SpriteComponent{
		Color:  archetype.Color(),
		Width:  width,
		Height: height,
		FlipX:  direction < 0,
	})
	ecs.AddComponent(f.em, id, &components.HighlightComponent{Tint: f.tint})

	log.Printf("[AntFactory] 创建蚂蚁 %d: %s (%.1f, %.1f) dir=%d", id, archetype.Kind(), x, y, direction)
	return id, true
}

// NewHeadAnt 创建初始队首：与普通蚂蚁相同，但立即切换为模拟刚体
// 入队（成为队首）由调用方通过队列的 Add 完成
func (f *AntFactory) NewHeadAnt(name string, x, y float64, direction int) (ecs.EntityID, bool) {
	return f.NewChainAnt(name, x, y, direction)
}

// NewChainAnt 创建开局就在队列中的蚂蚁（模拟刚体），链接由队列的 Attach 完成
func (f *AntFactory) NewChainAnt(name string, x, y float64, direction int) (ecs.EntityID, bool) {
	id, ok := f.NewAnt(name, x, y, direction)
	if !ok {
		return 0, false
	}
	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](f.em, id); ok {
		body.Simulate()
	}
	return id, true
}
