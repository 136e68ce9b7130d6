package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
)

var (
	platformColor = color.RGBA{R: 0x5B, G: 0x7A, B: 0x3A, A: 0xFF}
	goalColor     = color.RGBA{R: 0x3A, G: 0x2A, B: 0x1A, A: 0xFF}
)

// LevelEntities 关卡构建结果
type LevelEntities struct {
	Head      ecs.EntityID   // 初始队首
	Chain     []ecs.EntityID // 开局排在队首之后的蚂蚁，按队列顺序
	Ants      []ecs.EntityID // 场景中等待入队的蚂蚁（不含队首）
	Platforms []ecs.EntityID
	RainZones []ecs.EntityID
	Goal      ecs.EntityID
	Camera    ecs.EntityID
}

// BuildLevel 根据关卡配置创建所有实体
// 未知种类的蚂蚁记录错误后跳过，其余内容照常创建
//
// 返回：
//   - error: 队首无法创建时返回错误（关卡无法进行）
func BuildLevel(em *ecs.EntityManager, factory *AntFactory, level *config.LevelConfig, chainCfg *config.ChainConfig) (*LevelEntities, error) {
	result := &LevelEntities{}

	head, ok := factory.NewHeadAnt(level.Head.Type, level.Head.X, level.Head.Y, level.Head.Direction)
	if !ok {
		return nil, fmt.Errorf("level %s: cannot create head ant %q", level.ID, level.Head.Type)
	}
	result.Head = head

	for _, p := range level.Chain {
		if id, ok := factory.NewChainAnt(p.Type, p.X, p.Y, p.Direction); ok {
			result.Chain = append(result.Chain, id)
		}
	}

	for _, p := range level.Ants {
		if id, ok := factory.NewAnt(p.Type, p.X, p.Y, p.Direction); ok {
			result.Ants = append(result.Ants, id)
		}
	}

	for _, p := range level.Platforms {
		result.Platforms = append(result.Platforms, NewPlatformEntity(em, p))
	}

	for _, r := range level.RainZones {
		result.RainZones = append(result.RainZones, NewRainZoneEntity(em, r))
	}

	result.Goal = NewGoalEntity(em, level.Goal)
	result.Camera = NewCameraEntity(em, head, chainCfg.CameraFollowRate)

	log.Printf("[LevelFactory] 关卡 %s 构建完成: 初始队列 %d 只, %d 只待入队蚂蚁, %d 个平台, %d 个雨区",
		level.ID, 1+len(result.Chain), len(result.Ants), len(result.Platforms), len(result.RainZones))
	return result, nil
}

// NewPlatformEntity 创建静态平台
func NewPlatformEntity(em *ecs.EntityManager, r config.RectConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: r.X, Y: r.Y})
	ecs.AddComponent(em, id, &components.ColliderComponent{Width: r.Width, Height: r.Height})
	ecs.AddComponent(em, id, &components.PlatformComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{Color: platformColor, Width: r.Width, Height: r.Height})
	return id
}

// NewRainZoneEntity 创建雨区，初始休眠，等队首进入才开始下雨
func NewRainZoneEntity(em *ecs.EntityManager, r config.RainZoneConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: r.X, Y: r.Y})
	ecs.AddComponent(em, id, &components.ColliderComponent{Width: r.Width, Height: r.Height})
	ecs.AddComponent(em, id, &components.RainZoneComponent{
		Width:        r.Width,
		Height:       r.Height,
		DryDuration:  r.DryDuration,
		RainDuration: r.RainDuration,
		SoakLimit:    r.SoakLimit,
	})
	return id
}

// NewGoalEntity 创建终点
func NewGoalEntity(em *ecs.EntityManager, g config.GoalConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: g.X, Y: g.Y})
	ecs.AddComponent(em, id, &components.ColliderComponent{Width: g.Width, Height: g.Height})
	ecs.AddComponent(em, id, &components.GoalZoneComponent{
		Width:        g.Width,
		Height:       g.Height,
		RequiredAnts: g.RequiredAnts,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Color: goalColor, Width: g.Width, Height: g.Height})
	return id
}

// NewCameraEntity 创建跟随镜头，初始对准目标
func NewCameraEntity(em *ecs.EntityManager, target ecs.EntityID, followRate float64) ecs.EntityID {
	cam := &components.CameraComponent{
		Target:       target,
		FollowRate:   followRate,
		SnapDistance: 0.01,
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, target); ok {
		cam.X, cam.Y = pos.X, pos.Y
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, cam)
	return id
}
