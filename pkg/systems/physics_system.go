package systems

import (
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
)

// PhysicsSystem 简化的 2D 物理宿主
//
// 只处理模拟刚体：重力积分、落在平台和桥上（只有顶面阻挡）、关卡左右边界。
// 运动学刚体和被冻结的刚体不积分；正在跟随或叠塔的蚂蚁由跟随系统直接定位。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	config        *config.ChainConfig

	// 关卡水平范围（格），maxX <= minX 表示不限制
	minX float64
	maxX float64
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.ChainConfig) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		config:        cfg,
	}
}

// SetBounds 设置关卡水平范围
func (ps *PhysicsSystem) SetBounds(minX, maxX float64) {
	ps.minX, ps.maxX = minX, maxX
}

const landingEpsilon = 1e-6

// solid 可站立的表面
type solid struct {
	id               ecs.EntityID
	left, right, top float64
}

// Update 执行一个物理步
func (ps *PhysicsSystem) Update(dt float64) {
	solids := ps.collectSolids()

	bodies := ecs.GetEntitiesWith3[*components.PhysicsBodyComponent, *components.PositionComponent, *components.ColliderComponent](ps.entityManager)
	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](ps.entityManager, id)
		if body.Mode != components.BodySimulated || body.FreezePosition {
			continue
		}
		if ant, ok := ecs.GetComponent[*components.AntComponent](ps.entityManager, id); ok {
			if ant.OnBridge || ant.TowerMode || (ant.IsAttached() && ant.Following) {
				continue
			}
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](ps.entityManager, id)
		ps.integrate(id, body, pos, col, solids, dt)
	}
}

// integrate 积分单个刚体并处理落地
func (ps *PhysicsSystem) integrate(id ecs.EntityID, body *components.PhysicsBodyComponent, pos *components.PositionComponent, col *components.ColliderComponent, solids []solid, dt float64) {
	body.VelocityY -= ps.config.Gravity * body.GravityScale * dt

	prevBottom := pos.Y - col.Height/2
	pos.X += body.VelocityX * dt
	pos.Y += body.VelocityY * dt

	if ps.maxX > ps.minX {
		half := col.Width / 2
		if pos.X < ps.minX+half {
			pos.X = ps.minX + half
			body.VelocityX = 0
		}
		if pos.X > ps.maxX-half {
			pos.X = ps.maxX - half
			body.VelocityX = 0
		}
	}

	body.OnGround = false
	if body.VelocityY > 0 {
		return
	}

	left, bottom, right, _ := col.Bounds(pos.X, pos.Y)
	for _, s := range solids {
		if s.id == id || right <= s.left || left >= s.right {
			continue
		}
		// 底部穿过表面（上一步在表面之上，或中心仍在表面之上）：放回表面
		if bottom <= s.top && (prevBottom >= s.top-landingEpsilon || pos.Y >= s.top) {
			pos.Y = s.top + col.Height/2
			body.VelocityY = 0
			body.OnGround = true
			return
		}
	}
}

// collectSolids 收集平台和桥上的蚂蚁
func (ps *PhysicsSystem) collectSolids() []solid {
	var solids []solid

	add := func(id ecs.EntityID) {
		pos, ok1 := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		col, ok2 := ecs.GetComponent[*components.ColliderComponent](ps.entityManager, id)
		if !ok1 || !ok2 {
			return
		}
		l, _, r, t := col.Bounds(pos.X, pos.Y)
		solids = append(solids, solid{id: id, left: l, right: r, top: t})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PlatformComponent](ps.entityManager) {
		add(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.AntComponent](ps.entityManager) {
		if ant, _ := ecs.GetComponent[*components.AntComponent](ps.entityManager, id); ant.OnBridge {
			add(id)
		}
	}
	return solids
}
