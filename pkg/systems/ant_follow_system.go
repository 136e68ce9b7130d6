package systems

import (
	"math"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
)

// AntFollowSystem 跟随行为
// 每个物理步对所有非队首的已入队蚂蚁执行一次
type AntFollowSystem struct {
	entityManager *ecs.EntityManager
	chain         *AntChainSystem
	config        *config.ChainConfig
}

// NewAntFollowSystem 创建跟随系统
func NewAntFollowSystem(em *ecs.EntityManager, chain *AntChainSystem, cfg *config.ChainConfig) *AntFollowSystem {
	return &AntFollowSystem{
		entityManager: em,
		chain:         chain,
		config:        cfg,
	}
}

// Update 按队列顺序执行跟随，保证前驱先于后继移动
func (s *AntFollowSystem) Update(dt float64) {
	head := s.chain.Head()
	headPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, head)
	if !ok {
		return
	}

	for _, id := range s.chain.Members()[1:] {
		s.Step(id, headPos, dt)
	}
}

// Step 单只蚂蚁的跟随步
//
//  1. 搭桥中：跳过
//  2. 叠塔中：固定在 (队首.x, 前驱.y + TowerOffset)，旋转归零
//  3. 与前驱距离不超过阈值：Following=false，不移动
//  4. 否则朝前驱移动 speed×dt，不越过目标
//  5. 朝向与镜像复制前驱
func (s *AntFollowSystem) Step(id ecs.EntityID, headPos *components.PositionComponent, dt float64) {
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
	if !ok || !ant.IsAttached() || ant.OnBridge {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	predPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, ant.Predecessor)
	if !ok {
		return
	}
	predAnt, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, ant.Predecessor)
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)

	if ant.TowerMode {
		pos.X = headPos.X
		pos.Y = predPos.Y + s.config.TowerOffset
		ant.Following = false
		if body != nil {
			body.Rotation = 0
			body.VelocityX, body.VelocityY = 0, 0
		}
	} else {
		dx := predPos.X - pos.X
		dy := predPos.Y - pos.Y
		dist := math.Hypot(dx, dy)

		if dist <= s.config.FollowThreshold {
			ant.Following = false
			return
		}

		ant.Following = true
		pos.X, pos.Y = moveTowards(pos.X, pos.Y, predPos.X, predPos.Y, ant.Speed*dt)
		if body != nil {
			body.VelocityX, body.VelocityY = 0, 0
		}
	}

	if predAnt != nil {
		ant.Direction = predAnt.Direction
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.FlipX = ant.Direction < 0
		}
	}
}

// moveTowards 向目标移动最多 maxDelta，不越过目标
func moveTowards(x, y, targetX, targetY, maxDelta float64) (float64, float64) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return targetX, targetY
	}
	return x + dx/dist*maxDelta, y + dy/dist*maxDelta
}
