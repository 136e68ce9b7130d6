package systems

import (
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
)

// AntMovementSystem 队首移动
// 水平速度 = 移动轴 × 队首速度；非零输入决定朝向；只有站在地面上才能起跳
type AntMovementSystem struct {
	entityManager *ecs.EntityManager
	chain         *AntChainSystem
}

// NewAntMovementSystem 创建移动系统
func NewAntMovementSystem(em *ecs.EntityManager, chain *AntChainSystem) *AntMovementSystem {
	return &AntMovementSystem{
		entityManager: em,
		chain:         chain,
	}
}

// Update 根据输入驱动队首
func (s *AntMovementSystem) Update(in FrameInput) {
	head := s.chain.Head()
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, head)
	if !ok || !ant.Controllable {
		return
	}
	body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, head)
	if !ok {
		return
	}

	body.VelocityX = in.MoveAxis * ant.Speed
	if in.MoveAxis > 0 {
		ant.Direction = 1
	} else if in.MoveAxis < 0 {
		ant.Direction = -1
	}

	if in.Jump && body.OnGround {
		body.VelocityY = ant.JumpImpulse
		body.OnGround = false
	}
}
