package systems

import (
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
)

const (
	TowerCueID  = "SOUND_TOWER"
	BridgeCueID = "SOUND_BRIDGE"
)

// AntFormationSystem 叠塔与搭桥
//
// 叠塔：所有跟随中的蚂蚁切换 TowerMode，由跟随系统叠在队首正上方；进入叠塔会解除搭桥。
// 搭桥：所有跟随中的蚂蚁切换 OnBridge；进入时在队首前方脚下依次排开并冻结，
// 物理系统把它们当作可站立的平台。只有队首站在地面上时才能搭桥。
type AntFormationSystem struct {
	entityManager *ecs.EntityManager
	chain         *AntChainSystem
	cues          CuePlayer
}

// NewAntFormationSystem 创建阵型系统，cues 可为 nil
func NewAntFormationSystem(em *ecs.EntityManager, chain *AntChainSystem, cues CuePlayer) *AntFormationSystem {
	return &AntFormationSystem{
		entityManager: em,
		chain:         chain,
		cues:          cues,
	}
}

// Update 处理本帧的阵型输入
func (s *AntFormationSystem) Update(in FrameInput) {
	if in.Tower {
		s.ToggleTower()
	}
	if in.Bridge {
		s.ToggleBridge()
	}
}

// ToggleTower 切换叠塔
// 返回切换后是否处于叠塔状态
func (s *AntFormationSystem) ToggleTower() bool {
	followers := s.followers()
	if len(followers) == 0 {
		return false
	}

	enable := !s.anyInTower(followers)
	for _, id := range followers {
		ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)

		if enable && ant.OnBridge {
			s.setBridge(id, ant, body, false)
		}
		ant.TowerMode = enable
		if body != nil {
			if enable {
				body.GravityScale = 0
				body.VelocityX, body.VelocityY = 0, 0
				body.Rotation = 0
			} else {
				body.GravityScale = 1
			}
		}
	}

	if enable && s.cues != nil {
		s.cues.PlaySound(TowerCueID)
	}
	log.Printf("[AntFormationSystem] 叠塔: %v (%d 只蚂蚁)", enable, len(followers))
	return enable
}

// ToggleBridge 切换搭桥
// 返回切换后是否处于搭桥状态
func (s *AntFormationSystem) ToggleBridge() bool {
	followers := s.followers()
	if len(followers) == 0 {
		return false
	}

	if s.anyOnBridge(followers) {
		for _, id := range followers {
			ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
			body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
			s.setBridge(id, ant, body, false)
		}
		log.Printf("[AntFormationSystem] 拆桥 (%d 只蚂蚁)", len(followers))
		return false
	}

	head := s.chain.Head()
	headAnt, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, head)
	headPos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, head)
	headCol, ok2 := ecs.GetComponent[*components.ColliderComponent](s.entityManager, head)
	headBody, ok3 := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, head)
	if !ok1 || !ok2 || !ok3 || !headBody.OnGround {
		return false
	}

	dir := 1.0
	if headAnt.Direction < 0 {
		dir = -1
	}

	// 从队首前沿开始，按队列顺序首尾相接
	edge := headPos.X + dir*headCol.Width/2
	footY := headPos.Y - headCol.Height/2

	for _, id := range followers {
		ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, ok2 := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)
		if !ok || !ok2 {
			continue
		}

		pos.X = edge + dir*col.Width/2
		pos.Y = footY - col.Height/2
		edge += dir * col.Width

		ant.TowerMode = false
		ant.Direction = headAnt.Direction
		s.setBridge(id, ant, body, true)
	}

	if s.cues != nil {
		s.cues.PlaySound(BridgeCueID)
	}
	log.Printf("[AntFormationSystem] 搭桥 (%d 只蚂蚁)", len(followers))
	return true
}

func (s *AntFormationSystem) setBridge(id ecs.EntityID, ant *components.AntComponent, body *components.PhysicsBodyComponent, on bool) {
	ant.OnBridge = on
	ant.Following = false
	if body == nil {
		return
	}
	body.FreezePosition = on
	body.FreezeRotation = on
	body.VelocityX, body.VelocityY = 0, 0
	body.Rotation = 0
	if on {
		body.GravityScale = 0
	} else {
		body.GravityScale = 1
	}
}

// followers 返回队列中除队首以外的蚂蚁（按队列顺序）
func (s *AntFormationSystem) followers() []ecs.EntityID {
	members := s.chain.Members()
	if len(members) < 2 {
		return nil
	}
	return members[1:]
}

func (s *AntFormationSystem) anyInTower(ids []ecs.EntityID) bool {
	for _, id := range ids {
		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id); ok && ant.TowerMode {
			return true
		}
	}
	return false
}

func (s *AntFormationSystem) anyOnBridge(ids []ecs.EntityID) bool {
	for _, id := range ids {
		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id); ok && ant.OnBridge {
			return true
		}
	}
	return false
}
