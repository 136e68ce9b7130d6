package systems

import (
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
)

// JoinCueID 蚂蚁入队时播放的音效
const JoinCueID = "SOUND_JOIN"

// AntJoinSystem 入队触发
// 未入队蚂蚁的碰撞体与队列中任一蚂蚁重叠时：切换为模拟刚体并交给队列入队。
// 已可控或已入队的蚂蚁被忽略，因此同一只蚂蚁只会入队一次。
type AntJoinSystem struct {
	entityManager *ecs.EntityManager
	chain         *AntChainSystem
	cues          CuePlayer
}

// NewAntJoinSystem 创建入队系统，cues 可为 nil
func NewAntJoinSystem(em *ecs.EntityManager, chain *AntChainSystem, cues CuePlayer) *AntJoinSystem {
	return &AntJoinSystem{
		entityManager: em,
		chain:         chain,
		cues:          cues,
	}
}

// Update 检测重叠并处理入队
// 返回本帧入队的蚂蚁
func (s *AntJoinSystem) Update() []ecs.EntityID {
	if s.chain.Len() == 0 {
		return nil
	}

	var joined []ecs.EntityID
	candidates := ecs.GetEntitiesWith3[*components.AntComponent, *components.PositionComponent, *components.ColliderComponent](s.entityManager)

	for _, id := range candidates {
		ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
		if ant.Controllable || ant.Joined {
			continue
		}

		if !s.touchesChain(id) {
			continue
		}

		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
			body.Simulate()
		}
		if s.chain.Add(id) {
			joined = append(joined, id)
			if s.cues != nil {
				s.cues.PlaySound(JoinCueID)
			}
		}
	}

	if len(joined) > 0 {
		log.Printf("[AntJoinSystem] %d 只蚂蚁入队", len(joined))
	}
	return joined
}

// touchesChain 检查实体是否与队列中任一蚂蚁重叠
func (s *AntJoinSystem) touchesChain(id ecs.EntityID) bool {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	col, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

	for _, member := range s.chain.Members() {
		mPos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, member)
		mCol, ok2 := ecs.GetComponent[*components.ColliderComponent](s.entityManager, member)
		if !ok1 || !ok2 {
			continue
		}
		if components.Overlaps(pos, col, mPos, mCol) {
			return true
		}
	}
	return false
}
