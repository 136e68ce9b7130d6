package systems

import (
	"log"
	"slices"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
)

// CuePlayer 按名称播放音效的服务
// 由 game.AudioManager 实现，测试时可替换为 mock
type CuePlayer interface {
	PlaySound(soundID string) bool
}

// HeadChangedListener 队首变更回调
type HeadChangedListener func(head ecs.EntityID)

// AntChainSystem 蚂蚁队列
//
// 队列是实体ID的有序序列，索引 0 永远是队首（玩家控制）。
// 不变式：重建链接之后，索引 i>0 的蚂蚁的前驱都是索引 i-1 的蚂蚁，队首没有前驱。
// 队列从不销毁实体，只负责入队和离队。
type AntChainSystem struct {
	entityManager *ecs.EntityManager
	config        *config.ChainConfig

	roster    []ecs.EntityID
	listeners []HeadChangedListener
}

// NewAntChainSystem 创建空队列
func NewAntChainSystem(em *ecs.EntityManager, cfg *config.ChainConfig) *AntChainSystem {
	return &AntChainSystem{
		entityManager: em,
		config:        cfg,
		roster:        make([]ecs.EntityID, 0, 8),
	}
}

// OnHeadChanged 注册队首变更回调（镜头重新对准等）
func (s *AntChainSystem) OnHeadChanged(listener HeadChangedListener) {
	s.listeners = append(s.listeners, listener)
}

// Head 返回队首，空队列返回 0
func (s *AntChainSystem) Head() ecs.EntityID {
	if len(s.roster) == 0 {
		return 0
	}
	return s.roster[0]
}

// Members 返回队列副本
func (s *AntChainSystem) Members() []ecs.EntityID {
	return slices.Clone(s.roster)
}

// Len 返回队列长度
func (s *AntChainSystem) Len() int {
	return len(s.roster)
}

// At 返回指定索引的蚂蚁，越界返回 0
func (s *AntChainSystem) At(index int) ecs.EntityID {
	if index < 0 || index >= len(s.roster) {
		return 0
	}
	return s.roster[index]
}

// IndexOf 返回蚂蚁在队列中的索引，不在队列中返回 -1
func (s *AntChainSystem) IndexOf(id ecs.EntityID) int {
	return slices.Index(s.roster, id)
}

// Contains 蚂蚁是否在队列中
func (s *AntChainSystem) Contains(id ecs.EntityID) bool {
	return s.IndexOf(id) >= 0
}

// Add 把蚂蚁加入队尾
//
// 空队列时直接成为队首。否则：
//   - 前驱设为原队尾
//   - 速度复制队首的速度
//   - 放到队首身后：队首朝右（方向 >= 0）时偏移 -JoinOffset，朝左时 +JoinOffset
//
// 已在队列中或缺少组件时返回 false
func (s *AntChainSystem) Add(id ecs.EntityID) bool {
	if s.Contains(id) {
		return false
	}

	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
	if !ok {
		log.Printf("[AntChainSystem] 警告: 实体 %d 没有 AntComponent，无法入队", id)
		return false
	}

	if len(s.roster) == 0 {
		s.roster = append(s.roster, id)
		s.makeHead(id, ant)
		log.Printf("[AntChainSystem] 蚂蚁 %d (%s) 成为队首", id, ant.Archetype)
		s.notifyHeadChanged()
		return true
	}

	head := s.roster[0]
	headAnt, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, head)
	headPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, head)

	ant.Predecessor = s.roster[len(s.roster)-1]
	ant.Speed = headAnt.Speed
	ant.Joined = true
	ant.Controllable = false
	ant.Following = false

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok && headPos != nil {
		offset := -s.config.JoinOffset
		if headAnt.Direction < 0 {
			offset = s.config.JoinOffset
		}
		pos.X = headPos.X + offset
		pos.Y = headPos.Y
	}

	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
		body.VelocityX, body.VelocityY = 0, 0
	}

	s.roster = append(s.roster, id)
	log.Printf("[AntChainSystem] 蚂蚁 %d (%s) 入队，队列长度 %d", id, ant.Archetype, len(s.roster))
	return true
}

// Attach 把已摆放好的蚂蚁接到队尾，不改变位置
// 用于关卡开局的初始队列；空队列时与 Add 相同（成为队首）
// 已在队列中或缺少组件时返回 false
func (s *AntChainSystem) Attach(id ecs.EntityID) bool {
	if len(s.roster) == 0 {
		return s.Add(id)
	}
	if s.Contains(id) {
		return false
	}
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
	if !ok {
		log.Printf("[AntChainSystem] 警告: 实体 %d 没有 AntComponent，无法入队", id)
		return false
	}

	headAnt, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, s.roster[0])
	ant.Predecessor = s.roster[len(s.roster)-1]
	ant.Speed = headAnt.Speed
	ant.Joined = true
	ant.Controllable = false
	ant.Following = false
	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
		body.VelocityX, body.VelocityY = 0, 0
	}

	s.roster = append(s.roster, id)
	return true
}

// Remove 让蚂蚁离队
// 清除前驱和速度，后继蚂蚁重新链接到被移除蚂蚁的前驱；移除队首时下一只成为队首
func (s *AntChainSystem) Remove(id ecs.EntityID) bool {
	index := s.IndexOf(id)
	if index < 0 {
		return false
	}

	if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id); ok {
		ant.Predecessor = 0
		ant.Speed = 0
		ant.Joined = false
		ant.Controllable = false
		ant.Following = false
		ant.TowerMode = false
		ant.OnBridge = false
	}
	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
		body.FreezePosition = false
		body.FreezeRotation = false
	}
	if hl, ok := ecs.GetComponent[*components.HighlightComponent](s.entityManager, id); ok {
		hl.Active = false
	}

	s.roster = slices.Delete(s.roster, index, index+1)
	log.Printf("[AntChainSystem] 蚂蚁 %d 离队，队列长度 %d", id, len(s.roster))

	if len(s.roster) == 0 {
		return true
	}

	if index == 0 {
		newHead := s.roster[0]
		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, newHead); ok {
			s.makeHead(newHead, ant)
		}
		s.RebuildLinks()
		s.notifyHeadChanged()
		return true
	}

	s.RebuildLinks()
	return true
}

// Promote 把索引 k 的蚂蚁提升为队首
//
// 交换协议：
//  1. 原队首取消可控，速度清零
//  2. 交换两只蚂蚁的位置
//  3. 交换两只蚂蚁在队列中的位置
//  4. 新队首清除前驱、设为可控
//  5. 从索引 1 开始重建链接
//
// k == 0 时只重新确认队首。返回新队首；k 越界时返回 0, false
func (s *AntChainSystem) Promote(k int) (ecs.EntityID, bool) {
	if k < 0 || k >= len(s.roster) {
		return 0, false
	}

	oldHead := s.roster[0]
	if k != 0 {
		candidate := s.roster[k]

		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, oldHead); ok {
			ant.Controllable = false
		}
		// 原队首交出控制后不再保留移动速度，否则会被物理系统继续推着走
		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, oldHead); ok {
			body.VelocityX, body.VelocityY = 0, 0
		}

		posA, okA := ecs.GetComponent[*components.PositionComponent](s.entityManager, candidate)
		posB, okB := ecs.GetComponent[*components.PositionComponent](s.entityManager, oldHead)
		if okA && okB {
			*posA, *posB = *posB, *posA
		}

		s.roster[0], s.roster[k] = s.roster[k], s.roster[0]
	}

	newHead := s.roster[0]
	if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, newHead); ok {
		s.makeHead(newHead, ant)
	}
	s.RebuildLinks()

	if k != 0 {
		log.Printf("[AntChainSystem] 蚂蚁 %d 提升为队首（原队首 %d 移至索引 %d）", newHead, oldHead, k)
		s.notifyHeadChanged()
	}
	return newHead, true
}

// RebuildLinks 从索引 1 开始重建前驱链接，并从队首刷新共享速度
func (s *AntChainSystem) RebuildLinks() {
	if len(s.roster) == 0 {
		return
	}

	headAnt, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, s.roster[0])
	if !ok {
		return
	}
	headAnt.Predecessor = 0

	for i := 1; i < len(s.roster); i++ {
		ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, s.roster[i])
		if !ok {
			continue
		}
		ant.Predecessor = s.roster[i-1]
		ant.Speed = headAnt.Speed
		ant.Controllable = false
	}
}

// makeHead 把蚂蚁设为队首：无前驱、可控、使用自身种类速度
// 队首不参与叠塔/搭桥，身体恢复为可模拟状态
func (s *AntChainSystem) makeHead(id ecs.EntityID, ant *components.AntComponent) {
	ant.Predecessor = 0
	ant.Controllable = true
	ant.Joined = true
	ant.Following = false
	ant.TowerMode = false
	ant.OnBridge = false
	ant.Speed = ant.BaseSpeed

	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
		body.FreezePosition = false
		body.FreezeRotation = false
		if body.Mode != components.BodySimulated {
			body.Simulate()
		}
	}
}

func (s *AntChainSystem) notifyHeadChanged() {
	head := s.Head()
	for _, l := range s.listeners {
		l(head)
	}
}
