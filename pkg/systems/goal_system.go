package systems

import (
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
)

const (
	WinCueID = "SOUND_WIN"

	// DefaultKillY 低于此高度的蚂蚁视为掉出关卡
	DefaultKillY = -10.0
)

// GoalSystem 关卡胜负规则
//   - 队首进入终点且队列长度达到要求：胜利
//   - 队首掉出关卡：失败
//   - 跟随的蚂蚁掉出关卡：离队
type GoalSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	chain         *AntChainSystem
	cues          CuePlayer

	KillY float64
}

// NewGoalSystem 创建规则系统，cues 可为 nil
func NewGoalSystem(em *ecs.EntityManager, gs *game.GameState, chain *AntChainSystem, cues CuePlayer) *GoalSystem {
	return &GoalSystem{
		entityManager: em,
		gameState:     gs,
		chain:         chain,
		cues:          cues,
		KillY:         DefaultKillY,
	}
}

// Update 检查胜负
func (s *GoalSystem) Update() {
	if s.gameState.IsGameOver() {
		return
	}

	s.dropFallen()

	head := s.chain.Head()
	headPos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, head)
	headCol, ok2 := ecs.GetComponent[*components.ColliderComponent](s.entityManager, head)
	if !ok1 || !ok2 {
		return
	}

	if headPos.Y < s.KillY {
		log.Printf("[GoalSystem] 队首 %d 掉出关卡", head)
		if s.gameState.EndGame(game.ResultLose) && s.cues != nil {
			s.cues.PlaySound(LoseCueID)
		}
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.GoalZoneComponent, *components.PositionComponent](s.entityManager) {
		goal, _ := ecs.GetComponent[*components.GoalZoneComponent](s.entityManager, id)
		goalPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !components.Overlaps(headPos, headCol, goalPos, &components.ColliderComponent{Width: goal.Width, Height: goal.Height}) {
			continue
		}
		if s.chain.Len() < goal.RequiredAnts {
			continue
		}

		log.Printf("[GoalSystem] 到达终点，队列长度 %d / %d", s.chain.Len(), goal.RequiredAnts)
		if s.gameState.EndGame(game.ResultWin) && s.cues != nil {
			s.cues.PlaySound(WinCueID)
		}
		return
	}
}

// dropFallen 让掉出关卡的跟随蚂蚁离队，并变回静止的触发器
func (s *GoalSystem) dropFallen() {
	if s.chain.Len() < 2 {
		return
	}
	for _, id := range s.chain.Members()[1:] {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok || pos.Y >= s.KillY {
			continue
		}
		s.chain.Remove(id)
		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok {
			body.Mode = components.BodyKinematic
			body.IsTrigger = true
			body.GravityScale = 0
			body.VelocityX, body.VelocityY = 0, 0
		}
		log.Printf("[GoalSystem] 蚂蚁 %d 掉出关卡，已离队", id)
	}
}

// RequiredAnts 返回过关所需的队列长度（界面显示用），没有终点时返回 0
func (s *GoalSystem) RequiredAnts() int {
	for _, id := range ecs.GetEntitiesWith1[*components.GoalZoneComponent](s.entityManager) {
		goal, _ := ecs.GetComponent[*components.GoalZoneComponent](s.entityManager, id)
		return goal.RequiredAnts
	}
	return 0
}
