package systems

import (
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
)

// SelectionState 选择模式状态
type SelectionState int

const (
	SelectionInactive SelectionState = iota
	SelectionSelecting
)

func (s SelectionState) String() string {
	if s == SelectionSelecting {
		return "selecting"
	}
	return "inactive"
}

// AntSelectionSystem 选择轮盘
//
// Inactive --选择键--> Selecting：暂停游戏，高亮队首，光标归零
// Selecting --左/右--> Selecting：光标在队列中循环移动
// Selecting --选择键--> Inactive：把光标处的蚂蚁提升为队首，恢复游戏
type AntSelectionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	chain         *AntChainSystem
	cues          CuePlayer

	state  SelectionState
	cursor int
}

// NewAntSelectionSystem 创建选择系统
// cues 可为 nil（不播放音效）
func NewAntSelectionSystem(em *ecs.EntityManager, gs *game.GameState, chain *AntChainSystem, cues CuePlayer) *AntSelectionSystem {
	return &AntSelectionSystem{
		entityManager: em,
		gameState:     gs,
		chain:         chain,
		cues:          cues,
	}
}

// State 返回当前状态
func (s *AntSelectionSystem) State() SelectionState {
	return s.state
}

// Cursor 返回光标位置，只在 Selecting 状态下有意义
func (s *AntSelectionSystem) Cursor() int {
	return s.cursor
}

// Update 处理本帧输入
// 设置面板打开或关卡结束时不响应
func (s *AntSelectionSystem) Update(in FrameInput) {
	if s.gameState.IsGameOver() || s.gameState.IsPausedBy(game.PauseSettings) {
		return
	}

	if s.state == SelectionInactive {
		if in.Select {
			s.Enter()
		}
		return
	}

	if in.Right {
		s.Cycle(true)
	}
	if in.Left {
		s.Cycle(false)
	}
	if in.Select {
		s.Confirm()
	}
}

// Enter 进入选择模式；空队列时忽略
func (s *AntSelectionSystem) Enter() bool {
	if s.state == SelectionSelecting || s.chain.Len() == 0 {
		return false
	}

	s.state = SelectionSelecting
	s.cursor = 0
	s.gameState.Pause(game.PauseSelection)
	s.setHighlight(s.chain.At(0), true)

	log.Printf("[AntSelectionSystem] 进入选择模式 (队列长度 %d)", s.chain.Len())
	return true
}

// Cycle 移动光标
//
// 队首朝右（方向 >= 0）时：右键光标减一（0 回绕到末尾），左键加一（末尾回绕到 0）。
// 朝左时映射相反，保证屏幕上的循环顺序与角色朝向一致。
// 队列只有一只蚂蚁时光标保持为 0。
func (s *AntSelectionSystem) Cycle(right bool) {
	if s.state != SelectionSelecting {
		return
	}
	n := s.chain.Len()
	if n == 0 {
		return
	}

	s.setHighlight(s.chain.At(s.cursor), false)

	step := 1
	if right {
		step = -1
	}
	if s.headDirection() < 0 {
		step = -step
	}
	s.cursor = ((s.cursor+step)%n + n) % n

	s.setHighlight(s.chain.At(s.cursor), true)
}

// Confirm 确认选择：提升光标处的蚂蚁为队首，播放其音效并恢复游戏
// 光标为 0 时只重新确认原队首
func (s *AntSelectionSystem) Confirm() {
	if s.state != SelectionSelecting {
		return
	}

	// 光标处的蚂蚁可能已离队
	if s.cursor >= s.chain.Len() {
		s.cursor = 0
	}
	s.setHighlight(s.chain.At(s.cursor), false)

	head, ok := s.chain.Promote(s.cursor)
	if ok {
		s.setHighlight(head, false)
		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, head); ok && s.cues != nil && ant.CueID != "" {
			s.cues.PlaySound(ant.CueID)
		}
	}

	log.Printf("[AntSelectionSystem] 确认选择: 索引 %d -> 队首 %d", s.cursor, head)

	s.cursor = 0
	s.state = SelectionInactive
	s.gameState.Resume(game.PauseSelection)
}

func (s *AntSelectionSystem) headDirection() int {
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, s.chain.Head())
	if !ok {
		return 1
	}
	return ant.Direction
}

func (s *AntSelectionSystem) setHighlight(id ecs.EntityID, active bool) {
	if hl, ok := ecs.GetComponent[*components.HighlightComponent](s.entityManager, id); ok {
		hl.Active = active
	}
}
