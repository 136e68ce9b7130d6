package game

import (
	"log"
)

// GameResult 关卡结局
type GameResult int

const (
	ResultNone GameResult = iota // 关卡进行中
	ResultWin                    // 到达终点
	ResultLose                   // 头部蚂蚁被雨水淋透等
)

// String 返回结局名称
func (r GameResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "none"
	}
}

// PauseReason 暂停原因
// 不同来源的暂停互不干扰：选择模式和设置面板可以同时持有暂停
type PauseReason string

const (
	PauseSelection PauseReason = "selection"
	PauseSettings  PauseReason = "settings"
)

// GameOverListener 关卡结束回调
type GameOverListener func(result GameResult)

// GameState 一局游戏的会话状态
// 由场景显式创建并传给每个需要它的系统，不是全局单例
type GameState struct {
	LevelID string

	pauseReasons map[PauseReason]bool
	result       GameResult
	listeners    []GameOverListener

	// 已运行的模拟时间（秒），暂停时不累加
	ElapsedTime float64
}

// NewGameState 创建新的会话状态
func NewGameState(levelID string) *GameState {
	return &GameState{
		LevelID:      levelID,
		pauseReasons: make(map[PauseReason]bool),
	}
}

// Pause 以指定原因暂停模拟
func (gs *GameState) Pause(reason PauseReason) {
	if gs.pauseReasons[reason] {
		return
	}
	gs.pauseReasons[reason] = true
	log.Printf("[GameState] 暂停: %s", reason)
}

// Resume 解除指定原因的暂停；其他原因仍然生效
func (gs *GameState) Resume(reason PauseReason) {
	if !gs.pauseReasons[reason] {
		return
	}
	delete(gs.pauseReasons, reason)
	log.Printf("[GameState] 恢复: %s (剩余暂停原因: %d)", reason, len(gs.pauseReasons))
}

// IsPaused 模拟是否被暂停（任一原因即暂停）
func (gs *GameState) IsPaused() bool {
	return len(gs.pauseReasons) > 0
}

// IsPausedBy 是否因指定原因暂停
func (gs *GameState) IsPausedBy(reason PauseReason) bool {
	return gs.pauseReasons[reason]
}

// Tick 累加模拟时间
func (gs *GameState) Tick(dt float64) {
	if gs.IsPaused() || gs.IsGameOver() {
		return
	}
	gs.ElapsedTime += dt
}

// OnGameOver 注册关卡结束回调
func (gs *GameState) OnGameOver(listener GameOverListener) {
	gs.listeners = append(gs.listeners, listener)
}

// EndGame 结束关卡并通知监听者
// 只有第一次调用生效，之后的结局被忽略
func (gs *GameState) EndGame(result GameResult) bool {
	if result == ResultNone || gs.result != ResultNone {
		return false
	}
	gs.result = result
	log.Printf("[GameState] 关卡 %s 结束: %s (用时 %.1fs)", gs.LevelID, result, gs.ElapsedTime)

	for _, l := range gs.listeners {
		l(result)
	}
	return true
}

// IsGameOver 关卡是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.result != ResultNone
}

// Result 返回关卡结局
func (gs *GameState) Result() GameResult {
	return gs.result
}

// SimulationActive 当前帧是否运行物理模拟
func (gs *GameState) SimulationActive() bool {
	return !gs.IsPaused() && !gs.IsGameOver()
}
