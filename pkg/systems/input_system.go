package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputProvider 输入设备抽象
// 每帧只轮询一次；测试时可替换为 mock
type InputProvider interface {
	// MoveAxis 水平移动轴，-1 ~ 1
	MoveAxis() float64
	LeftPressed() bool
	RightPressed() bool
	SelectPressed() bool
	JumpPressed() bool
	TowerPressed() bool
	BridgePressed() bool
	SettingsPressed() bool
	RestartPressed() bool
	ContinuePressed() bool
}

// FrameInput 单帧输入快照
type FrameInput struct {
	MoveAxis float64
	Left     bool
	Right    bool
	Select   bool
	Jump     bool
	Tower    bool
	Bridge   bool
	Settings bool
	Restart  bool
	Continue bool
}

// InputSystem 每帧开始时轮询输入设备，其他系统读取同一份快照
type InputSystem struct {
	provider InputProvider
	frame    FrameInput
}

// NewInputSystem 创建输入系统
func NewInputSystem(provider InputProvider) *InputSystem {
	return &InputSystem{provider: provider}
}

// Update 轮询输入设备
func (s *InputSystem) Update() {
	p := s.provider
	s.frame = FrameInput{
		MoveAxis: clampAxis(p.MoveAxis()),
		Left:     p.LeftPressed(),
		Right:    p.RightPressed(),
		Select:   p.SelectPressed(),
		Jump:     p.JumpPressed(),
		Tower:    p.TowerPressed(),
		Bridge:   p.BridgePressed(),
		Settings: p.SettingsPressed(),
		Restart:  p.RestartPressed(),
		Continue: p.ContinuePressed(),
	}
}

// Frame 返回本帧输入快照
func (s *InputSystem) Frame() FrameInput {
	return s.frame
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// EbitenInput 键盘和手柄输入
//
// 键位：
//   - 方向键 / A D：移动；选择模式下左右切换
//   - 空格 / 上 / W：跳跃
//   - Tab：进入/确认选择
//   - T：叠塔  B：搭桥  Esc：设置面板
//   - R：重新开始  Enter：下一关
type EbitenInput struct {
	gamepads []ebiten.GamepadID
}

// NewEbitenInput 创建 Ebitengine 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (e *EbitenInput) MoveAxis() float64 {
	axis := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		axis--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		axis++
	}
	if axis != 0 {
		return axis
	}

	// 手柄左摇杆（带死区）
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if v > 0.25 || v < -0.25 {
			return v
		}
	}
	return 0
}

func (e *EbitenInput) LeftPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonLeftLeft)
}

func (e *EbitenInput) RightPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonLeftRight)
}

func (e *EbitenInput) SelectPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonRightTop)
}

func (e *EbitenInput) JumpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonRightBottom)
}

func (e *EbitenInput) TowerPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyT) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonRightLeft)
}

func (e *EbitenInput) BridgePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyB) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonRightRight)
}

func (e *EbitenInput) SettingsPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		e.gamepadJustPressed(ebiten.StandardGamepadButtonCenterRight)
}

func (e *EbitenInput) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func (e *EbitenInput) ContinuePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func (e *EbitenInput) gamepadJustPressed(button ebiten.StandardGamepadButton) bool {
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
			return true
		}
	}
	return false
}

// ScriptedInput 按帧回放的输入序列（无窗口模拟和测试用）
// 序列结束后所有输入保持空闲
type ScriptedInput struct {
	frames []FrameInput
	cursor int
	cur    FrameInput
}

// NewScriptedInput 创建脚本输入
func NewScriptedInput(frames []FrameInput) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Advance 前进一帧；应在 InputSystem.Update 之前调用
func (s *ScriptedInput) Advance() {
	if s.cursor < len(s.frames) {
		s.cur = s.frames[s.cursor]
		s.cursor++
		return
	}
	s.cur = FrameInput{}
}

// Done 脚本是否已全部回放
func (s *ScriptedInput) Done() bool {
	return s.cursor >= len(s.frames)
}

func (s *ScriptedInput) MoveAxis() float64     { return s.cur.MoveAxis }
func (s *ScriptedInput) LeftPressed() bool     { return s.cur.Left }
func (s *ScriptedInput) RightPressed() bool    { return s.cur.Right }
func (s *ScriptedInput) SelectPressed() bool   { return s.cur.Select }
func (s *ScriptedInput) JumpPressed() bool     { return s.cur.Jump }
func (s *ScriptedInput) TowerPressed() bool    { return s.cur.Tower }
func (s *ScriptedInput) BridgePressed() bool   { return s.cur.Bridge }
func (s *ScriptedInput) SettingsPressed() bool { return s.cur.Settings }
func (s *ScriptedInput) RestartPressed() bool  { return s.cur.Restart }
func (s *ScriptedInput) ContinuePressed() bool { return s.cur.Continue }
