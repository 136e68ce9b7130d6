// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 跟踪鼠标/触摸指针
// 触摸优先；每帧开始时调用一次 Update
type Pointer struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
	touch        bool

	// 触摸释放的那一帧已经拿不到位置，使用最后一次触摸位置
	lastTouchX, lastTouchY int
	touchIDs               []ebiten.TouchID
}

// NewPointer 创建指针跟踪器
func NewPointer() *Pointer {
	return &Pointer{}
}

// Update 轮询本帧的指针状态
func (p *Pointer) Update() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	released := inpututil.AppendJustReleasedTouchIDs(nil)

	switch {
	case len(p.touchIDs) > 0:
		p.x, p.y = ebiten.TouchPosition(p.touchIDs[0])
		p.lastTouchX, p.lastTouchY = p.x, p.y
		p.pressed = true
		p.justPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		p.justReleased = false
		p.touch = true
	case len(released) > 0:
		p.x, p.y = p.lastTouchX, p.lastTouchY
		p.pressed = false
		p.justPressed = false
		p.justReleased = true
		p.touch = true
	default:
		p.x, p.y = ebiten.CursorPosition()
		p.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		p.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		p.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		p.touch = false
	}
}

// CursorPosition 当前指针位置（屏幕像素）
func (p *Pointer) CursorPosition() (int, int) { return p.x, p.y }

// IsPressed 指针是否按下（鼠标左键或触摸）
func (p *Pointer) IsPressed() bool { return p.pressed }

// IsJustPressed 本帧是否刚按下
func (p *Pointer) IsJustPressed() bool { return p.justPressed }

// IsJustReleased 本帧是否刚释放
func (p *Pointer) IsJustReleased() bool { return p.justReleased }

// IsTouch 本帧的指针是否来自触摸
func (p *Pointer) IsTouch() bool { return p.touch }
