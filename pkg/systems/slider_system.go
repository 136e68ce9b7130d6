package systems

import (
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
)

// PointerInput 鼠标/触摸输入接口
// 由 utils.Pointer 实现，测试时可替换为 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsPressed() bool
	IsJustReleased() bool
}

// SliderSystem 滑块交互系统
// 负责处理滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内
//   - 检测鼠标左键按下/拖拽状态
//   - 计算点击位置并转换为 0.0~1.0 的 Value
//   - 更新 SliderComponent.Value 并调用 OnValueChange 回调
type SliderSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
	cues          CuePlayer
}

// NewSliderSystem 创建滑块交互系统，cues 可为 nil
func NewSliderSystem(em *ecs.EntityManager, pointer PointerInput, cues CuePlayer) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		pointer:       pointer,
		cues:          cues,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update() {
	mouseX, mouseY := s.pointer.CursorPosition()
	mousePressed := s.pointer.IsPressed()

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		if !isUIVisible(s.entityManager, entityID) {
			continue
		}

		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		isInSlot := s.isMouseInSlot(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider.SlotWidth, slider.SlotHeight)
		slider.IsHovered = isInSlot

		// 记录拖拽前的状态，用于检测释放
		wasDragging := slider.IsDragging

		if mousePressed {
			if !isInSlot && !slider.IsDragging {
				continue
			}
			slider.IsDragging = true

			newValue := s.calculateValue(float64(mouseX), pos.X, slider.SlotWidth)
			if newValue < 0.0 {
				newValue = 0.0
			}
			if newValue > 1.0 {
				newValue = 1.0
			}

			if newValue != slider.Value {
				slider.Value = newValue
				if slider.OnValueChange != nil {
					slider.OnValueChange(newValue)
				}
			}
			continue
		}

		slider.IsDragging = false

		// 拖拽结束后播放音效，用于试听音量
		if wasDragging && slider.ReleaseSoundID != "" && s.cues != nil {
			s.cues.PlaySound(slider.ReleaseSoundID)
		}
	}
}

// isMouseInSlot 检测鼠标是否在滑槽区域内
func (s *SliderSystem) isMouseInSlot(mouseX, mouseY, slotX, slotY, slotWidth, slotHeight float64) bool {
	return mouseX >= slotX &&
		mouseX <= slotX+slotWidth &&
		mouseY >= slotY &&
		mouseY <= slotY+slotHeight
}

// calculateValue 根据鼠标X坐标计算滑块值
func (s *SliderSystem) calculateValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	return (mouseX - slotX) / slotWidth
}

// isUIVisible 没有 UIElementComponent 的实体视为可见
func isUIVisible(em *ecs.EntityManager, id ecs.EntityID) bool {
	ui, ok := ecs.GetComponent[*components.UIElementComponent](em, id)
	return !ok || ui.Visible
}
