package systems

import (
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
)

// ClickCueID 复选框点击音效
const ClickCueID = "SOUND_BUTTONCLICK"

// CheckboxSystem 复选框交互系统
// 负责处理复选框的鼠标点击交互
//
// 职责：
//   - 检测鼠标是否在复选框区域内
//   - 鼠标释放时切换 CheckboxComponent.IsChecked
//   - 调用 OnToggle 回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
	cues          CuePlayer
}

// NewCheckboxSystem 创建复选框交互系统，cues 可为 nil
func NewCheckboxSystem(em *ecs.EntityManager, pointer PointerInput, cues CuePlayer) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		pointer:       pointer,
		cues:          cues,
	}
}

// Update 检测点击并切换复选框
func (s *CheckboxSystem) Update() {
	if !s.pointer.IsJustReleased() {
		return
	}
	mouseX, mouseY := s.pointer.CursorPosition()

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		if !isUIVisible(s.entityManager, entityID) {
			continue
		}

		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !s.isMouseInCheckbox(float64(mouseX), float64(mouseY), pos.X, pos.Y, checkbox.Size, checkbox.Size) {
			continue
		}

		checkbox.IsChecked = !checkbox.IsChecked

		if s.cues != nil {
			s.cues.PlaySound(ClickCueID)
		}
		if checkbox.OnToggle != nil {
			checkbox.OnToggle(checkbox.IsChecked)
		}
	}
}

// isMouseInCheckbox 检测鼠标是否在复选框区域内
func (s *CheckboxSystem) isMouseInCheckbox(mouseX, mouseY, checkboxX, checkboxY, width, height float64) bool {
	return mouseX >= checkboxX &&
		mouseX <= checkboxX+width &&
		mouseY >= checkboxY &&
		mouseY <= checkboxY+height
}
