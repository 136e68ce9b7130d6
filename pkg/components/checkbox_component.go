package components

// CheckboxComponent 复选框组件
// 用于开关选项（音乐、音效、全屏）
type CheckboxComponent struct {
	// 方框边长（屏幕像素），位置由 PositionComponent 给出（左上角）
	Size float64

	// 当前状态
	IsChecked bool

	// 标签文字
	Label string

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调
}

// UIElementComponent 标记属于某个UI面板的实体
// 面板隐藏时对应系统跳过这些实体
type UIElementComponent struct {
	Panel   string
	Visible bool
}
