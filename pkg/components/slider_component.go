package components

// SliderComponent 设置面板里的音量滑动条
type SliderComponent struct {
	// 滑槽尺寸（屏幕像素），位置由 PositionComponent 给出（左上角）
	SlotWidth  float64
	SlotHeight float64
	KnobWidth  float64

	Value float64 // 0..1
	Label string  // 已翻译的标签文字

	IsDragging bool
	IsHovered  bool

	// OnValueChange 拖动过程中每次数值变化都会调用
	OnValueChange func(value float64)

	// ReleaseSoundID 松手时播放，用来试听新音量
	ReleaseSoundID string
}
