package components

// SettingsPanelComponent 设置面板状态
type SettingsPanelComponent struct {
	IsActive     bool  // 面板是否打开
	OverlayAlpha uint8 // 遮罩透明度 (0-255)

	// 打开后经过的时间（秒），驱动淡入动画
	OpenTime float64
}
