package components

import "image/color"

// SpriteComponent 实体的视觉表现
// 没有贴图资源，蚂蚁以圆角矩形 + 眼睛绘制
type SpriteComponent struct {
	Color  color.RGBA
	Width  float64 // 格
	Height float64 // 格

	// FlipX 是否水平镜像（朝左时为 true）
	FlipX bool
}

// HighlightComponent 选择轮盘的高亮状态
// 纯视觉效果：Active 时叠加 Tint，否则恢复原色
type HighlightComponent struct {
	Active bool
	Tint   color.RGBA
}
