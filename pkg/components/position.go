package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界单位为"格"，Y 轴向上；渲染时由镜头换算成像素
type PositionComponent struct {
	X float64
	Y float64
}
