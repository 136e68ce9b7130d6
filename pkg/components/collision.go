package components

// ColliderComponent 轴对齐碰撞盒（中心对齐实体位置）
type ColliderComponent struct {
	Width  float64 // 碰撞盒宽度（格）
	Height float64 // 碰撞盒高度（格）
}

// Bounds 返回以 (x, y) 为中心的碰撞盒边界
func (c *ColliderComponent) Bounds(x, y float64) (left, bottom, right, top float64) {
	return x - c.Width/2, y - c.Height/2, x + c.Width/2, y + c.Height/2
}

// Overlaps 检查两个中心对齐的碰撞盒是否重叠
func Overlaps(p1 *PositionComponent, c1 *ColliderComponent, p2 *PositionComponent, c2 *ColliderComponent) bool {
	l1, b1, r1, t1 := c1.Bounds(p1.X, p1.Y)
	l2, b2, r2, t2 := c2.Bounds(p2.X, p2.Y)
	return r1 >= l2 && l1 <= r2 && t1 >= b2 && b1 <= t2
}

// PlatformComponent 静态平台（关卡地形），只有顶面阻挡
type PlatformComponent struct{}
