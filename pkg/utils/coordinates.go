package utils

// Viewport 世界坐标（格，y 向上）与屏幕坐标（像素，y 向下）之间的转换
//
// 镜头中心对准屏幕中心：
//
//	screenX = (worldX - cameraX) * PixelsPerUnit + ScreenWidth/2
//	screenY = ScreenHeight/2 - (worldY - cameraY) * PixelsPerUnit
type Viewport struct {
	CameraX, CameraY float64
	PixelsPerUnit    float64
	ScreenWidth      float64
	ScreenHeight     float64
}

// WorldToScreen 世界坐标转屏幕坐标
func (v Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = (worldX-v.CameraX)*v.PixelsPerUnit + v.ScreenWidth/2
	screenY = v.ScreenHeight/2 - (worldY-v.CameraY)*v.PixelsPerUnit
	return screenX, screenY
}

// ScreenToWorld 屏幕坐标转世界坐标
func (v Viewport) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	if v.PixelsPerUnit == 0 {
		return v.CameraX, v.CameraY
	}
	worldX = (screenX-v.ScreenWidth/2)/v.PixelsPerUnit + v.CameraX
	worldY = (v.ScreenHeight/2-screenY)/v.PixelsPerUnit + v.CameraY
	return worldX, worldY
}

// WorldRectToScreen 把以 (x, y) 为中心、宽高为 w×h（格）的矩形转为屏幕左上角坐标和像素尺寸
func (v Viewport) WorldRectToScreen(x, y, w, h float64) (left, top, width, height float64) {
	left, top = v.WorldToScreen(x-w/2, y+h/2)
	return left, top, w * v.PixelsPerUnit, h * v.PixelsPerUnit
}

// ViewWidth 视野宽度（格）
func (v Viewport) ViewWidth() float64 {
	if v.PixelsPerUnit == 0 {
		return 0
	}
	return v.ScreenWidth / v.PixelsPerUnit
}
