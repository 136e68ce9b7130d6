package systems

import (
	"image/color"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor          = color.RGBA{R: 0x9C, G: 0xC8, B: 0xE8, A: 0xFF}
	platformColor     = color.RGBA{R: 0x6B, G: 0x4A, B: 0x2B, A: 0xFF}
	platformTopColor  = color.RGBA{R: 0x5E, G: 0x9E, B: 0x3A, A: 0xFF}
	rainDryColor      = color.RGBA{R: 0x70, G: 0x80, B: 0x90, A: 0x30}
	rainWetColor      = color.RGBA{R: 0x40, G: 0x58, B: 0x78, A: 0x70}
	rainDropColor     = color.RGBA{R: 0xD0, G: 0xE8, B: 0xFF, A: 0xC0}
	goalColor         = color.RGBA{R: 0xF0, G: 0xD0, B: 0x40, A: 0x60}
	goalOutlineColor  = color.RGBA{R: 0xF0, G: 0xD0, B: 0x40, A: 0xFF}
	antEyeColor       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	headMarkerColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE0}
	bridgeOutlineTint = color.RGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}
)

// 雨滴动画参数
const (
	rainDropSpacing = 0.5  // 雨滴列间距（格）
	rainDropLength  = 0.35 // 雨滴长度（格）
	rainDropSpeed   = 0.25 // 每帧下落距离（格）
)

// RenderSystem 绘制游戏世界
//
// 绘制顺序（从底到顶）：天空 → 雨区 → 平台 → 终点 → 蚂蚁
// 没有美术资源，所有实体用纯色几何图形表示；尺寸来自碰撞体和精灵组件（格）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	chain         *AntChainSystem

	// 渲染帧计数，驱动雨滴动画
	frame int
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, chain *AntChainSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		chain:         chain,
	}
}

// SyncSprites 渲染频率的视觉更新：镜像跟随朝向
// 暂停时也会执行
func (s *RenderSystem) SyncSprites() {
	s.frame++
	for _, id := range ecs.GetEntitiesWith2[*components.AntComponent, *components.SpriteComponent](s.entityManager) {
		ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.FlipX = ant.Direction < 0
	}
}

// Draw 绘制整个世界
func (s *RenderSystem) Draw(screen *ebiten.Image, vp utils.Viewport) {
	screen.Fill(skyColor)
	s.drawRainZones(screen, vp)
	s.drawPlatforms(screen, vp)
	s.drawGoals(screen, vp)
	s.drawAnts(screen, vp)
}

func (s *RenderSystem) drawRainZones(screen *ebiten.Image, vp utils.Viewport) {
	for _, id := range ecs.GetEntitiesWith2[*components.RainZoneComponent, *components.PositionComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.RainZoneComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y, w, h := vp.WorldRectToScreen(pos.X, pos.Y, zone.Width, zone.Height)
		clr := rainDryColor
		if zone.Raining {
			clr = rainWetColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)

		if zone.Raining {
			s.drawRainDrops(screen, vp, pos, zone)
		}
	}
}

// drawRainDrops 在雨区内按列绘制下落的雨滴
func (s *RenderSystem) drawRainDrops(screen *ebiten.Image, vp utils.Viewport, pos *components.PositionComponent, zone *components.RainZoneComponent) {
	left := pos.X - zone.Width/2
	bottom := pos.Y - zone.Height/2
	cols := int(zone.Width / rainDropSpacing)
	span := zone.Height - rainDropLength
	if span <= 0 {
		return
	}

	for i := 0; i < cols; i++ {
		// 每列错开相位，避免雨滴排成一条直线
		phase := float64((i*37)%17) / 17 * span
		fall := phase + float64(s.frame)*rainDropSpeed
		offset := fall - float64(int(fall/span))*span

		x := left + (float64(i)+0.5)*rainDropSpacing
		top := bottom + zone.Height - offset
		sx, sy0 := vp.WorldToScreen(x, top)
		_, sy1 := vp.WorldToScreen(x, top-rainDropLength)
		vector.StrokeLine(screen, float32(sx), float32(sy0), float32(sx), float32(sy1), 1.5, rainDropColor, false)
	}
}

func (s *RenderSystem) drawPlatforms(screen *ebiten.Image, vp utils.Viewport) {
	for _, id := range ecs.GetEntitiesWith3[*components.PlatformComponent, *components.PositionComponent, *components.ColliderComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

		x, y, w, h := vp.WorldRectToScreen(pos.X, pos.Y, col.Width, col.Height)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), platformColor, false)
		vector.FillRect(screen, float32(x), float32(y), float32(w), 3, platformTopColor, false)
	}
}

func (s *RenderSystem) drawGoals(screen *ebiten.Image, vp utils.Viewport) {
	for _, id := range ecs.GetEntitiesWith2[*components.GoalZoneComponent, *components.PositionComponent](s.entityManager) {
		goal, _ := ecs.GetComponent[*components.GoalZoneComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y, w, h := vp.WorldRectToScreen(pos.X, pos.Y, goal.Width, goal.Height)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), goalColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, goalOutlineColor, false)
	}
}

// drawAnts 蚂蚁画成前后两个圆（头和腹部），头朝向移动方向
func (s *RenderSystem) drawAnts(screen *ebiten.Image, vp utils.Viewport) {
	head := s.chain.Head()

	for _, id := range ecs.GetEntitiesWith3[*components.AntComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		ant, _ := ecs.GetComponent[*components.AntComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		cx, cy := vp.WorldToScreen(pos.X, pos.Y)
		w := sprite.Width * vp.PixelsPerUnit
		h := sprite.Height * vp.PixelsPerUnit

		dir := 1.0
		if sprite.FlipX {
			dir = -1
		}

		body := sprite.Color
		if hl, ok := ecs.GetComponent[*components.HighlightComponent](s.entityManager, id); ok && hl.Active {
			body = hl.Tint
		}

		abdomenR := float32(h * 0.5)
		headR := float32(h * 0.35)
		abdomenX := float32(cx - dir*w*0.2)
		headX := float32(cx + dir*w*0.3)

		if ant.OnBridge {
			bx, by, bw, bh := vp.WorldRectToScreen(pos.X, pos.Y, sprite.Width, sprite.Height)
			vector.FillRect(screen, float32(bx), float32(by), float32(bw), float32(bh), body, false)
			vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 1, bridgeOutlineTint, false)
			continue
		}

		vector.FillCircle(screen, abdomenX, float32(cy), abdomenR, body, true)
		vector.FillCircle(screen, headX, float32(cy)-headR*0.3, headR, body, true)
		vector.FillCircle(screen, headX+float32(dir)*headR*0.4, float32(cy)-headR*0.5, headR*0.25, antEyeColor, true)

		if id == head {
			// 队首头顶的小三角标记
			tipY := float32(cy) - abdomenR - 6
			vector.StrokeLine(screen, float32(cx)-4, tipY-5, float32(cx), tipY, 2, headMarkerColor, true)
			vector.StrokeLine(screen, float32(cx)+4, tipY-5, float32(cx), tipY, 2, headMarkerColor, true)
		}
	}
}
