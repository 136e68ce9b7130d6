package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/systems"
	"github.com/decker502/antchain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudTextColor   = color.RGBA{R: 0x20, G: 0x18, B: 0x10, A: 0xFF}
	hudSoakColor   = color.RGBA{R: 0x20, G: 0x40, B: 0x90, A: 0xFF}
	hudBannerColor = color.RGBA{R: 0x20, G: 0x18, B: 0x10, A: 0xB0}
	hudBannerText  = color.RGBA{R: 0xFF, G: 0xD8, B: 0x4A, A: 0xFF}
	resultWinText  = color.NRGBA{R: 0xFF, G: 0xE0, B: 0x60, A: 0xFF}
	resultLoseText = color.NRGBA{R: 0xF0, G: 0x90, B: 0x80, A: 0xFF}
)

// drawHUD 左上角关卡信息，底部操作提示，选择模式时顶部提示条
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	x, y := config.HUDMargin, config.HUDMargin

	name := s.level.Name
	if name == "" {
		name = s.level.ID
	}
	utils.DrawText(screen, s.ctx.Strings.Format("HUD_LEVEL", name), s.face, x, y, utils.AlignLeft, hudTextColor)
	y += config.HUDLineHeight

	roster := s.ctx.Strings.Format("HUD_ROSTER", s.chainSystem.Len(), s.goalSystem.RequiredAnts())
	utils.DrawText(screen, roster, s.face, x, y, utils.AlignLeft, hudTextColor)
	y += config.HUDLineHeight

	if soak := s.rainSystem.SoakRatio(); soak > 0 {
		pct := int(math.Round(soak * 100))
		utils.DrawText(screen, s.ctx.Strings.Format("HUD_SOAK", pct), s.face, x, y, utils.AlignLeft, hudSoakColor)
	}

	// 键位提示只在有键盘的桌面端显示
	if !utils.IsMobile() {
		lines := utils.WrapText(s.ctx.Strings.Get("HUD_HELP"), s.face, float64(config.GameWindowWidth)-2*config.HUDMargin)
		helpY := float64(config.GameWindowHeight) - config.HUDMargin - float64(len(lines))*config.HUDLineHeight
		for i, line := range lines {
			utils.DrawText(screen, line, s.face, x, helpY+float64(i)*config.HUDLineHeight, utils.AlignLeft, hudTextColor)
		}
	}

	if s.selectionSystem.State() == systems.SelectionSelecting {
		s.drawBanner(screen, s.ctx.Strings.Get("HUD_SELECTING"))
	}
}

// drawBanner 屏幕顶部居中的半透明提示条
func (s *GameScene) drawBanner(screen *ebiten.Image, msg string) {
	w := utils.MeasureText(msg, s.face) + 2*config.HUDMargin
	x := (float64(config.GameWindowWidth) - w) / 2
	vector.FillRect(screen, float32(x), float32(config.HUDBannerY), float32(w), float32(config.HUDBannerHeight), hudBannerColor, false)

	textY := config.HUDBannerY + (config.HUDBannerHeight-13)/2
	utils.DrawText(screen, msg, s.face, float64(config.GameWindowWidth)/2, textY, utils.AlignCenter, hudBannerText)
}

// drawGameResultOverlay 关卡结束后的遮罩和结算文字，遮罩随时间淡入
func (s *GameScene) drawGameResultOverlay(screen *ebiten.Image) {
	t := utils.EaseOutCubic(utils.Clamp01(s.gameOverTime / config.ResultOverlayFadeDuration))
	alpha := uint8(float64(config.ResultOverlayAlpha) * t)
	vector.FillRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, color.RGBA{A: alpha}, false)

	key, clr := "HUD_LOSE", resultLoseText
	if s.gameState.Result() == game.ResultWin {
		key, clr = "HUD_WIN", resultWinText
	}
	clr.A = uint8(255 * t)

	utils.DrawText(screen, s.ctx.Strings.Get(key), s.face,
		float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2-6,
		utils.AlignCenter, clr)
}
