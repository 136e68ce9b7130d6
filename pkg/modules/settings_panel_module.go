package modules

import (
	"image/color"
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/systems"
	"github.com/decker502/antchain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// settingsPanelName UIElementComponent.Panel 的取值
const settingsPanelName = "settings"

var (
	panelColor        = color.RGBA{R: 0x2A, G: 0x22, B: 0x1C, A: 0xF0}
	panelBorderColor  = color.RGBA{R: 0xC8, G: 0xA8, B: 0x70, A: 0xFF}
	panelTextColor    = color.RGBA{R: 0xF0, G: 0xE8, B: 0xD8, A: 0xFF}
	sliderSlotColor   = color.RGBA{R: 0x50, G: 0x44, B: 0x3A, A: 0xFF}
	sliderFillColor   = color.RGBA{R: 0x8C, G: 0xC0, B: 0x50, A: 0xFF}
	sliderKnobColor   = color.RGBA{R: 0xF8, G: 0xF0, B: 0xE0, A: 0xFF}
	checkboxMarkColor = color.RGBA{R: 0x8C, G: 0xC0, B: 0x50, A: 0xFF}
)

// AudioControls 设置面板驱动的音频开关和音量
// 由 game.AudioManager 实现（同时写回设置）
type AudioControls interface {
	SetMasterVolume(volume float64)
	SetMusicVolume(volume float64)
	SetSoundVolume(volume float64)
	SetMusicEnabled(enabled bool)
	SetSoundEnabled(enabled bool)
}

// SettingsPanelModule 游戏内设置面板
//
// 职责：
//   - Esc 打开/关闭面板；打开期间以 PauseSettings 原因暂停模拟
//   - 总音量/音乐/音效音量滑动条，音乐/音效/全屏复选框
//   - 关闭面板时保存有改动的设置
//
// 滑动条和复选框是普通实体，由 SliderSystem / CheckboxSystem 处理交互；
// 面板关闭时通过 UIElementComponent.Visible 让这些系统跳过它们。
type SettingsPanelModule struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	settingsManager *game.SettingsManager
	audio           AudioControls
	strings         *game.GameStrings

	sliderSystem   *systems.SliderSystem
	checkboxSystem *systems.CheckboxSystem

	panelEntity        ecs.EntityID
	masterSliderEntity ecs.EntityID
	musicSliderEntity  ecs.EntityID
	soundSliderEntity  ecs.EntityID
	musicToggleEntity  ecs.EntityID
	soundToggleEntity  ecs.EntityID
	fullscreenEntity   ecs.EntityID

	face text.Face

	// 全屏切换，测试时可替换
	applyFullscreen func(enabled bool)

	windowWidth  int
	windowHeight int
}

// NewSettingsPanelModule 创建设置面板
//
// 参数:
//   - em: EntityManager 实例
//   - gs: 关卡状态（打开面板时暂停）
//   - sm: 设置管理器（可为 nil，仅使用默认值且不保存）
//   - audio: 音频控制（可为 nil）
//   - strings: 界面文字（可为 nil，显示为 [KEY]）
//   - pointer: 鼠标/触摸输入
//   - cues: 点击音效（可为 nil）
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
func NewSettingsPanelModule(
	em *ecs.EntityManager,
	gs *game.GameState,
	sm *game.SettingsManager,
	audio AudioControls,
	strings *game.GameStrings,
	pointer systems.PointerInput,
	cues systems.CuePlayer,
	windowWidth, windowHeight int,
) *SettingsPanelModule {
	m := &SettingsPanelModule{
		entityManager:   em,
		gameState:       gs,
		settingsManager: sm,
		audio:           audio,
		strings:         strings,
		sliderSystem:    systems.NewSliderSystem(em, pointer, cues),
		checkboxSystem:  systems.NewCheckboxSystem(em, pointer, cues),
		face:            utils.DefaultFace(),
		applyFullscreen: setWindowFullscreen,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}

	m.panelEntity = em.CreateEntity()
	ecs.AddComponent(em, m.panelEntity, &components.SettingsPanelComponent{
		OverlayAlpha: config.SettingsPanelOverlayAlpha,
	})

	m.createUIElements()
	m.layout()
	m.setVisible(false)

	log.Printf("[SettingsPanelModule] Initialized")
	return m
}

// createUIElements 创建滑动条和复选框，初始值取自设置
func (m *SettingsPanelModule) createUIElements() {
	settings := game.DefaultSettings()
	if m.settingsManager != nil {
		settings = m.settingsManager.GetSettings()
	}

	m.masterSliderEntity = m.newSlider(m.text("SETTINGS_MASTER_VOLUME"), settings.MasterVolume, func(v float64) {
		if m.audio != nil {
			m.audio.SetMasterVolume(v)
		}
	})
	m.musicSliderEntity = m.newSlider(m.text("SETTINGS_MUSIC_VOLUME"), settings.MusicVolume, func(v float64) {
		if m.audio != nil {
			m.audio.SetMusicVolume(v)
		}
	})
	m.soundSliderEntity = m.newSlider(m.text("SETTINGS_SOUND_VOLUME"), settings.SoundVolume, func(v float64) {
		if m.audio != nil {
			m.audio.SetSoundVolume(v)
		}
	})

	m.musicToggleEntity = m.newCheckbox(m.text("SETTINGS_MUSIC"), settings.MusicEnabled, func(on bool) {
		log.Printf("[SettingsPanelModule] Music toggled: %v", on)
		if m.audio != nil {
			m.audio.SetMusicEnabled(on)
		}
	})
	m.soundToggleEntity = m.newCheckbox(m.text("SETTINGS_SOUND"), settings.SoundEnabled, func(on bool) {
		log.Printf("[SettingsPanelModule] Sound toggled: %v", on)
		if m.audio != nil {
			m.audio.SetSoundEnabled(on)
		}
	})
	m.fullscreenEntity = m.newCheckbox(m.text("SETTINGS_FULLSCREEN"), settings.Fullscreen, func(on bool) {
		log.Printf("[SettingsPanelModule] Fullscreen toggled: %v", on)
		if m.settingsManager != nil {
			m.settingsManager.SetFullscreen(on)
		}
		if m.applyFullscreen != nil {
			m.applyFullscreen(on)
		}
	})
}

func (m *SettingsPanelModule) newSlider(label string, value float64, onChange func(float64)) ecs.EntityID {
	id := m.entityManager.CreateEntity()
	ecs.AddComponent(m.entityManager, id, &components.PositionComponent{})
	ecs.AddComponent(m.entityManager, id, &components.SliderComponent{
		SlotWidth:      config.SettingsSliderWidth,
		SlotHeight:     config.SettingsSliderHeight,
		KnobWidth:      config.SettingsSliderKnob,
		Value:          value,
		Label:          label,
		OnValueChange:  onChange,
		ReleaseSoundID: systems.ClickCueID,
	})
	ecs.AddComponent(m.entityManager, id, &components.UIElementComponent{Panel: settingsPanelName})
	return id
}

func (m *SettingsPanelModule) newCheckbox(label string, checked bool, onToggle func(bool)) ecs.EntityID {
	id := m.entityManager.CreateEntity()
	ecs.AddComponent(m.entityManager, id, &components.PositionComponent{})
	ecs.AddComponent(m.entityManager, id, &components.CheckboxComponent{
		Size:      config.SettingsCheckboxSize,
		IsChecked: checked,
		Label:     label,
		OnToggle:  onToggle,
	})
	ecs.AddComponent(m.entityManager, id, &components.UIElementComponent{Panel: settingsPanelName})
	return id
}

// layout 按屏幕中心摆放控件（屏幕像素，左上角）
func (m *SettingsPanelModule) layout() {
	cx := float64(m.windowWidth) / 2
	cy := float64(m.windowHeight) / 2

	place := func(id ecs.EntityID, x, y float64) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](m.entityManager, id); ok {
			pos.X, pos.Y = x, y
		}
	}

	sliderX := cx + config.SettingsSliderOffsetX
	place(m.masterSliderEntity, sliderX, cy+config.SettingsMasterSliderOffsetY)
	place(m.musicSliderEntity, sliderX, cy+config.SettingsMusicSliderOffsetY)
	place(m.soundSliderEntity, sliderX, cy+config.SettingsSoundSliderOffsetY)
	place(m.musicToggleEntity, sliderX, cy+config.SettingsMusicCheckboxOffsetY)
	place(m.soundToggleEntity, sliderX, cy+config.SettingsSoundCheckboxOffsetY)
	place(m.fullscreenEntity, sliderX, cy+config.SettingsFullscreenCheckboxOffsetY)
}

// IsOpen 面板是否打开
func (m *SettingsPanelModule) IsOpen() bool {
	panel, ok := ecs.GetComponent[*components.SettingsPanelComponent](m.entityManager, m.panelEntity)
	return ok && panel.IsActive
}

// Open 打开面板并暂停模拟
func (m *SettingsPanelModule) Open() {
	panel, ok := ecs.GetComponent[*components.SettingsPanelComponent](m.entityManager, m.panelEntity)
	if !ok || panel.IsActive {
		return
	}
	panel.IsActive = true
	panel.OpenTime = 0
	m.setVisible(true)
	m.gameState.Pause(game.PauseSettings)
	log.Printf("[SettingsPanelModule] Opened")
}

// Close 关闭面板，恢复模拟并保存设置
func (m *SettingsPanelModule) Close() {
	panel, ok := ecs.GetComponent[*components.SettingsPanelComponent](m.entityManager, m.panelEntity)
	if !ok || !panel.IsActive {
		return
	}
	panel.IsActive = false
	m.setVisible(false)
	m.gameState.Resume(game.PauseSettings)

	if m.settingsManager != nil {
		if err := m.settingsManager.SaveIfDirty(); err != nil {
			log.Printf("[SettingsPanelModule] Warning: Failed to save settings: %v", err)
		}
	}
	log.Printf("[SettingsPanelModule] Closed")
}

// Toggle 切换面板
func (m *SettingsPanelModule) Toggle() {
	if m.IsOpen() {
		m.Close()
	} else {
		m.Open()
	}
}

// Update 处理设置键和控件交互
//
// 参数:
//   - in: 本帧输入快照
//   - deltaTime: 距离上一帧的时间间隔（秒）
func (m *SettingsPanelModule) Update(in systems.FrameInput, deltaTime float64) {
	if in.Settings {
		m.Toggle()
	}

	panel, ok := ecs.GetComponent[*components.SettingsPanelComponent](m.entityManager, m.panelEntity)
	if !ok || !panel.IsActive {
		return
	}
	panel.OpenTime += deltaTime

	m.sliderSystem.Update()
	m.checkboxSystem.Update()
}

func (m *SettingsPanelModule) setVisible(visible bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.UIElementComponent](m.entityManager) {
		ui, _ := ecs.GetComponent[*components.UIElementComponent](m.entityManager, id)
		if ui.Panel == settingsPanelName {
			ui.Visible = visible
		}
	}
}

func (m *SettingsPanelModule) text(key string) string {
	return m.strings.Get(key)
}

// Draw 渲染设置面板
//
// 渲染顺序：
//  1. 半透明遮罩（淡入）
//  2. 面板背景和标题
//  3. 滑动条、复选框及其标签
func (m *SettingsPanelModule) Draw(screen *ebiten.Image) {
	panel, ok := ecs.GetComponent[*components.SettingsPanelComponent](m.entityManager, m.panelEntity)
	if !ok || !panel.IsActive {
		return
	}

	fade := utils.EaseOutCubic(utils.Clamp01(panel.OpenTime / config.SettingsPanelFadeDuration))
	overlay := color.RGBA{A: uint8(float64(panel.OverlayAlpha) * fade)}
	vector.FillRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), overlay, false)

	cx := float64(m.windowWidth) / 2
	cy := float64(m.windowHeight) / 2
	px := float32(cx - config.SettingsPanelWidth/2)
	py := float32(cy - config.SettingsPanelHeight/2)
	vector.FillRect(screen, px, py, config.SettingsPanelWidth, config.SettingsPanelHeight, panelColor, false)
	vector.StrokeRect(screen, px, py, config.SettingsPanelWidth, config.SettingsPanelHeight, 2, panelBorderColor, false)

	utils.DrawText(screen, m.text("SETTINGS_TITLE"), m.face, cx, cy+config.SettingsTitleOffsetY, utils.AlignCenter, panelTextColor)

	m.drawSliders(screen, cx)
	m.drawCheckboxes(screen, cx)
}

func (m *SettingsPanelModule) drawSliders(screen *ebiten.Image, cx float64) {
	for _, id := range []ecs.EntityID{m.masterSliderEntity, m.musicSliderEntity, m.soundSliderEntity} {
		slider, ok1 := ecs.GetComponent[*components.SliderComponent](m.entityManager, id)
		pos, ok2 := ecs.GetComponent[*components.PositionComponent](m.entityManager, id)
		if !ok1 || !ok2 {
			continue
		}

		utils.DrawText(screen, slider.Label, m.face, cx+config.SettingsLabelOffsetX, pos.Y, utils.AlignLeft, panelTextColor)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(slider.SlotWidth), float32(slider.SlotHeight)
		vector.FillRect(screen, x, y, w, h, sliderSlotColor, false)
		vector.FillRect(screen, x, y, w*float32(slider.Value), h, sliderFillColor, false)

		knobX := x + w*float32(slider.Value) - float32(slider.KnobWidth)/2
		vector.FillRect(screen, knobX, y-2, float32(slider.KnobWidth), h+4, sliderKnobColor, false)
	}
}

func (m *SettingsPanelModule) drawCheckboxes(screen *ebiten.Image, cx float64) {
	for _, id := range []ecs.EntityID{m.musicToggleEntity, m.soundToggleEntity, m.fullscreenEntity} {
		checkbox, ok1 := ecs.GetComponent[*components.CheckboxComponent](m.entityManager, id)
		pos, ok2 := ecs.GetComponent[*components.PositionComponent](m.entityManager, id)
		if !ok1 || !ok2 {
			continue
		}

		utils.DrawText(screen, checkbox.Label, m.face, cx+config.SettingsLabelOffsetX, pos.Y, utils.AlignLeft, panelTextColor)

		x, y, size := float32(pos.X), float32(pos.Y), float32(checkbox.Size)
		vector.StrokeRect(screen, x, y, size, size, 2, panelBorderColor, false)
		if checkbox.IsChecked {
			vector.FillRect(screen, x+4, y+4, size-8, size-8, checkboxMarkColor, false)
		}
	}
}

// setWindowFullscreen 切换全屏；退出全屏时恢复逻辑窗口尺寸
func setWindowFullscreen(enabled bool) {
	ebiten.SetFullscreen(enabled)
	if enabled {
		return
	}
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
}
