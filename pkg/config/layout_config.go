package config

// 窗口与渲染布局常量

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 540

	// GameTPS 固定物理步频，Update 每秒调用次数
	GameTPS = 60

	// FixedDeltaTime 固定物理步长（秒）
	FixedDeltaTime = 1.0 / GameTPS
)

// 默认数据文件路径（相对于 data/ 嵌入目录）
const (
	ChainConfigPath     = "data/chain.yaml"
	ArchetypeConfigPath = "data/ant_archetypes.yaml"
	AudioCueConfigPath  = "data/audio_cues.yaml"
	LevelConfigDir      = "data/levels"
)

// 设置面板布局（像素，相对屏幕中心）
const (
	SettingsPanelWidth        = 380.0
	SettingsPanelHeight       = 290.0
	SettingsPanelOverlayAlpha = 160
	SettingsPanelFadeDuration = 0.2 // 淡入时长（秒）

	SettingsTitleOffsetY = -120.0

	SettingsLabelOffsetX  = -160.0
	SettingsSliderOffsetX = -20.0
	SettingsSliderWidth   = 170.0
	SettingsSliderHeight  = 14.0
	SettingsSliderKnob    = 10.0

	SettingsMasterSliderOffsetY = -85.0
	SettingsMusicSliderOffsetY  = -55.0
	SettingsSoundSliderOffsetY  = -25.0

	SettingsCheckboxSize              = 16.0
	SettingsMusicCheckboxOffsetY      = 15.0
	SettingsSoundCheckboxOffsetY      = 45.0
	SettingsFullscreenCheckboxOffsetY = 75.0
)

// 关卡 HUD 布局（像素）
const (
	HUDMargin     = 12.0
	HUDLineHeight = 18.0

	// HUDBannerY 选择模式提示条的顶部位置
	HUDBannerY      = 48.0
	HUDBannerHeight = 26.0

	// ResultOverlayAlpha 结算遮罩最终不透明度
	ResultOverlayAlpha        = 150
	ResultOverlayFadeDuration = 0.6 // 淡入时长（秒）
)
