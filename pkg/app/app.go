// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，桌面入口 main.go 和
// 无窗口模拟器 cmd/chain_sim 共用同一套数据加载。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/scenes"
	"github.com/decker502/antchain/pkg/systems"
	"github.com/decker502/antchain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "antchain"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "level_2"），为空则从设置中的最近关卡或第一关开始
	Level string
}

// GameData 启动时加载的全部数据文件
type GameData struct {
	Chain      *config.ChainConfig
	Archetypes *config.ArchetypeConfig
	Cues       *config.AudioCueConfig
	Strings    *game.GameStrings
	Levels     []string
}

// LoadGameData 加载队列参数、蚂蚁种类、音效配方、界面文本和关卡列表
//
// 调用前应先调用 embedded.Init()；未初始化时从当前目录读取。
func LoadGameData() (*GameData, error) {
	chainCfg, err := config.LoadChainConfig(config.ChainConfigPath)
	if err != nil {
		return nil, fmt.Errorf("队列配置加载失败: %w", err)
	}
	archetypes, err := config.LoadArchetypeConfig(config.ArchetypeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("蚂蚁种类配置加载失败: %w", err)
	}
	cues, err := config.LoadAudioCueConfig(config.AudioCueConfigPath)
	if err != nil {
		return nil, fmt.Errorf("音效配置加载失败: %w", err)
	}
	strs, err := game.LoadGameStrings(game.GameStringsPath)
	if err != nil {
		return nil, fmt.Errorf("界面文本加载失败: %w", err)
	}
	levels, err := config.ListLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels found in %s", config.LevelConfigDir)
	}

	log.Printf("[App] 数据加载完成: %d 种蚂蚁, %d 个音效, %d 条文本, %d 个关卡",
		len(archetypes.Archetypes), len(cues.Cues), strs.Len(), len(levels))
	return &GameData{
		Chain:      chainCfg,
		Archetypes: archetypes,
		Cues:       cues,
		Strings:    strs,
		Levels:     levels,
	}, nil
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	focused                  bool // 上一帧窗口是否有焦点
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	data, err := LoadGameData()
	if err != nil {
		return nil, err
	}

	// 设置存储打不开时降级为仅内存设置
	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (设置不会保存)", err)
	}
	settingsManager := game.NewSettingsManager(storage)

	// 音频上下文采样率必须与音效配方一致
	audioContext := audio.NewContext(data.Cues.SampleRate)
	bank, err := game.NewCueBank(audioContext, data.Cues)
	if err != nil {
		return nil, fmt.Errorf("音效库创建失败: %w", err)
	}
	audioManager := game.NewAudioManager(bank, settingsManager)
	audioManager.PreloadSounds(soundCueIDs(bank))
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetLevelOrder(data.Levels)

	ctx := &scenes.SceneContext{
		SceneManager: sceneManager,
		Audio:        audioManager,
		Settings:     settingsManager,
		Strings:      data.Strings,
		Chain:        data.Chain,
		Archetypes:   data.Archetypes,
		Input:        systems.NewEbitenInput(),
		Pointer:      utils.NewPointer(),
	}
	sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		return scenes.NewGameScene(ctx, levelID)
	})

	levelToLoad := pickStartLevel(cfg.Level, settingsManager.GetSettings().LastLevel, data.Levels)
	log.Printf("[App] Starting level: %s", levelToLoad)
	if !sceneManager.LoadLevel(levelToLoad) {
		return nil, fmt.Errorf("无法加载关卡 %s", levelToLoad)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		focused:         true,
		verbose:         cfg.Verbose,
	}, nil
}

// soundCueIDs 音效库中所有单次音效（不含背景音乐）
func soundCueIDs(bank *game.CueBank) []string {
	var ids []string
	for _, id := range bank.IDs() {
		if kind, _ := bank.Kind(id); kind == config.CueSound {
			ids = append(ids, id)
		}
	}
	return ids
}

// pickStartLevel 启动关卡：命令行指定 > 最近游玩 > 第一关
// 指定的关卡不存在时回退到第一关
func pickStartLevel(requested, last string, levels []string) string {
	for _, candidate := range []string{requested, last} {
		if candidate == "" {
			continue
		}
		for _, id := range levels {
			if id == candidate {
				return id
			}
		}
		log.Printf("[App] Warning: 关卡 %s 不存在", candidate)
	}
	return levels[0]
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.GameTPS 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// 窗口失去焦点时暂停背景音乐
	if focused := ebiten.IsFocused(); focused != a.focused {
		a.focused = focused
		if focused {
			a.audioManager.ResumeMusic()
		} else {
			a.audioManager.PauseMusic()
		}
	}

	// F11 切换全屏，并记入设置
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 让当前场景保存状态
func (a *App) SaveOnExit() bool {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		return s.SaveOnExit()
	}
	if err := a.settingsManager.SaveIfDirty(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
		return false
	}
	return true
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
