package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/entities"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/modules"
	"github.com/decker502/antchain/pkg/systems"
	"github.com/decker502/antchain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PointerDevice 鼠标/触摸设备：每帧先 Update 再读取
type PointerDevice interface {
	systems.PointerInput
	Update()
}

// SceneContext 关卡场景共用的依赖，由 app 创建一次，在关卡之间共享
type SceneContext struct {
	SceneManager *game.SceneManager
	Audio        *game.AudioManager    // 没有音效库时传 NewAudioManager(nil, ...)
	Settings     *game.SettingsManager // 可为 nil
	Strings      *game.GameStrings     // 可为 nil，界面显示 [KEY]

	Chain      *config.ChainConfig
	Archetypes *config.ArchetypeConfig

	Input   systems.InputProvider
	Pointer PointerDevice
}

// GameScene 一个关卡的游戏场景
//
// 每帧（固定步长）执行顺序：
//
//	输入 → 设置面板 → 选择模式 → (未暂停时) 移动 → 物理 → 跟随 → 队形 → 入队 → 雨区 → 胜负 → 镜头
//
// 暂停（选择模式、设置面板）时只跳过模拟部分，输入和界面照常响应。
type GameScene struct {
	ctx   *SceneContext
	level *config.LevelConfig

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	entities      *entities.LevelEntities

	// 系统
	inputSystem     *systems.InputSystem
	chainSystem     *systems.AntChainSystem
	selectionSystem *systems.AntSelectionSystem
	movementSystem  *systems.AntMovementSystem
	physicsSystem   *systems.PhysicsSystem
	followSystem    *systems.AntFollowSystem
	formationSystem *systems.AntFormationSystem
	joinSystem      *systems.AntJoinSystem
	rainSystem      *systems.RainSystem
	goalSystem      *systems.GoalSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem

	settingsPanel *modules.SettingsPanelModule

	viewport utils.Viewport
	face     text.Face

	// 关卡结束后经过的时间，驱动结算遮罩淡入
	gameOverTime float64
}

// NewGameScene 加载关卡配置并创建场景
func NewGameScene(ctx *SceneContext, levelID string) (*GameScene, error) {
	level, err := config.LoadLevelConfig(config.LevelPath(levelID))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelID, err)
	}
	return NewGameSceneFromConfig(ctx, level)
}

// NewGameSceneFromConfig 使用已解析的关卡配置创建场景
func NewGameSceneFromConfig(ctx *SceneContext, level *config.LevelConfig) (*GameScene, error) {
	if ctx == nil || ctx.Chain == nil || ctx.Archetypes == nil || ctx.Input == nil || ctx.Audio == nil {
		return nil, fmt.Errorf("scene context is incomplete")
	}

	s := &GameScene{
		ctx:           ctx,
		level:         level,
		entityManager: ecs.NewEntityManager(),
		gameState:     game.NewGameState(level.ID),
		face:          utils.DefaultFace(),
		viewport: utils.Viewport{
			PixelsPerUnit: ctx.Chain.PixelsPerUnit,
			ScreenWidth:   config.GameWindowWidth,
			ScreenHeight:  config.GameWindowHeight,
		},
	}

	factory := entities.NewAntFactory(s.entityManager, ctx.Archetypes, ctx.Chain)
	built, err := entities.BuildLevel(s.entityManager, factory, level, ctx.Chain)
	if err != nil {
		return nil, err
	}
	s.entities = built

	s.initSystems()
	s.initSettingsPanel()
	s.initRoster()

	s.gameState.OnGameOver(s.onGameOver)

	if ctx.Settings != nil {
		ctx.Settings.SetLastLevel(level.ID)
	}
	ctx.Audio.PlayMusic(level.Music)

	log.Printf("[GameScene] 关卡 %s (%s) 已就绪", level.ID, level.Name)
	return s, nil
}

// Update 固定步长更新
func (s *GameScene) Update(deltaTime float64) {
	if s.ctx.Pointer != nil {
		s.ctx.Pointer.Update()
	}
	s.inputSystem.Update()
	in := s.inputSystem.Frame()

	if s.settingsPanel != nil {
		s.settingsPanel.Update(in, deltaTime)
	}

	if s.gameState.IsGameOver() {
		s.gameOverTime += deltaTime
		s.renderSystem.SyncSprites()
		s.handleGameOverInput(in)
		return
	}

	s.selectionSystem.Update(in)
	s.renderSystem.SyncSprites()

	if s.gameState.SimulationActive() {
		s.movementSystem.Update(in)
		s.physicsSystem.Update(deltaTime)
		s.followSystem.Update(deltaTime)
		s.formationSystem.Update(in)
		s.joinSystem.Update()
		s.rainSystem.Update(deltaTime)
		s.goalSystem.Update()
		s.cameraSystem.Update(deltaTime)
		s.gameState.Tick(deltaTime)
	}

	s.entityManager.RemoveMarkedEntities()
}

// handleGameOverInput 结算界面：R 重新开始，胜利后 Enter 进入下一关
// 设置面板打开时不响应
func (s *GameScene) handleGameOverInput(in systems.FrameInput) {
	if s.settingsPanel != nil && s.settingsPanel.IsOpen() {
		return
	}
	sm := s.ctx.SceneManager
	if sm == nil {
		return
	}

	switch {
	case in.Restart:
		log.Printf("[GameScene] 重新开始关卡 %s", s.level.ID)
		sm.ReloadLevel()
	case in.Continue && s.gameState.Result() == game.ResultWin:
		log.Printf("[GameScene] 进入下一关: %s", sm.NextLevelID())
		sm.LoadNextLevel()
	}
}

// onGameOver 关卡结束：记录通关并停止音乐
func (s *GameScene) onGameOver(result game.GameResult) {
	s.gameOverTime = 0
	s.ctx.Audio.StopMusic()
	if result == game.ResultWin && s.ctx.Settings != nil {
		s.ctx.Settings.MarkLevelCompleted(s.level.ID)
		if err := s.ctx.Settings.SaveIfDirty(); err != nil {
			log.Printf("[GameScene] Warning: 保存进度失败: %v", err)
		}
	}
}

// Draw 绘制世界、HUD 和设置面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.viewport.CameraX, s.viewport.CameraY = s.cameraSystem.Position()
	s.renderSystem.Draw(screen, s.viewport)
	s.drawHUD(screen)
	if s.gameState.IsGameOver() {
		s.drawGameResultOverlay(screen)
	}
	if s.settingsPanel != nil {
		s.settingsPanel.Draw(screen)
	}
}

// SaveOnExit 窗口关闭时保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.ctx.Settings == nil {
		return true
	}
	if err := s.ctx.Settings.SaveIfDirty(); err != nil {
		log.Printf("[GameScene] Warning: 退出时保存设置失败: %v", err)
		return false
	}
	return true
}

// GameState 返回本关的会话状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Chain 返回蚂蚁队列
func (s *GameScene) Chain() *systems.AntChainSystem {
	return s.chainSystem
}

// EntityManager 返回本关的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Level 返回关卡配置
func (s *GameScene) Level() *config.LevelConfig {
	return s.level
}
