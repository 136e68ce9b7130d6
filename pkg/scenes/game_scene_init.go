package scenes

import (
	"log"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/modules"
	"github.com/decker502/antchain/pkg/systems"
)

// initSystems 创建并连接所有系统
// 所有系统共享同一个 EntityManager、GameState 和队列，音效统一走 AudioManager
func (s *GameScene) initSystems() {
	em := s.entityManager
	cues := s.ctx.Audio

	s.inputSystem = systems.NewInputSystem(s.ctx.Input)
	s.chainSystem = systems.NewAntChainSystem(em, s.ctx.Chain)
	s.selectionSystem = systems.NewAntSelectionSystem(em, s.gameState, s.chainSystem, cues)
	s.movementSystem = systems.NewAntMovementSystem(em, s.chainSystem)
	s.physicsSystem = systems.NewPhysicsSystem(em, s.ctx.Chain)
	s.followSystem = systems.NewAntFollowSystem(em, s.chainSystem, s.ctx.Chain)
	s.formationSystem = systems.NewAntFormationSystem(em, s.chainSystem, cues)
	s.joinSystem = systems.NewAntJoinSystem(em, s.chainSystem, cues)
	s.rainSystem = systems.NewRainSystem(em, s.gameState, s.chainSystem, cues)
	s.goalSystem = systems.NewGoalSystem(em, s.gameState, s.chainSystem, cues)
	s.cameraSystem = systems.NewCameraSystem(em, s.entities.Camera)
	s.renderSystem = systems.NewRenderSystem(em, s.chainSystem)

	s.physicsSystem.SetBounds(0, s.level.Width)
	s.cameraSystem.SetBounds(s.level.Width, s.viewport.ViewWidth())

	log.Printf("[GameScene] 系统初始化完成 (关卡宽度 %.0f 格, 视野 %.1f 格)", s.level.Width, s.viewport.ViewWidth())
}

// initSettingsPanel 创建设置面板
// 没有指针设备（无窗口运行）时不创建
func (s *GameScene) initSettingsPanel() {
	if s.ctx.Pointer == nil {
		log.Printf("[GameScene] 没有指针设备，跳过设置面板")
		return
	}
	s.settingsPanel = modules.NewSettingsPanelModule(
		s.entityManager,
		s.gameState,
		s.ctx.Settings,
		s.ctx.Audio,
		s.ctx.Strings,
		s.ctx.Pointer,
		s.ctx.Audio,
		config.GameWindowWidth,
		config.GameWindowHeight,
	)
}

// initRoster 初始队首和开局队列入队，镜头跟随队首变更
func (s *GameScene) initRoster() {
	s.chainSystem.OnHeadChanged(s.cameraSystem.SetTarget)
	s.chainSystem.Add(s.entities.Head)
	for _, id := range s.entities.Chain {
		s.chainSystem.Attach(id)
	}
	s.chainSystem.RebuildLinks()
	s.cameraSystem.Snap()
}
