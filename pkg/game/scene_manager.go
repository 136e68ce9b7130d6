package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelID string) (Scene, error)

// SceneManager 控制当前活动场景
// 同一时间只有一个场景的 Update/Draw 被调用
type SceneManager struct {
	currentScene   Scene
	currentLevelID string
	levelOrder     []string     // 关卡顺序，用于 NextLevel
	sceneFactory   SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetLevelOrder 设置关卡顺序
func (sm *SceneManager) SetLevelOrder(levelIDs []string) {
	sm.levelOrder = append([]string(nil), levelIDs...)
}

// SwitchTo 直接切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevelID 返回当前关卡ID
func (sm *SceneManager) CurrentLevelID() string {
	return sm.currentLevelID
}

// LoadLevel 加载指定ID的关卡场景
// 创建失败时保留当前场景
func (sm *SceneManager) LoadLevel(levelID string) bool {
	log.Printf("[SceneManager] 加载关卡: %s", levelID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory(levelID)
	if err != nil || newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建关卡场景 %s: %v", levelID, err)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentLevelID = levelID
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelID)
	return true
}

// ReloadLevel 重新开始当前关卡
func (sm *SceneManager) ReloadLevel() bool {
	if sm.currentLevelID == "" {
		return false
	}
	return sm.LoadLevel(sm.currentLevelID)
}

// NextLevelID 返回当前关卡之后的关卡ID；已是最后一关时返回第一关
func (sm *SceneManager) NextLevelID() string {
	if len(sm.levelOrder) == 0 {
		return sm.currentLevelID
	}
	for i, id := range sm.levelOrder {
		if id == sm.currentLevelID {
			return sm.levelOrder[(i+1)%len(sm.levelOrder)]
		}
	}
	return sm.levelOrder[0]
}

// LoadNextLevel 加载下一关
func (sm *SceneManager) LoadNextLevel() bool {
	return sm.LoadLevel(sm.NextLevelID())
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
