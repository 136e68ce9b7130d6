package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的场景（目前只有关卡场景）
type Scene interface {
	// Update 固定步长更新，deltaTime 单位为秒
	Update(deltaTime float64)

	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：窗口关闭前 App 会调用 SaveOnExit
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，退出流程不受影响
	SaveOnExit() bool
}
