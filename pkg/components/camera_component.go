package components

import "github.com/decker502/antchain/pkg/ecs"

// CameraComponent 跟随镜头的状态
type CameraComponent struct {
	// Target 跟随目标，队首变更时重新指向
	Target ecs.EntityID

	// X, Y 镜头中心（世界坐标）
	X float64
	Y float64

	// FollowRate 每秒向目标靠拢的比例（指数平滑）
	FollowRate float64

	// SnapDistance 小于此距离直接对齐目标
	SnapDistance float64
}
