package systems

import (
	"math"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/utils"
)

// CameraSystem 跟随镜头
// 每帧以指数平滑向目标靠拢，距离小于 SnapDistance 时直接对齐
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID

	// 镜头中心的水平范围（格），maxX < minX 表示不限制
	minX float64
	maxX float64
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		minX:          0,
		maxX:          -1,
	}
}

// SetBounds 根据关卡宽度和视野宽度（格）限制镜头范围
func (cs *CameraSystem) SetBounds(levelWidth, viewWidth float64) {
	half := viewWidth / 2
	cs.minX = half
	cs.maxX = levelWidth - half
	if cs.maxX < cs.minX {
		// 关卡比视野窄：固定在关卡中央
		cs.minX = levelWidth / 2
		cs.maxX = levelWidth / 2
	}
}

// SetTarget 重新指定跟随目标（队首变更时调用）
func (cs *CameraSystem) SetTarget(target ecs.EntityID) {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		cam.Target = target
	}
}

// Target 返回当前跟随目标
func (cs *CameraSystem) Target() ecs.EntityID {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		return cam.Target
	}
	return 0
}

// Update 向目标移动镜头
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cam.Target)
	if !ok {
		return
	}

	targetX, targetY := cs.clamp(pos.X), pos.Y

	if math.Hypot(targetX-cam.X, targetY-cam.Y) <= cam.SnapDistance || cam.FollowRate <= 0 {
		cam.X, cam.Y = targetX, targetY
		return
	}

	t := 1 - math.Exp(-cam.FollowRate*dt)
	cam.X = utils.Lerp(cam.X, targetX, t)
	cam.Y = utils.Lerp(cam.Y, targetY, t)
}

// Snap 立即对齐目标（关卡开始时使用）
func (cs *CameraSystem) Snap() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cam.Target); ok {
		cam.X, cam.Y = cs.clamp(pos.X), pos.Y
	}
}

// Position 返回镜头中心（世界坐标）
func (cs *CameraSystem) Position() (x, y float64) {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		return cam.X, cam.Y
	}
	return 0, 0
}

func (cs *CameraSystem) clamp(x float64) float64 {
	if cs.maxX < cs.minX {
		return x
	}
	return math.Max(cs.minX, math.Min(cs.maxX, x))
}
