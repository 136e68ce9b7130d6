package systems

import (
	"math"
	"testing"

	"github.com/decker502/antchain/pkg/types"
)

const physicsStep = 1.0 / 60

// TestPhysics_LandsOnPlatform 测试下落的刚体停在平台顶面
func TestPhysics_LandsOnPlatform(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)
	w.spawnPlatform(0, -0.5, 20, 1) // 顶面 y=0
	w.pos(ids[0]).Y = 3
	ps := NewPhysicsSystem(w.em, w.cfg)

	for i := 0; i < 120; i++ {
		ps.Update(physicsStep)
	}

	p := w.pos(ids[0])
	if math.Abs(p.Y-0.3) > 1e-9 {
		t.Errorf("Y = %v, want 0.3 (resting on top)", p.Y)
	}
	if !w.body(ids[0]).OnGround {
		t.Error("body should be grounded")
	}
	if w.body(ids[0]).VelocityY != 0 {
		t.Error("VelocityY should be zero on ground")
	}
}

// TestPhysics_FallsOffEdge 测试走出平台边缘后继续下落
func TestPhysics_FallsOffEdge(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)
	w.spawnPlatform(0, -0.5, 2, 1)
	w.pos(ids[0]).X, w.pos(ids[0]).Y = 5, 0.3
	ps := NewPhysicsSystem(w.em, w.cfg)

	ps.Update(physicsStep)

	if w.body(ids[0]).OnGround {
		t.Error("body beside the platform should not be grounded")
	}
	if w.pos(ids[0]).Y >= 0.3 {
		t.Error("body should start falling")
	}
}

// TestPhysics_JumpFromBelowPassesThrough 测试向上穿过平台（只有顶面阻挡）
func TestPhysics_JumpFromBelowPassesThrough(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)
	w.spawnPlatform(0, 2, 4, 0.5)
	w.pos(ids[0]).Y = 1
	w.body(ids[0]).VelocityY = 12
	ps := NewPhysicsSystem(w.em, w.cfg)

	ps.Update(physicsStep)

	if w.pos(ids[0]).Y <= 1 {
		t.Error("rising body should keep moving up")
	}
}

// TestPhysics_SkipsKinematicAndFrozen 测试运动学刚体和冻结刚体不积分
func TestPhysics_SkipsKinematicAndFrozen(t *testing.T) {
	w := newTestWorld()
	loner := w.spawnAnt(types.AntWorker, 0, 5, 5)
	ids := w.spawnChain(2)
	w.body(ids[1]).Simulate()
	w.body(ids[1]).FreezePosition = true
	w.pos(ids[1]).Y = 5
	ps := NewPhysicsSystem(w.em, w.cfg)

	ps.Update(physicsStep)

	if w.pos(loner).Y != 5 {
		t.Error("kinematic ant should not fall")
	}
	if w.pos(ids[1]).Y != 5 {
		t.Error("frozen ant should not fall")
	}
}

// TestPhysics_SkipsFollowingAnts 测试正在跟随的蚂蚁由跟随系统定位
func TestPhysics_SkipsFollowingAnts(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	w.body(ids[1]).Simulate()
	w.ant(ids[1]).Following = true
	w.pos(ids[1]).Y = 5
	ps := NewPhysicsSystem(w.em, w.cfg)

	ps.Update(physicsStep)

	if w.pos(ids[1]).Y != 5 {
		t.Error("following ant should not be integrated")
	}
}

// TestPhysics_BridgeAntsAreSolid 测试搭桥的蚂蚁可以站立
func TestPhysics_BridgeAntsAreSolid(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	bridge := ids[1]
	w.ant(bridge).OnBridge = true
	w.body(bridge).FreezePosition = true
	w.pos(bridge).X, w.pos(bridge).Y = 0, -0.3 // 顶面 y=0
	w.pos(ids[0]).X, w.pos(ids[0]).Y = 0, 1
	ps := NewPhysicsSystem(w.em, w.cfg)

	for i := 0; i < 60; i++ {
		ps.Update(physicsStep)
	}

	if !w.body(ids[0]).OnGround || math.Abs(w.pos(ids[0]).Y-0.3) > 1e-9 {
		t.Errorf("head should stand on the bridge, Y = %v", w.pos(ids[0]).Y)
	}
}

// TestPhysics_HorizontalBounds 测试关卡左右边界
func TestPhysics_HorizontalBounds(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)
	w.spawnPlatform(0, -0.5, 40, 1)
	w.pos(ids[0]).X, w.pos(ids[0]).Y = 0.5, 0.3
	w.body(ids[0]).VelocityX = -30
	ps := NewPhysicsSystem(w.em, w.cfg)
	ps.SetBounds(0, 20)

	ps.Update(physicsStep)

	if got := w.pos(ids[0]).X; got != 0.3 {
		t.Errorf("X = %v, want 0.3 (half width from the left bound)", got)
	}
	if w.body(ids[0]).VelocityX != 0 {
		t.Error("VelocityX should be cleared at the bound")
	}
}

// TestPhysics_GravityScaleZero 测试重力系数为 0 时不下落
func TestPhysics_GravityScaleZero(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)
	w.pos(ids[0]).Y = 5
	w.body(ids[0]).GravityScale = 0
	ps := NewPhysicsSystem(w.em, w.cfg)

	ps.Update(physicsStep)

	if w.pos(ids[0]).Y != 5 {
		t.Errorf("Y = %v, want 5", w.pos(ids[0]).Y)
	}
}
