package systems

import (
	"math"
	"testing"
)

// TestAntFollow_WithinThresholdStays 测试距离不超过阈值时原地不动
func TestAntFollow_WithinThresholdStays(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.pos(ids[1]).X = w.pos(ids[0]).X - 2
	w.ant(ids[1]).Following = true

	follow.Update(1.0 / 60)

	if w.pos(ids[1]).X != w.pos(ids[0]).X-2 {
		t.Errorf("follower moved to %v", w.pos(ids[1]).X)
	}
	if w.ant(ids[1]).Following {
		t.Error("Following should be false within threshold")
	}
}

// TestAntFollow_MovesTowardsPredecessor 测试超过阈值时按速度靠近前驱
func TestAntFollow_MovesTowardsPredecessor(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.pos(ids[0]).X = 20
	w.pos(ids[1]).X = 0
	dt := 0.1

	follow.Update(dt)

	want := w.ant(ids[1]).Speed * dt
	if got := w.pos(ids[1]).X; math.Abs(got-want) > 1e-9 {
		t.Errorf("follower X = %v, want %v", got, want)
	}
	if !w.ant(ids[1]).Following {
		t.Error("Following should be true while catching up")
	}
}

// TestAntFollow_DistanceMonotone 测试跟随过程中与前驱的距离单调不增，且最终停在阈值以内
func TestAntFollow_DistanceMonotone(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.pos(ids[0]).X, w.pos(ids[0]).Y = 30, 4
	w.pos(ids[1]).X, w.pos(ids[1]).Y = 0, 0

	dist := func() float64 {
		h, f := w.pos(ids[0]), w.pos(ids[1])
		return math.Hypot(h.X-f.X, h.Y-f.Y)
	}

	prev := dist()
	for i := 0; i < 600; i++ {
		follow.Update(1.0 / 60)
		d := dist()
		if d > prev+1e-9 {
			t.Fatalf("step %d: distance increased %v -> %v", i, prev, d)
		}
		prev = d
	}
	if prev > w.cfg.FollowThreshold {
		t.Errorf("final distance %v exceeds threshold %v", prev, w.cfg.FollowThreshold)
	}
}

// TestAntFollow_NoOvershoot 测试一步距离大于剩余距离时不越过目标
func TestAntFollow_NoOvershoot(t *testing.T) {
	x, y := moveTowards(0, 0, 3, 4, 10)
	if x != 3 || y != 4 {
		t.Errorf("moveTowards overshoot: (%v, %v)", x, y)
	}
	x, y = moveTowards(0, 0, 3, 4, 2.5)
	if math.Abs(x-1.5) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Errorf("moveTowards partial step = (%v, %v), want (1.5, 2)", x, y)
	}
}

// TestAntFollow_ChainOrder 测试按队列顺序跟随：后继追的是前驱而不是队首
func TestAntFollow_ChainOrder(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(3)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.pos(ids[0]).X = 0
	w.pos(ids[1]).X = -1
	w.pos(ids[2]).X = -20

	follow.Update(0.1)

	if w.pos(ids[1]).X != -1 {
		t.Error("second ant within threshold should stay")
	}
	if w.pos(ids[2]).X <= -20 {
		t.Error("third ant should move towards its predecessor")
	}
}

// TestAntFollow_CopiesDirection 测试朝向与镜像复制前驱
func TestAntFollow_CopiesDirection(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.ant(ids[0]).Direction = -1
	w.pos(ids[1]).X = w.pos(ids[0]).X + 10

	follow.Update(0.1)

	if w.ant(ids[1]).Direction != -1 {
		t.Errorf("Direction = %d, want -1", w.ant(ids[1]).Direction)
	}
	sprite := w.sprite(ids[1])
	if !sprite.FlipX {
		t.Error("sprite should be flipped when facing left")
	}
}

// TestAntFollow_TowerPinsAboveHead 测试叠塔时固定在队首正上方
func TestAntFollow_TowerPinsAboveHead(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(3)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.pos(ids[0]).X, w.pos(ids[0]).Y = 5, 1
	for _, id := range ids[1:] {
		w.ant(id).TowerMode = true
	}

	follow.Update(1.0 / 60)

	for i, id := range ids[1:] {
		p := w.pos(id)
		wantY := 1 + float64(i+1)*w.cfg.TowerOffset
		if p.X != 5 || math.Abs(p.Y-wantY) > 1e-9 {
			t.Errorf("tower ant %d at (%v, %v), want (5, %v)", i+1, p.X, p.Y, wantY)
		}
	}
}

// TestAntFollow_BridgeAntsSkipped 测试搭桥的蚂蚁不跟随
func TestAntFollow_BridgeAntsSkipped(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	follow := NewAntFollowSystem(w.em, w.chain, w.cfg)

	w.ant(ids[1]).OnBridge = true
	w.pos(ids[1]).X = -30

	follow.Update(0.1)

	if w.pos(ids[1]).X != -30 {
		t.Error("bridge ant should not move")
	}
}

// TestAntFollow_EmptyRoster 测试空队列不崩溃
func TestAntFollow_EmptyRoster(t *testing.T) {
	w := newTestWorld()
	NewAntFollowSystem(w.em, w.chain, w.cfg).Update(0.1)
}
