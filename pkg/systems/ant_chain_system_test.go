package systems

import (
	"slices"
	"testing"

	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/types"
)

// TestAntChain_AddFirstBecomesHead 测试空队列入队的蚂蚁成为队首
func TestAntChain_AddFirstBecomesHead(t *testing.T) {
	w := newTestWorld()
	a := w.spawnAnt(types.AntScout, 1, 0, 7.5)

	var notified []ecs.EntityID
	w.chain.OnHeadChanged(func(head ecs.EntityID) { notified = append(notified, head) })

	if !w.chain.Add(a) {
		t.Fatal("Add returned false for first ant")
	}
	if w.chain.Head() != a {
		t.Errorf("Head() = %d, want %d", w.chain.Head(), a)
	}
	ant := w.ant(a)
	if !ant.IsHead() || ant.Speed != 7.5 {
		t.Errorf("head state = %+v, want controllable head with base speed", ant)
	}
	if body := w.body(a); body.IsTrigger || body.GravityScale != 1 {
		t.Errorf("head body should be simulated, got %+v", body)
	}
	if len(notified) != 1 || notified[0] != a {
		t.Errorf("head changed notifications = %v, want [%d]", notified, a)
	}
}

// TestAntChain_AddFollowerPlacement 测试入队时的前驱、速度和位置偏移
func TestAntChain_AddFollowerPlacement(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		wantX     float64
	}{
		{"队首朝右，放在左侧", 1, 7},
		{"队首朝左，放在右侧", -1, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			a := w.spawnAnt(types.AntWorker, 10, 2, 5)
			w.chain.Add(a)
			w.ant(a).Direction = tt.direction

			b := w.spawnAnt(types.AntSoldier, 40, 8, 3.5)
			w.body(b).VelocityX = 4

			if !w.chain.Add(b) {
				t.Fatal("Add(B) returned false")
			}

			if got := w.chain.Members(); !slices.Equal(got, []ecs.EntityID{a, b}) {
				t.Errorf("roster = %v, want [%d %d]", got, a, b)
			}
			bAnt := w.ant(b)
			if bAnt.Predecessor != a {
				t.Errorf("B.Predecessor = %d, want %d", bAnt.Predecessor, a)
			}
			if bAnt.Speed != 5 {
				t.Errorf("B.Speed = %v, want 5 (head speed)", bAnt.Speed)
			}
			if bAnt.Controllable || !bAnt.Joined {
				t.Errorf("B should be joined but not controllable: %+v", bAnt)
			}
			if p := w.pos(b); p.X != tt.wantX || p.Y != 2 {
				t.Errorf("B position = (%v, %v), want (%v, 2)", p.X, p.Y, tt.wantX)
			}
			if w.body(b).VelocityX != 0 {
				t.Error("B velocity should be reset on join")
			}
		})
	}
}

// TestAntChain_AddIdempotent 测试重复入队被拒绝
func TestAntChain_AddIdempotent(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)

	if w.chain.Add(ids[1]) {
		t.Error("Add of existing member should return false")
	}
	if w.chain.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.chain.Len())
	}
}

// TestAntChain_AddWithoutAntComponent 测试缺少 AntComponent 的实体不能入队
func TestAntChain_AddWithoutAntComponent(t *testing.T) {
	w := newTestWorld()
	id := w.em.CreateEntity()

	if w.chain.Add(id) {
		t.Error("Add should fail without AntComponent")
	}
	if w.chain.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.chain.Len())
	}
}

// TestAntChain_LinkInvariantAfterAdds 测试任意次入队后链接不变式成立
func TestAntChain_LinkInvariantAfterAdds(t *testing.T) {
	for n := 1; n <= 8; n++ {
		w := newTestWorld()
		w.spawnChain(n)
		if v := w.linkViolation(); v != "" {
			t.Errorf("n=%d: %s", n, v)
		}
	}
}

// TestAntChain_PromoteSwap 测试提升协议：交换位置、交换队列位置、重建链接
func TestAntChain_PromoteSwap(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(3)
	a, b, c := ids[0], ids[1], ids[2]
	w.ant(b).BaseSpeed = 7.5

	posA, posB := *w.pos(a), *w.pos(b)

	var notified []ecs.EntityID
	w.chain.OnHeadChanged(func(head ecs.EntityID) { notified = append(notified, head) })

	head, ok := w.chain.Promote(1)
	if !ok || head != b {
		t.Fatalf("Promote(1) = (%d, %v), want (%d, true)", head, ok, b)
	}
	if got := w.chain.Members(); !slices.Equal(got, []ecs.EntityID{b, a, c}) {
		t.Errorf("roster = %v, want [%d %d %d]", got, b, a, c)
	}
	if w.ant(b).Predecessor != 0 || w.ant(a).Predecessor != b || w.ant(c).Predecessor != a {
		t.Error("links not rebuilt after promote")
	}
	if *w.pos(b) != posA || *w.pos(a) != posB {
		t.Error("positions of old and new head should be swapped")
	}
	if w.ant(a).Controllable {
		t.Error("old head should lose control")
	}
	if w.ant(b).Speed != 7.5 || w.ant(a).Speed != 7.5 || w.ant(c).Speed != 7.5 {
		t.Error("speed should be refreshed from the new head")
	}
	if len(notified) != 1 || notified[0] != b {
		t.Errorf("notifications = %v, want [%d]", notified, b)
	}
}

// TestAntChain_PromoteStopsOldHead 测试原队首交出控制后不再滑动
func TestAntChain_PromoteStopsOldHead(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	a := ids[0]
	w.spawnPlatform(0, -0.8, 100, 1)

	mv := NewAntMovementSystem(w.em, w.chain)
	ps := NewPhysicsSystem(w.em, w.cfg)
	fs := NewAntFollowSystem(w.em, w.chain, w.cfg)
	step := func(axis float64) {
		mv.Update(FrameInput{MoveAxis: axis})
		ps.Update(1.0 / 60)
		fs.Update(1.0 / 60)
	}

	for i := 0; i < 10; i++ {
		step(1)
	}
	if w.body(a).VelocityX == 0 {
		t.Fatal("head should be moving before promote")
	}

	w.chain.Promote(1)
	if vx, vy := w.body(a).VelocityX, w.body(a).VelocityY; vx != 0 || vy != 0 {
		t.Errorf("old head velocity after promote = (%v, %v), want (0, 0)", vx, vy)
	}
	startX := w.pos(a).X

	for i := 0; i < 30; i++ {
		step(0)
	}
	if w.ant(a).Following {
		t.Fatal("old head is within threshold and should not be following")
	}
	if moved := w.pos(a).X - startX; moved > 1e-9 || moved < -1e-9 {
		t.Errorf("settled old head moved %v units", moved)
	}
}

// TestAntChain_PromoteIsOwnInverse 测试对同一索引提升两次恢复原队列
func TestAntChain_PromoteIsOwnInverse(t *testing.T) {
	for k := 0; k < 4; k++ {
		w := newTestWorld()
		ids := w.spawnChain(4)
		before := w.chain.Members()
		beforePos := make([]float64, len(ids))
		for i, id := range ids {
			beforePos[i] = w.pos(id).X
		}

		w.chain.Promote(k)
		w.chain.Promote(k)

		if got := w.chain.Members(); !slices.Equal(got, before) {
			t.Errorf("k=%d: roster = %v, want %v", k, got, before)
		}
		for i, id := range ids {
			if w.pos(id).X != beforePos[i] {
				t.Errorf("k=%d: ant %d X = %v, want %v", k, id, w.pos(id).X, beforePos[i])
			}
		}
		if v := w.linkViolation(); v != "" {
			t.Errorf("k=%d: %s", k, v)
		}
	}
}

// TestAntChain_PromoteZeroReaffirms 测试提升索引 0 只重新确认队首，不发通知
func TestAntChain_PromoteZeroReaffirms(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(2)
	notified := 0
	w.chain.OnHeadChanged(func(ecs.EntityID) { notified++ })

	head, ok := w.chain.Promote(0)
	if !ok || head != ids[0] {
		t.Errorf("Promote(0) = (%d, %v), want (%d, true)", head, ok, ids[0])
	}
	if notified != 0 {
		t.Errorf("notified %d times, want 0", notified)
	}
}

// TestAntChain_PromoteOutOfRange 测试越界索引
func TestAntChain_PromoteOutOfRange(t *testing.T) {
	w := newTestWorld()
	w.spawnChain(2)

	for _, k := range []int{-1, 2, 10} {
		if _, ok := w.chain.Promote(k); ok {
			t.Errorf("Promote(%d) should fail", k)
		}
	}
}

// TestAntChain_AttachKeepsPlacement 测试开局队列：按顺序链接，位置不变
func TestAntChain_AttachKeepsPlacement(t *testing.T) {
	w := newTestWorld()
	a := w.spawnAnt(types.AntWorker, 10, 0, 5)
	b := w.spawnAnt(types.AntSoldier, 8.5, 0, 3.5)
	c := w.spawnAnt(types.AntScout, 7, 0.2, 7.5)
	w.body(c).VelocityX = 3

	if !w.chain.Attach(a) || w.chain.Head() != a {
		t.Fatal("Attach on an empty roster should make a head")
	}
	for _, id := range []ecs.EntityID{b, c} {
		if !w.chain.Attach(id) {
			t.Fatalf("Attach(%d) returned false", id)
		}
	}
	if w.chain.Attach(b) {
		t.Error("Attach of a member should be a no-op")
	}
	w.chain.RebuildLinks()

	if got := w.chain.Members(); !slices.Equal(got, []ecs.EntityID{a, b, c}) {
		t.Errorf("roster = %v, want [%d %d %d]", got, a, b, c)
	}
	if v := w.linkViolation(); v != "" {
		t.Error(v)
	}
	if w.pos(b).X != 8.5 || w.pos(c).X != 7 || w.pos(c).Y != 0.2 {
		t.Error("attached ants should keep their placement")
	}
	if w.ant(b).Speed != 5 || w.ant(c).Speed != 5 || !w.ant(c).Joined {
		t.Error("attached ants should share the head speed and be joined")
	}
	if w.body(c).VelocityX != 0 {
		t.Error("attached ant velocity should be cleared")
	}
}

// TestAntChain_RemoveRelinks 测试移除中间成员后后继重新链接
func TestAntChain_RemoveRelinks(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(4)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]
	w.ant(b).TowerMode = true
	w.body(b).FreezePosition = true

	if !w.chain.Remove(b) {
		t.Fatal("Remove returned false")
	}

	if got := w.chain.Members(); !slices.Equal(got, []ecs.EntityID{a, c, d}) {
		t.Errorf("roster = %v, want [%d %d %d]", got, a, c, d)
	}
	if w.ant(c).Predecessor != a {
		t.Errorf("C.Predecessor = %d, want %d", w.ant(c).Predecessor, a)
	}
	removed := w.ant(b)
	if removed.Predecessor != 0 || removed.Speed != 0 || removed.Joined || removed.TowerMode {
		t.Errorf("removed ant not reset: %+v", removed)
	}
	if w.body(b).FreezePosition {
		t.Error("removed ant should be unfrozen")
	}
	if !w.em.Exists(b) {
		t.Error("Remove must not destroy the entity")
	}
	if w.chain.Remove(b) {
		t.Error("second Remove should return false")
	}
}

// TestAntChain_RemoveHeadPromotesNext 测试移除队首后下一只成为队首
func TestAntChain_RemoveHeadPromotesNext(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(3)

	var notified []ecs.EntityID
	w.chain.OnHeadChanged(func(head ecs.EntityID) { notified = append(notified, head) })

	w.chain.Remove(ids[0])

	if w.chain.Head() != ids[1] {
		t.Errorf("Head() = %d, want %d", w.chain.Head(), ids[1])
	}
	if !w.ant(ids[1]).IsHead() {
		t.Error("new head should be controllable")
	}
	if v := w.linkViolation(); v != "" {
		t.Error(v)
	}
	if len(notified) != 1 || notified[0] != ids[1] {
		t.Errorf("notifications = %v, want [%d]", notified, ids[1])
	}
}

// TestAntChain_RemoveLast 测试移除最后一只后队列为空
func TestAntChain_RemoveLast(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(1)

	w.chain.Remove(ids[0])

	if w.chain.Len() != 0 || w.chain.Head() != 0 {
		t.Errorf("roster should be empty, Len()=%d Head()=%d", w.chain.Len(), w.chain.Head())
	}
}

// TestAntChain_Queries 测试 At / IndexOf / Contains / Members 副本
func TestAntChain_Queries(t *testing.T) {
	w := newTestWorld()
	ids := w.spawnChain(3)

	if w.chain.At(2) != ids[2] || w.chain.At(3) != 0 || w.chain.At(-1) != 0 {
		t.Error("At returned unexpected values")
	}
	if w.chain.IndexOf(ids[1]) != 1 || w.chain.IndexOf(999) != -1 {
		t.Error("IndexOf returned unexpected values")
	}
	if !w.chain.Contains(ids[0]) || w.chain.Contains(999) {
		t.Error("Contains returned unexpected values")
	}

	members := w.chain.Members()
	members[0] = 999
	if w.chain.Head() != ids[0] {
		t.Error("Members should return a copy")
	}
}
