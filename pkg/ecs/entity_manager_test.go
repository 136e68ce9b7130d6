package ecs

import (
	"reflect"
	"testing"
)

// 测试用组件
type testPos struct {
	X, Y float64
}

type testAnt struct {
	Direction   int
	Predecessor EntityID
}

func TestCreateEntity_IDsStartAtOne(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()

	if a != 1 || b != 2 {
		t.Fatalf("expected IDs 1 and 2, got %d and %d", a, b)
	}
	if !em.Exists(a) || !em.Exists(b) {
		t.Error("created entities should exist")
	}
	if em.Exists(0) {
		t.Error("ID 0 is reserved and must never exist")
	}
}

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPos{X: 3, Y: 4})

	pos, ok := GetComponent[*testPos](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("got (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	// 泛型与反射接口必须使用同一个类型键
	if !em.HasComponent(id, reflect.TypeOf(&testPos{})) {
		t.Error("generic AddComponent should be visible through reflect API")
	}

	// 修改指针即修改组件
	pos.X = 10
	again, _ := GetComponent[*testPos](em, id)
	if again.X != 10 {
		t.Error("component should be stored by pointer")
	}
}

func TestGetComponent_Missing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, ok := GetComponent[*testAnt](em, id); ok {
		t.Error("missing component should not be found")
	}
	if _, ok := GetComponent[*testAnt](em, 999); ok {
		t.Error("unknown entity should not have components")
	}
	if HasComponent[*testAnt](em, id) {
		t.Error("HasComponent should be false")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testAnt{Direction: 1})

	RemoveComponent[*testAnt](em, id)

	if HasComponent[*testAnt](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntity_Deferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPos{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("entity should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("entity should be gone after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("expected 0 entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith_SortedAndFiltered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 6; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPos{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testAnt{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPos, *testAnt](em)
	if len(got) != len(ids) {
		t.Fatalf("expected %d entities, got %d", len(ids), len(got))
	}
	for i := range got {
		if got[i] != ids[i] {
			t.Errorf("index %d: got %d, want %d (result must be sorted)", i, got[i], ids[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPos](em)); n != 6 {
		t.Errorf("expected 6 entities with position, got %d", n)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 200; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPos{})
		if i%3 == 0 {
			AddComponent(em, id, &testAnt{})
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPos, *testAnt](em)
	}
}
