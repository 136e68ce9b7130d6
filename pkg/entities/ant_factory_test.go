package entities

import (
	"testing"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/types"
)

func TestResolveArchetype(t *testing.T) {
	cfg := testArchetypeConfig(t)

	tests := []struct {
		name      string
		wantErr   bool
		wantKind  types.AntType
		wantSpeed float64
		wantJump  float64
	}{
		{name: "worker", wantKind: types.AntWorker, wantSpeed: 5, wantJump: 10},
		{name: "Scout", wantKind: types.AntScout, wantSpeed: 7.5, wantJump: 12},
		{name: "soldier", wantErr: true}, // 已知种类但属性表中没有
		{name: "beetle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ResolveArchetype(cfg, tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Kind() != tt.wantKind || a.Speed() != tt.wantSpeed || a.JumpImpulse() != tt.wantJump {
				t.Errorf("got kind=%v speed=%v jump=%v", a.Kind(), a.Speed(), a.JumpImpulse())
			}
		})
	}
}

func TestAntFactoryNewAnt(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewAntFactory(em, testArchetypeConfig(t), config.DefaultChainConfig())

	id, ok := f.NewAnt("scout", 4, 1, -1)
	if !ok {
		t.Fatal("NewAnt(scout) failed")
	}

	ant, ok := ecs.GetComponent[*components.AntComponent](em, id)
	if !ok {
		t.Fatal("missing AntComponent")
	}
	if ant.Archetype != types.AntScout || ant.Direction != -1 || ant.BaseSpeed != 7.5 || ant.CueID != "SOUND_SCOUT" {
		t.Errorf("unexpected ant component: %+v", ant)
	}
	if ant.Joined || ant.Controllable || ant.Speed != 0 {
		t.Error("new ant should not be part of the chain")
	}

	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
	if body.Mode != components.BodyKinematic || !body.IsTrigger || body.GravityScale != 0 {
		t.Errorf("new ant should be a kinematic trigger, got %+v", body)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !sprite.FlipX {
		t.Error("ant facing left should be mirrored")
	}
	if !ecs.HasComponent[*components.HighlightComponent](em, id) || !ecs.HasComponent[*components.ColliderComponent](em, id) {
		t.Error("ant should have highlight and collider components")
	}
}

// TestAntFactoryUnknownArchetype 未知种类记录错误，不创建实体
func TestAntFactoryUnknownArchetype(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewAntFactory(em, testArchetypeConfig(t), config.DefaultChainConfig())

	if id, ok := f.NewAnt("beetle", 0, 0, 1); ok || id != 0 {
		t.Errorf("NewAnt(beetle) = %d, %v; want 0, false", id, ok)
	}
	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created, got %d", em.EntityCount())
	}
}

func TestAntFactoryNewHeadAnt(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewAntFactory(em, testArchetypeConfig(t), config.DefaultChainConfig())

	id, ok := f.NewHeadAnt("worker", 0, 0, 1)
	if !ok {
		t.Fatal("NewHeadAnt failed")
	}
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
	if body.Mode != components.BodySimulated || body.GravityScale != 1 || body.IsTrigger {
		t.Errorf("head should be simulated, got %+v", body)
	}
}

func TestAntFactoryInvalidTint(t *testing.T) {
	chainCfg := config.DefaultChainConfig()
	chainCfg.HighlightTint = "yellow"

	f := NewAntFactory(ecs.NewEntityManager(), testArchetypeConfig(t), chainCfg)
	if f.tint.A != 0xFF {
		t.Error("invalid tint should fall back to an opaque default")
	}
}
