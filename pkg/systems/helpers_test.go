package systems

import (
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/types"
)

// mockCuePlayer 记录播放过的音效
type mockCuePlayer struct {
	played []string
}

func (m *mockCuePlayer) PlaySound(soundID string) bool {
	m.played = append(m.played, soundID)
	return true
}

func (m *mockCuePlayer) count(soundID string) int {
	n := 0
	for _, id := range m.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// testWorld 测试用的最小世界：实体管理器 + 队列
type testWorld struct {
	em    *ecs.EntityManager
	cfg   *config.ChainConfig
	gs    *game.GameState
	chain *AntChainSystem
	cues  *mockCuePlayer
}

func newTestWorld() *testWorld {
	em := ecs.NewEntityManager()
	cfg := config.DefaultChainConfig()
	return &testWorld{
		em:    em,
		cfg:   cfg,
		gs:    game.NewGameState("test"),
		chain: NewAntChainSystem(em, cfg),
		cues:  &mockCuePlayer{},
	}
}

// spawnAnt 创建一只未入队的蚂蚁（运动学触发器，与工厂产物一致）
func (w *testWorld) spawnAnt(kind types.AntType, x, y, speed float64) ecs.EntityID {
	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.em, id, &components.AntComponent{
		Archetype:   kind,
		Direction:   1,
		BaseSpeed:   speed,
		JumpImpulse: 10,
		CueID:       "SOUND_" + kind.String(),
	})
	ecs.AddComponent(w.em, id, &components.PhysicsBodyComponent{
		Mode:      components.BodyKinematic,
		IsTrigger: true,
	})
	ecs.AddComponent(w.em, id, &components.ColliderComponent{Width: 0.6, Height: 0.6})
	ecs.AddComponent(w.em, id, &components.SpriteComponent{Width: 0.6, Height: 0.6})
	ecs.AddComponent(w.em, id, &components.HighlightComponent{})
	return id
}

// spawnChain 创建 n 只蚂蚁并依次入队，第一只为队首
func (w *testWorld) spawnChain(n int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		id := w.spawnAnt(types.AntWorker, float64(i), 0, 5)
		w.chain.Add(id)
		ids = append(ids, id)
	}
	return ids
}

// spawnPlatform 创建平台（中心坐标）
func (w *testWorld) spawnPlatform(x, y, width, height float64) ecs.EntityID {
	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.em, id, &components.ColliderComponent{Width: width, Height: height})
	ecs.AddComponent(w.em, id, &components.PlatformComponent{})
	return id
}

func (w *testWorld) ant(id ecs.EntityID) *components.AntComponent {
	a, _ := ecs.GetComponent[*components.AntComponent](w.em, id)
	return a
}

func (w *testWorld) pos(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return p
}

func (w *testWorld) body(id ecs.EntityID) *components.PhysicsBodyComponent {
	b, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
	return b
}

func (w *testWorld) highlighted(id ecs.EntityID) bool {
	hl, ok := ecs.GetComponent[*components.HighlightComponent](w.em, id)
	return ok && hl.Active
}

// linkViolation 检查队列链接不变式，返回第一处违例的描述
func (w *testWorld) linkViolation() string {
	members := w.chain.Members()
	for i, id := range members {
		a := w.ant(id)
		if i == 0 {
			if a.Predecessor != 0 || !a.Controllable {
				return "head must have no predecessor and be controllable"
			}
			continue
		}
		if a.Predecessor != members[i-1] {
			return "follower predecessor mismatch"
		}
		if a.Controllable {
			return "follower must not be controllable"
		}
	}
	return ""
}

func (w *testWorld) sprite(id ecs.EntityID) *components.SpriteComponent {
	s, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	return s
}

func (w *testWorld) highlightOn(id ecs.EntityID) {
	if hl, ok := ecs.GetComponent[*components.HighlightComponent](w.em, id); ok {
		hl.Active = true
	}
}
