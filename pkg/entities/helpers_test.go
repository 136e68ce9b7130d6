package entities

import (
	"testing"

	"github.com/decker502/antchain/pkg/config"
)

// testArchetypeConfig 测试用的种类属性表
func testArchetypeConfig(t *testing.T) *config.ArchetypeConfig {
	t.Helper()
	cfg, err := config.ParseArchetypeConfig([]byte(`
baseSpeed: 5
baseJump: 10
archetypes:
  worker: {speedModifier: 1.0, jumpModifier: 1.0, color: "#8B4A1C", cue: SOUND_WORKER, width: 1, height: 0.6}
  scout: {speedModifier: 1.5, jumpModifier: 1.2, color: "#C98A2B", cue: SOUND_SCOUT, width: 0.8, height: 0.5}
`))
	if err != nil {
		t.Fatalf("failed to parse test archetypes: %v", err)
	}
	return cfg
}
