package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录 Update/Draw 调用
type MockScene struct {
	levelID      string
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func newTestSceneManager(created *[]string) *SceneManager {
	sm := NewSceneManager()
	sm.SetSceneFactory(func(levelID string) (Scene, error) {
		if levelID == "broken" {
			return nil, errors.New("level file missing")
		}
		*created = append(*created, levelID)
		return &MockScene{levelID: levelID}, nil
	})
	sm.SetLevelOrder([]string{"level_1", "level_2"})
	return sm
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || !mockScene.drawCalled {
		t.Error("scene Update/Draw were not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("deltaTime = %.3f, want 0.016", mockScene.deltaTime)
	}
}

func TestSceneManagerLoadLevel(t *testing.T) {
	var created []string
	sm := newTestSceneManager(&created)

	if !sm.LoadLevel("level_1") {
		t.Fatal("LoadLevel(level_1) failed")
	}
	if sm.CurrentLevelID() != "level_1" {
		t.Errorf("CurrentLevelID = %q", sm.CurrentLevelID())
	}

	// 创建失败时保留当前场景
	current := sm.GetCurrentScene()
	if sm.LoadLevel("broken") {
		t.Error("LoadLevel(broken) should fail")
	}
	if sm.GetCurrentScene() != current || sm.CurrentLevelID() != "level_1" {
		t.Error("failed load should keep the current scene")
	}

	if !sm.ReloadLevel() {
		t.Error("ReloadLevel failed")
	}
	if len(created) != 2 || created[1] != "level_1" {
		t.Errorf("created scenes = %v", created)
	}
}

func TestSceneManagerNextLevel(t *testing.T) {
	var created []string
	sm := newTestSceneManager(&created)

	tests := []struct {
		current string
		want    string
	}{
		{"level_1", "level_2"},
		{"level_2", "level_1"}, // 最后一关之后回到第一关
		{"unknown", "level_1"},
	}
	for _, tt := range tests {
		sm.currentLevelID = tt.current
		if got := sm.NextLevelID(); got != tt.want {
			t.Errorf("NextLevelID after %s = %s, want %s", tt.current, got, tt.want)
		}
	}
}

func TestSceneManagerNoFactory(t *testing.T) {
	sm := NewSceneManager()
	if sm.LoadLevel("level_1") {
		t.Error("LoadLevel without factory should fail")
	}
	if sm.ReloadLevel() {
		t.Error("ReloadLevel without current level should fail")
	}
}
