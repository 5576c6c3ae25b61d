package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	name    string
	updates int
}

func (f *fakeScene) Update(deltaTime float64) { f.updates++ }
func (f *fakeScene) Draw(screen *ebiten.Image) {}

func TestSceneManager_UpdateActiveScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0) // 没有场景时不崩溃

	scene := &fakeScene{name: "a"}
	sm.SwitchTo(scene)
	sm.Update(1.0 / 60.0)

	if scene.updates != 1 {
		t.Errorf("updates = %d, want 1", scene.updates)
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene returned wrong scene")
	}
}

func TestSceneManager_LoadLevel(t *testing.T) {
	sm := NewSceneManager()

	if sm.LoadLevel("x.yaml") {
		t.Error("LoadLevel without factory should fail")
	}

	sm.SetSceneFactory(func(levelPath string) (Scene, error) {
		if levelPath == "broken.yaml" {
			return nil, errors.New("boom")
		}
		return &fakeScene{name: levelPath}, nil
	})

	if !sm.LoadLevel("a.yaml") {
		t.Fatal("LoadLevel(a.yaml) failed")
	}
	first := sm.GetCurrentScene()

	// 失败时保留当前场景
	if sm.LoadLevel("broken.yaml") {
		t.Error("LoadLevel(broken.yaml) should fail")
	}
	if sm.GetCurrentScene() != first || sm.CurrentLevel() != "a.yaml" {
		t.Error("failed load must keep the previous scene")
	}

	if !sm.Reload() {
		t.Fatal("Reload failed")
	}
	if sm.GetCurrentScene() == first {
		t.Error("Reload should create a fresh scene")
	}
}
