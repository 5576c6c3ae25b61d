package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据关卡路径创建场景，失败时返回错误
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager manages which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentLevel string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回最近一次成功加载的关卡路径
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 通过工厂函数加载关卡场景
//
// 加载失败时保留当前场景不变。
func (sm *SceneManager) LoadLevel(levelPath string) bool {
	log.Printf("[SceneManager] 加载关卡: %s", levelPath)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory(levelPath)
	if err != nil || newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建关卡场景 %s: %v", levelPath, err)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentLevel = levelPath
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelPath)
	return true
}

// Reload 重新加载当前关卡
func (sm *SceneManager) Reload() bool {
	if sm.currentLevel == "" {
		return false
	}
	return sm.LoadLevel(sm.currentLevel)
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
