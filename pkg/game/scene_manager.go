package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	// 最近一次视口尺寸，切换场景时转发给新场景
	width, height int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
// 已知视口尺寸时立即通知新场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if sm.width > 0 && sm.height > 0 {
		if r, ok := scene.(Resizable); ok {
			r.Resize(sm.width, sm.height)
		}
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 记录视口尺寸并转发给当前场景
// 尺寸未变化时不转发
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	log.Printf("[SceneManager] 视口尺寸变化: %dx%d -> %dx%d", sm.width, sm.height, width, height)
	sm.width, sm.height = width, height

	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}
