package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/game"
	"github.com/gonewx/battlegrid/pkg/scenes"
)

func TestNewApp_Defaults(t *testing.T) {
	a, err := NewApp(Config{Verbose: true})
	require.NoError(t, err)

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.SetupScene)
	require.True(t, ok)
	assert.Len(t, scene.Battle().Cards(), 6)
	assert.True(t, a.IsVerbose())
}

func TestNewApp_InvalidPlacement(t *testing.T) {
	cfg := config.DefaultBattleConfig()
	cfg.Grid.Rows = 7

	_, err := NewApp(Config{Verbose: true, Battle: cfg})
	assert.Error(t, err)
}

func TestNewApp_ShowDebugOverride(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	_, err := NewApp(Config{Verbose: true, Settings: settings, ShowDebug: true})
	require.NoError(t, err)
	assert.True(t, settings.GetSettings().ShowDebug)
}

func TestLayout_ForwardsViewportSize(t *testing.T) {
	a, err := NewApp(Config{Verbose: true})
	require.NoError(t, err)
	scene := a.GetSceneManager().GetCurrentScene().(*scenes.SetupScene)

	w, h := a.Layout(1000, 800)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 800, h)

	vw, vh := scene.Document().Viewport()
	assert.Equal(t, 1000.0, vw)
	assert.Equal(t, 800.0, vh)

	// 无效尺寸回退到设置中的窗口尺寸
	w, h = a.Layout(0, 0)
	assert.Equal(t, config.GameWindowWidth, w)
	assert.Equal(t, config.GameWindowHeight, h)
}
