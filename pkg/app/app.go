// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/game"
	"github.com/gonewx/battlegrid/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Battle 布阵配置，为 nil 时使用内置默认配置
	Battle *config.BattleConfig
	// Settings 设置管理器，为 nil 时使用降级模式（不持久化）
	Settings *game.SettingsManager
	// ShowDebug 强制显示调试信息（覆盖已保存的设置，不写回）
	ShowDebug bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	battleConfig := cfg.Battle
	if battleConfig == nil {
		battleConfig = config.DefaultBattleConfig()
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	if cfg.ShowDebug {
		settings.SetShowDebug(true)
	}

	setupScene, err := scenes.NewSetupScene(battleConfig, settings)
	if err != nil {
		return nil, fmt.Errorf("布阵场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(setupScene)
	log.Printf("[App] 布阵场景已启动, 会话 %s", setupScene.Battle().ID())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			s := a.settings.GetSettings()
			ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", s.WindowWidth, s.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}

	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，页面按视口重新布局；尺寸变化转发给当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		s := a.settings.GetSettings()
		return s.WindowWidth, s.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// RememberWindowSize 记录当前窗口尺寸并保存（窗口模式下退出时调用）
func (a *App) RememberWindowSize() {
	if ebiten.IsFullscreen() {
		return
	}
	width, height := ebiten.WindowSize()
	if width <= 0 || height <= 0 {
		return
	}
	a.settings.SetWindowSize(width, height)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}
