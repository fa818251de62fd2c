package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/utils"
)

// 窗口尺寸下限
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// ScreenSettings 显示设置
// 只保存窗口和调试开关，布阵结果不持久化
type ScreenSettings struct {
	WindowWidth  int  `yaml:"windowWidth"`  // 窗口宽度（逻辑像素）
	WindowHeight int  `yaml:"windowHeight"` // 窗口高度（逻辑像素）
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	ShowDebug    bool `yaml:"showDebug"`    // 是否显示调试信息
}

// DefaultSettings 返回默认设置
// 移动端默认全屏
func DefaultSettings() *ScreenSettings {
	return &ScreenSettings{
		WindowWidth:  config.GameWindowWidth,
		WindowHeight: config.GameWindowHeight,
		Fullscreen:   utils.IsMobile(),
		ShowDebug:    false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ScreenSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "screen"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// OpenSettingsManager 打开应用数据目录并创建设置管理器
// gdata 不可用时退回降级模式
func OpenSettingsManager(appName string) *SettingsManager {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[SettingsManager] Warning: storage dir unavailable: %v", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return NewSettingsManager(nil)
	}
	return NewSettingsManager(gdataManager)
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 缺失字段保留默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowWidth, loaded.WindowHeight = clampWindowSize(loaded.WindowWidth, loaded.WindowHeight)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ScreenSettings {
	return sm.settings
}

// SetWindowSize 设置窗口尺寸（不小于 MinWindowWidth x MinWindowHeight）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth, sm.settings.WindowHeight = clampWindowSize(width, height)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowDebug 设置调试信息开关
func (sm *SettingsManager) SetShowDebug(enabled bool) {
	sm.settings.ShowDebug = enabled
}

// ToggleDebug 切换调试信息开关，返回切换后的值
func (sm *SettingsManager) ToggleDebug() bool {
	sm.settings.ShowDebug = !sm.settings.ShowDebug
	return sm.settings.ShowDebug
}

func clampWindowSize(width, height int) (int, int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return width, height
}
