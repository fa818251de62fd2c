package mobile

import (
	"github.com/gonewx/battlegrid/pkg/app"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/game"
)

// AppName 移动端数据目录名
const AppName = "battlegrid"

// appConfig 移动端应用配置
// 使用内置默认布阵；设置管理器为 nil 时由 App 降级为内存设置
func appConfig(settings *game.SettingsManager) app.Config {
	return app.Config{
		Verbose:  true,
		Battle:   config.DefaultBattleConfig(),
		Settings: settings,
	}
}
