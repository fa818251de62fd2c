// Package main 是布阵界面的桌面端入口
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gonewx/battlegrid/pkg/app"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/embedded"
	"github.com/gonewx/battlegrid/pkg/game"
)

// 默认配置在嵌入文件系统中的路径
const defaultConfigPath = "data/battle.yaml"

var (
	verbose    bool
	configPath string
	rows       int
	showDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "battlegrid",
	Short: "Battle setup placement grid",
	Long:  `Drag character cards onto a 6-wide placement grid with hover feedback, swaps and snap-back.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "battle config YAML (default: embedded data/battle.yaml)")
	rootCmd.Flags().IntVar(&rows, "rows", 0, "override grid row count")
	rootCmd.Flags().BoolVar(&showDebug, "debug", false, "show debug overlay")
}

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置文件（或嵌入的默认配置）并应用命令行覆盖
func loadConfig() (*config.BattleConfig, error) {
	var (
		cfg *config.BattleConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadBattleConfig(configPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(defaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("read embedded config: %w", err)
		}
		cfg, err = config.ParseBattleConfig(data)
	}
	if err != nil {
		return nil, err
	}

	if rows > 0 {
		cfg.Grid.Rows = rows
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	settings := game.OpenSettingsManager("battlegrid")

	gameApp, err := app.NewApp(app.Config{
		Verbose:   verbose,
		Battle:    cfg,
		Settings:  settings,
		ShowDebug: showDebug,
	})
	if err != nil {
		return err
	}

	s := settings.GetSettings()
	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Fullscreen)

	log.Printf("[Main] 启动窗口 %dx%d", s.WindowWidth, s.WindowHeight)
	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	gameApp.RememberWindowSize()
	return nil
}
