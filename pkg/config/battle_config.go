package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示布阵配置不合法
var ErrInvalidConfig = errors.New("invalid battle config")

// BattleConfig 布阵界面配置数据结构
// 定义网格尺寸、窗口、角色名单和初始站位
type BattleConfig struct {
	Grid         GridConfig        `yaml:"grid"`         // 网格布局参数
	Window       WindowConfig      `yaml:"window"`       // 窗口参数
	CardType     string            `yaml:"cardType"`     // 卡片类型，如 "player"，默认 "player"
	Roster       []CharacterConfig `yaml:"roster"`       // 角色名单（按顺序生成卡片）
	InitialCells []int             `yaml:"initialCells"` // 初始站位（网格注册表索引，0-based）
}

// GridConfig 网格布局参数
// 列数固定为 GridWidth，不可配置
type GridConfig struct {
	Rows         int     `yaml:"rows"`         // 行数，默认 8
	MaxCellSize  float64 `yaml:"maxCellSize"`  // 格子最大边长（像素）
	MinCellSize  float64 `yaml:"minCellSize"`  // 格子最小边长（像素）
	Gap          float64 `yaml:"gap"`          // 格子间距（像素），可以为 0
	Margin       float64 `yaml:"margin"`       // 左右页边距（像素）
	HeaderHeight float64 `yaml:"headerHeight"` // 标题栏高度（像素）
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CharacterConfig 单个角色配置
type CharacterConfig struct {
	ID   int    `yaml:"id"`   // 角色ID（正整数，唯一）
	Name string `yaml:"name"` // 角色名称
}

// CellCount 返回网格格子总数
func (c *BattleConfig) CellCount() int {
	return c.Grid.Rows * GridWidth
}

// DefaultBattleConfig 返回内置默认配置（6 名角色，8 行网格）
func DefaultBattleConfig() *BattleConfig {
	cfg := &BattleConfig{
		Roster: []CharacterConfig{
			{ID: 1, Name: "Cloud"},
			{ID: 2, Name: "Tifa"},
			{ID: 3, Name: "Barret"},
			{ID: 4, Name: "Aerith"},
			{ID: 5, Name: "Red XII"},
			{ID: 6, Name: "Vincent"},
		},
		Grid:         GridConfig{Gap: DefaultCellGap},
		InitialCells: append([]int(nil), DefaultInitialCells...),
	}
	applyBattleDefaults(cfg)
	return cfg
}

// LoadBattleConfig 从YAML文件加载布阵配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*BattleConfig - 解析并校验后的配置
//	error - 文件读取、解析或校验失败时返回错误
func LoadBattleConfig(filepath string) (*BattleConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle config file %s: %w", filepath, err)
	}

	cfg, err := ParseBattleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseBattleConfig 从YAML数据解析布阵配置
// 缺失的可选字段使用默认值
func ParseBattleConfig(data []byte) (*BattleConfig, error) {
	// Gap 允许显式配置为 0，因此在解析前预置默认值
	cfg := BattleConfig{Grid: GridConfig{Gap: DefaultCellGap}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse battle config YAML: %w", err)
	}

	applyBattleDefaults(&cfg)

	if err := validateBattleConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配置（命令行覆盖字段后再次调用）
func (c *BattleConfig) Validate() error {
	return validateBattleConfig(c)
}

// applyBattleDefaults 为缺失的可选字段设置默认值
func applyBattleDefaults(cfg *BattleConfig) {
	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = DefaultGridRows
	}
	if cfg.Grid.MaxCellSize == 0 {
		cfg.Grid.MaxCellSize = DefaultMaxCellSize
	}
	if cfg.Grid.MinCellSize == 0 {
		cfg.Grid.MinCellSize = DefaultMinCellSize
	}
	if cfg.Grid.Margin == 0 {
		cfg.Grid.Margin = DefaultPageMargin
	}
	if cfg.Grid.HeaderHeight == 0 {
		cfg.Grid.HeaderHeight = DefaultHeaderHeight
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = GameWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = GameWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = GameWindowTitle
	}

	if cfg.CardType == "" {
		cfg.CardType = DefaultCardType
	}
}

// validateBattleConfig 验证配置的完整性和合法性
// 初始站位索引越界不在此处检查：由布阵编排器在放置前统一校验
func validateBattleConfig(cfg *BattleConfig) error {
	if cfg.Grid.Rows < 1 {
		return fmt.Errorf("%w: grid rows must be at least 1, got %d", ErrInvalidConfig, cfg.Grid.Rows)
	}
	if cfg.Grid.MinCellSize <= 0 || cfg.Grid.MaxCellSize < cfg.Grid.MinCellSize {
		return fmt.Errorf("%w: cell size bounds must satisfy 0 < min <= max, got min=%.1f max=%.1f",
			ErrInvalidConfig, cfg.Grid.MinCellSize, cfg.Grid.MaxCellSize)
	}
	if cfg.Grid.Gap < 0 || cfg.Grid.Margin < 0 || cfg.Grid.HeaderHeight < 0 {
		return fmt.Errorf("%w: gap, margin and headerHeight cannot be negative", ErrInvalidConfig)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, cfg.Window.Width, cfg.Window.Height)
	}

	if len(cfg.Roster) == 0 {
		return fmt.Errorf("%w: roster must contain at least one character", ErrInvalidConfig)
	}
	seen := make(map[int]bool, len(cfg.Roster))
	for i, character := range cfg.Roster {
		if character.ID <= 0 {
			return fmt.Errorf("%w: roster[%d]: id must be positive, got %d", ErrInvalidConfig, i, character.ID)
		}
		if seen[character.ID] {
			return fmt.Errorf("%w: roster[%d]: duplicate id %d", ErrInvalidConfig, i, character.ID)
		}
		seen[character.ID] = true
		if character.Name == "" {
			return fmt.Errorf("%w: roster[%d]: name is required", ErrInvalidConfig, i)
		}
	}

	return nil
}
