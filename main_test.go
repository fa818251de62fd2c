package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/embedded"
)

// resetFlags 恢复命令行参数默认值
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, rows, verbose, showDebug = "", 0, false, false
	})
}

func TestLoadConfig_Embedded(t *testing.T) {
	resetFlags(t)
	embedded.Init(dataFS)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Grid.Rows != config.DefaultGridRows {
		t.Errorf("Rows = %d, want %d", cfg.Grid.Rows, config.DefaultGridRows)
	}
	if len(cfg.Roster) != 6 || cfg.Roster[0].Name != "Cloud" {
		t.Errorf("Roster = %+v", cfg.Roster)
	}
	if len(cfg.InitialCells) != 6 || cfg.InitialCells[0] != 42 {
		t.Errorf("InitialCells = %v", cfg.InitialCells)
	}
}

func TestLoadConfig_FileAndRowsOverride(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "battle.yaml")
	content := "grid:\n  rows: 3\nroster:\n  - { id: 1, name: \"Cloud\" }\ninitialCells: [0]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	configPath = path
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Grid.Rows != 3 {
		t.Errorf("Rows = %d, want 3", cfg.Grid.Rows)
	}

	rows = 10
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() with --rows error: %v", err)
	}
	if cfg.Grid.Rows != 10 {
		t.Errorf("Rows = %d, want 10", cfg.Grid.Rows)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := loadConfig(); err == nil {
		t.Fatal("loadConfig() should fail for missing file")
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, []byte("roster: []\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	configPath = path

	_, err := loadConfig()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("loadConfig() error = %v, want ErrInvalidConfig", err)
	}
}
