// validate_config 校验布阵配置文件
//
//	go run ./cmd/validate_config data/battle.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonewx/battlegrid/pkg/config"
)

func main() {
	path := "data/battle.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if !validate(os.Stdout, path) {
		os.Exit(1)
	}
}

// validate 输出校验结果，全部通过时返回 true
func validate(w io.Writer, path string) bool {
	cfg, err := config.LoadBattleConfig(path)
	if err != nil {
		fmt.Fprintf(w, "❌ 配置无效: %v\n", err)
		return false
	}

	fmt.Fprintf(w, "✅ YAML 格式正确\n")
	fmt.Fprintf(w, "✅ 网格: %d 行 x %d 列，共 %d 个格子\n", cfg.Grid.Rows, config.GridWidth, cfg.CellCount())
	fmt.Fprintf(w, "✅ 角色数量: %d\n", len(cfg.Roster))

	outOfRange := 0
	for i, index := range cfg.InitialCells {
		if index < 0 || index >= cfg.CellCount() {
			fmt.Fprintf(w, "❌ 第 %d 个初始站位 %d 超出网格范围\n", i+1, index)
			outOfRange++
		}
	}
	if outOfRange > 0 {
		fmt.Fprintf(w, "❌ 有 %d 个初始站位越界\n", outOfRange)
		return false
	}

	if len(cfg.InitialCells) < len(cfg.Roster) {
		fmt.Fprintf(w, "⚠️  %d 名角色没有初始站位\n", len(cfg.Roster)-len(cfg.InitialCells))
	}
	fmt.Fprintf(w, "✅ 所有初始站位有效\n")
	return true
}
