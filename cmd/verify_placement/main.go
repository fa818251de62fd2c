// verify_placement 无头布阵验证工具
//
// 按脚本依次执行拖放手势，并打印最终站位：
//
//	go run ./cmd/verify_placement -moves "1:0,2:42,3:43"
//
// 每个手势 "<角色ID>:<格子索引>" 表示在卡片中心按下、移动到目标格子中心、释放。
// 手势事件通过通道送入 Battle.Run 处理。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/surface"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "布阵配置文件（默认使用内置配置）")
	moves      = flag.String("moves", "", "手势脚本，如 \"1:0,2:42\"")
	touch      = flag.Bool("touch", false, "以触摸事件发送手势")
	timeout    = flag.Duration("timeout", 5*time.Second, "单个手势处理超时")
)

// move 一个拖放手势
type move struct {
	characterID int
	cellIndex   int
}

// parseMoves 解析手势脚本
func parseMoves(script string) ([]move, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	parts := strings.Split(script, ",")
	result := make([]move, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid move %q: want <characterID>:<cellIndex>", part)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid character id in %q: %w", part, err)
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid cell index in %q: %w", part, err)
		}
		result = append(result, move{characterID: id, cellIndex: index})
	}
	return result, nil
}

// harness 无头布阵页面
type harness struct {
	doc    *surface.Document
	page   *surface.Page
	battle *battle.Battle
	touch  bool
}

// newHarness 按配置构建页面并完成初始站位
func newHarness(cfg *config.BattleConfig) (*harness, error) {
	doc := surface.NewDocument(float64(cfg.Window.Width), float64(cfg.Window.Height))
	layout := surface.NewGridLayout(cfg.Grid)
	page := layout.Build(doc)

	roster := make([]battle.Character, 0, len(cfg.Roster))
	for _, c := range cfg.Roster {
		roster = append(roster, battle.Character{ID: c.ID, Name: c.Name})
	}

	b, err := battle.NewBattle(&battle.Config{
		Surface:     doc,
		Container:   page.Container,
		CellAnchors: page.Cells,
		Roster:      roster,
		CardType:    cfg.CardType,
	})
	if err != nil {
		return nil, err
	}
	layout.Apply(doc, page)

	// 无头运行时视口覆盖整个文档，手势坐标不受滚动影响
	_, contentHeight := doc.ContentSize()
	if vw, vh := doc.Viewport(); contentHeight > vh {
		doc.SetViewport(vw, contentHeight)
	}

	if err := b.InstantiatePlayers(cfg.InitialCells); err != nil {
		return nil, err
	}
	return &harness{doc: doc, page: page, battle: b}, nil
}

// gesture 生成一个手势的事件序列
func (h *harness) gesture(m move) ([]battle.InputEvent, error) {
	elementID := config.CardElementPrefix + strconv.Itoa(m.characterID)
	card := h.battle.FindCard(elementID)
	if card == nil {
		return nil, fmt.Errorf("no card for character %d", m.characterID)
	}
	if m.cellIndex < 0 || m.cellIndex >= len(h.page.Cells) {
		return nil, fmt.Errorf("cell %d: %w", m.cellIndex, battle.ErrCellIndexOutOfRange)
	}

	px, py := center(h.doc.ClientRect(card.Element()))
	target := elementID
	if id, ok := h.doc.HitTest(px, py); ok {
		target = id
	}

	tx, ty := center(h.doc.ClientRect(h.page.Cells[m.cellIndex]))

	return []battle.InputEvent{
		h.event(battle.EventPress, target, px, py),
		h.event(battle.EventMove, "", tx, ty),
		h.event(battle.EventRelease, "", tx, ty),
	}, nil
}

func (h *harness) event(kind battle.EventKind, target string, x, y float64) battle.InputEvent {
	if h.touch {
		return battle.InputEvent{
			Kind:     kind,
			Source:   battle.SourceTouch,
			TargetID: target,
			Touches:  []battle.Point{{X: x, Y: y}},
		}
	}
	return battle.InputEvent{Kind: kind, Source: battle.SourceMouse, TargetID: target, X: x, Y: y}
}

// play 逐个手势送入 Battle.Run
func (h *harness) play(ctx context.Context, script []move, perGesture time.Duration) error {
	for _, m := range script {
		events, err := h.gesture(m)
		if err != nil {
			return err
		}

		ch := make(chan battle.InputEvent, len(events))
		for _, ev := range events {
			ch <- ev
		}
		close(ch)

		gestureCtx, cancel := context.WithTimeout(ctx, perGesture)
		err = h.battle.Run(gestureCtx, ch)
		cancel()
		if err != nil {
			return fmt.Errorf("gesture %d:%d: %w", m.characterID, m.cellIndex, err)
		}
	}
	return nil
}

// verify 检查静止时的站位互斥
func (h *harness) verify() error {
	occupied := make(map[int]string)
	for _, card := range h.battle.Cards() {
		cell := card.CurrentCell()
		if cell == nil {
			continue
		}
		if other, ok := occupied[cell.Index()]; ok {
			return fmt.Errorf("%s and %s both placed at (%d,%d)",
				other, card.Character().Name, cell.Row(), cell.Column())
		}
		occupied[cell.Index()] = card.Character().Name
	}
	return nil
}

// report 打印站位列表与网格
func (h *harness) report(w io.Writer) {
	fmt.Fprintf(w, "session %s\n", h.battle.ID())

	byCell := make(map[int]int)
	for _, card := range h.battle.Cards() {
		cell := card.CurrentCell()
		if cell == nil {
			fmt.Fprintf(w, "  %-8s unplaced\n", card.Character().Name)
			continue
		}
		byCell[cell.Index()] = card.Character().ID
		fmt.Fprintf(w, "  %-8s (%d,%d) #%d\n", card.Character().Name, cell.Row(), cell.Column(), cell.Index())
	}

	for i := range h.battle.GridCells() {
		if id, ok := byCell[i]; ok {
			fmt.Fprintf(w, " %d", id)
		} else {
			fmt.Fprint(w, " .")
		}
		if (i+1)%config.GridWidth == 0 {
			fmt.Fprintln(w)
		}
	}
}

func center(b battle.BoundingBox) (float64, float64) {
	return (b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultBattleConfig()
	if *configPath != "" {
		loaded, err := config.LoadBattleConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	script, err := parseMoves(*moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	h, err := newHarness(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	h.touch = *touch

	if err := h.play(context.Background(), script, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h.report(os.Stdout)

	if err := h.verify(); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}
