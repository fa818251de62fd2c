package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/ecs"
	"github.com/gonewx/battlegrid/pkg/surface"
)

// 配色
var (
	colorBackground    = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	colorHeader        = color.RGBA{R: 40, G: 46, B: 66, A: 255}
	colorCell          = color.RGBA{R: 52, G: 60, B: 84, A: 255}
	colorCellBorder    = color.RGBA{R: 80, G: 90, B: 120, A: 255}
	colorCellHover     = color.RGBA{R: 90, G: 150, B: 110, A: 255}
	colorCard          = color.RGBA{R: 170, G: 120, B: 60, A: 255}
	colorCardDragging  = color.RGBA{R: 230, G: 170, B: 80, A: 230}
	colorCardBorder    = color.RGBA{R: 250, G: 230, B: 190, A: 255}
	colorCardBorderOff = color.RGBA{R: 120, G: 80, B: 40, A: 255}
)

// RenderSystem 把布阵文档绘制到屏幕
//
// 绘制顺序即文档顺序（标题、格子、卡片），拖拽中的卡片最后绘制，
// 保证它总在其他卡片之上。所有矩形取视口坐标（已扣除滚动）
type RenderSystem struct {
	doc    *surface.Document
	battle *battle.Battle
	title  string

	showDebug bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(doc *surface.Document, b *battle.Battle, title string) *RenderSystem {
	return &RenderSystem{
		doc:    doc,
		battle: b,
		title:  title,
	}
}

// SetShowDebug 开关调试信息
func (s *RenderSystem) SetShowDebug(show bool) {
	s.showDebug = show
}

// DrawOrder 返回本帧元素绘制顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	elements := s.doc.Elements()
	dragging := s.battle.DraggingCard()
	if dragging == nil {
		return elements
	}

	order := make([]ecs.EntityID, 0, len(elements))
	for _, el := range elements {
		if el != dragging.Element() {
			order = append(order, el)
		}
	}
	return append(order, dragging.Element())
}

// Draw 绘制整个页面
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, el := range s.DrawOrder() {
		s.drawElement(screen, el)
	}

	if s.showDebug {
		for i, line := range s.DebugLines() {
			ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
		}
	}
}

// drawElement 按类名绘制单个元素
func (s *RenderSystem) drawElement(screen *ebiten.Image, el ecs.EntityID) {
	rect := s.doc.ClientRect(el)
	if rect.Width() <= 0 || rect.Height() <= 0 {
		return
	}
	x, y := float32(rect.Left), float32(rect.Top)
	w, h := float32(rect.Width()), float32(rect.Height())

	switch {
	case s.doc.HasClass(el, config.ClassCard):
		fill, border := colorCard, colorCardBorderOff
		if s.doc.HasClass(el, config.ClassCardDragging) {
			fill, border = colorCardDragging, colorCardBorder
		}
		vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, fill, false)
		vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 2, border, false)
		if label := s.doc.Label(el); label != "" {
			ebitenutil.DebugPrintAt(screen, label, int(x)+6, int(y+h/2)-8)
		}

	case s.doc.HasClass(el, config.ClassGridCell):
		fill := colorCell
		if s.doc.HasClass(el, config.ClassGridCellHover) {
			fill = colorCellHover
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorCellBorder, false)

	case s.doc.ElementID(el) == surface.HeaderElementID:
		vector.DrawFilledRect(screen, x, y, w, h, colorHeader, false)
		ebitenutil.DebugPrintAt(screen, s.title, int(x)+12, int(y+h/2)-8)
	}
}

// DebugLines 返回调试信息文本
func (s *RenderSystem) DebugLines() []string {
	scrollX, scrollY := s.doc.ScrollOffset()
	lines := []string{
		fmt.Sprintf("session %s", s.battle.ID()),
		fmt.Sprintf("scroll (%.0f, %.0f)", scrollX, scrollY),
	}

	if card := s.battle.DraggingCard(); card != nil {
		tracked := "-"
		if cell := card.LastCell(); cell != nil {
			tracked = fmt.Sprintf("(%d,%d)", cell.Row(), cell.Column())
		}
		lines = append(lines, fmt.Sprintf("dragging %s -> %s", card.Character().Name, tracked))
	}

	for _, card := range s.battle.Cards() {
		placed := "-"
		if cell := card.CurrentCell(); cell != nil {
			placed = fmt.Sprintf("(%d,%d)", cell.Row(), cell.Column())
		}
		lines = append(lines, fmt.Sprintf("%-8s %-8s %s", card.Character().Name, card.State(), placed))
	}
	return lines
}
