package surface

import (
	"fmt"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/ecs"
)

// 页面元素标识符
const (
	HeaderElementID    = "game__header"
	GridElementID      = "game__grid"
	ContainerElementID = "game__grid__characters-container"
	cellElementPrefix  = "game__grid__cell-"
)

// Page 布阵页面的静态元素
type Page struct {
	Header    ecs.EntityID
	Grid      ecs.EntityID
	Container ecs.EntityID
	// Cells 格子锚点，按文档（行优先）顺序
	Cells []ecs.EntityID
}

// GridLayout 网格页面布局
// 格子尺寸随视口宽度变化，限制在 [MinCellSize, MaxCellSize] 内；网格水平居中
type GridLayout struct {
	Rows         int
	MaxCellSize  float64
	MinCellSize  float64
	Gap          float64
	Margin       float64
	HeaderHeight float64
}

// NewGridLayout 从网格配置创建布局
func NewGridLayout(cfg config.GridConfig) *GridLayout {
	return &GridLayout{
		Rows:         cfg.Rows,
		MaxCellSize:  cfg.MaxCellSize,
		MinCellSize:  cfg.MinCellSize,
		Gap:          cfg.Gap,
		Margin:       cfg.Margin,
		HeaderHeight: cfg.HeaderHeight,
	}
}

// CellSize 计算指定视口宽度下的格子尺寸
func (l *GridLayout) CellSize(viewportWidth float64) float64 {
	columns := float64(config.GridWidth)
	size := (viewportWidth - 2*l.Margin - (columns-1)*l.Gap) / columns
	return clamp(size, l.MinCellSize, l.MaxCellSize)
}

// Build 在文档中创建页面元素并完成第一次布局
// 元素顺序：标题、网格、格子、卡片容器。卡片稍后由布阵编排器创建在容器中，
// 因此总在格子之上
func (l *GridLayout) Build(doc *Document) *Page {
	page := &Page{
		Header: doc.CreateElement(HeaderElementID, 0, "game__header"),
		Grid:   doc.CreateElement(GridElementID, 0, config.ClassGrid),
	}

	count := l.Rows * config.GridWidth
	page.Cells = make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%s%d", cellElementPrefix, i)
		page.Cells = append(page.Cells, doc.CreateElement(id, page.Grid, config.ClassGridCell))
	}

	page.Container = doc.CreateElement(ContainerElementID, page.Grid, config.ClassContainer)

	l.Apply(doc, page)
	return page
}

// Apply 按当前视口重新布局页面
// 只改变流式元素的位置和尺寸，卡片偏移由 Battle.RefreshAllPositions 重新计算
func (l *GridLayout) Apply(doc *Document, page *Page) {
	viewportWidth, _ := doc.Viewport()
	size := l.CellSize(viewportWidth)
	step := size + l.Gap

	columns := float64(config.GridWidth)
	gridWidth := columns*size + (columns-1)*l.Gap
	gridHeight := float64(l.Rows)*size + float64(l.Rows-1)*l.Gap
	if l.Rows <= 0 {
		gridHeight = 0
	}

	gridLeft := (viewportWidth - gridWidth) / 2
	if gridLeft < l.Margin {
		gridLeft = l.Margin
	}

	doc.SetBox(page.Header, l.Margin, l.Margin, viewportWidth-2*l.Margin, l.HeaderHeight)

	gridTop := l.Margin + l.HeaderHeight + l.Margin
	doc.SetBox(page.Grid, gridLeft, gridTop, gridWidth, gridHeight)
	doc.SetBox(page.Container, gridLeft, gridTop, gridWidth, gridHeight)

	for i, cell := range page.Cells {
		col := float64(i % config.GridWidth)
		row := float64(i / config.GridWidth)
		doc.SetBox(cell, gridLeft+col*step, gridTop+row*step, size, size)
	}

	for _, card := range doc.ElementsWithClass(config.ClassCard) {
		doc.SetSize(card, size, size)
	}

	contentWidth := gridLeft + gridWidth + l.Margin
	if contentWidth < viewportWidth {
		contentWidth = viewportWidth
	}
	doc.SetContentSize(contentWidth, gridTop+gridHeight+l.Margin)
}
