package battle_test

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/ecs"
	"github.com/gonewx/battlegrid/pkg/surface"
)

const (
	testCellSize = 50.0
	testOriginX  = 10.0
	testOriginY  = 30.0
)

// fixture 一个手工布局的布阵页面：容器左上角在 (testOriginX, testOriginY)，
// 格子按行优先排列，卡片尺寸与格子相同
type fixture struct {
	doc       *surface.Document
	container ecs.EntityID
	anchors   []ecs.EntityID
	gap       float64
	battle    *battle.Battle
}

func defaultRoster() []battle.Character {
	return []battle.Character{
		{ID: 1, Name: "Cloud"},
		{ID: 2, Name: "Tifa"},
		{ID: 3, Name: "Barret"},
		{ID: 4, Name: "Aerith"},
		{ID: 5, Name: "Red XII"},
		{ID: 6, Name: "Vincent"},
	}
}

func newFixture(t require.TestingT, rows int, gap float64, roster []battle.Character) *fixture {
	doc := surface.NewDocument(800, 600)
	f := &fixture{doc: doc, gap: gap}

	grid := doc.CreateElement("grid", 0, config.ClassGrid)
	for i := 0; i < rows*config.GridWidth; i++ {
		f.anchors = append(f.anchors, doc.CreateElement(fmt.Sprintf("cell-%d", i), grid, config.ClassGridCell))
	}
	f.container = doc.CreateElement("characters", grid, config.ClassContainer)
	f.layout(testOriginX, testOriginY, testCellSize)

	b, err := battle.NewBattle(&battle.Config{
		Surface:     doc,
		Container:   f.container,
		CellAnchors: f.anchors,
		Roster:      roster,
	})
	require.NoError(t, err)
	f.battle = b

	for _, card := range b.Cards() {
		doc.SetSize(card.Element(), testCellSize, testCellSize)
	}
	return f
}

// layout 以给定原点与格子尺寸重新排布格子和容器
func (f *fixture) layout(originX, originY, size float64) {
	rows := len(f.anchors) / config.GridWidth
	step := size + f.gap
	for i, anchor := range f.anchors {
		col := float64(i % config.GridWidth)
		row := float64(i / config.GridWidth)
		f.doc.SetBox(anchor, originX+col*step, originY+row*step, size, size)
	}
	width := float64(config.GridWidth)*step - f.gap
	height := float64(rows)*step - f.gap
	f.doc.SetBox(f.container, originX, originY, width, height)
}

// cellCenter 返回格子中心的视口坐标
func (f *fixture) cellCenter(index int) (float64, float64) {
	rect := f.doc.ClientRect(f.anchors[index])
	return (rect.Left + rect.Right) / 2, (rect.Top + rect.Bottom) / 2
}

func (f *fixture) card(name string) *battle.Card {
	for _, card := range f.battle.Cards() {
		if card.Character().Name == name {
			return card
		}
	}
	return nil
}

func (f *fixture) press(card *battle.Card, x, y float64) {
	f.battle.Dispatch(battle.InputEvent{Kind: battle.EventPress, TargetID: card.ElementID(), X: x, Y: y})
}

// pressAt 在格子中心按下
func (f *fixture) pressAt(card *battle.Card, index int) {
	x, y := f.cellCenter(index)
	f.press(card, x, y)
}

func (f *fixture) move(x, y float64) {
	f.battle.Dispatch(battle.InputEvent{Kind: battle.EventMove, X: x, Y: y})
}

func (f *fixture) release() {
	f.battle.Dispatch(battle.InputEvent{Kind: battle.EventRelease})
}

// dragTo 完整手势：在卡片中心按下，移动到目标格子中心，释放
func (f *fixture) dragTo(card *battle.Card, index int) {
	rect := f.doc.ClientRect(card.Element())
	f.press(card, (rect.Left+rect.Right)/2, (rect.Top+rect.Bottom)/2)
	f.move(f.cellCenter(index))
	f.release()
}

// cellIndexOf 返回卡片已提交格子的索引，未放置时返回 -1
func cellIndexOf(card *battle.Card) int {
	if card.CurrentCell() == nil {
		return -1
	}
	return card.CurrentCell().Index()
}

// hoveredCells 返回带悬停标记的格子索引
func (f *fixture) hoveredCells() []int {
	hovered := make([]int, 0)
	for i, anchor := range f.anchors {
		if f.doc.HasClass(anchor, config.ClassGridCellHover) {
			hovered = append(hovered, i)
		}
	}
	return hovered
}

// expectedOffset 返回卡片对齐到格子时应有的偏移
func (f *fixture) expectedOffset(index int) (float64, float64) {
	cell := battle.BoundsOf(f.doc, f.anchors[index])
	container := battle.BoundsOf(f.doc, f.container)
	return cell.Left - container.Left, cell.Top - container.Top
}
