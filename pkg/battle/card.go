package battle

import (
	"log"
	"strconv"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/ecs"
)

// Occupancy 查询格子当前被哪张卡片占用
// 由布阵编排器实现，显式传入卡片操作，避免全局访问
type Occupancy interface {
	// Occupant 返回已提交到 cell 的卡片（排除 except 及同一角色），没有时返回 nil
	Occupant(cell *GridCell, except *Card) *Card
}

// Card 可拖拽的角色卡片
// 拥有自己的可视元素以及放置状态（已提交格子、跟踪格子）
type Card struct {
	character Character
	element   ecs.EntityID
	surface   Surface

	dragging    bool
	currentCell *GridCell // 已提交的格子
	lastCell    *GridCell // 拖拽中跟踪的格子（释放时提交）
}

// NewCard 在 container 下创建卡片元素并返回卡片
// 元素ID为 "game__card-<角色ID>"，类名为 game__card 与 game__card-<类型>
func NewCard(surface Surface, container ecs.EntityID, character Character, cardType string) *Card {
	element := surface.CreateElement(
		config.CardElementPrefix+strconv.Itoa(character.ID),
		container,
		config.ClassCard,
		config.ClassCardTypeBase+cardType,
	)
	surface.SetOffset(element, 0, 0)
	surface.SetLabel(element, character.Name)

	return &Card{
		character: character,
		element:   element,
		surface:   surface,
	}
}

// Character 返回卡片绑定的角色
func (c *Card) Character() Character { return c.character }

// Element 返回卡片可视元素
func (c *Card) Element() ecs.EntityID { return c.element }

// ElementID 返回卡片元素标识符
func (c *Card) ElementID() string { return c.surface.ElementID(c.element) }

// CurrentCell 返回已提交的格子（可能为 nil）
func (c *Card) CurrentCell() *GridCell { return c.currentCell }

// LastCell 返回跟踪的格子（可能为 nil）
func (c *Card) LastCell() *GridCell { return c.lastCell }

// IsDragging 是否正在拖拽
func (c *Card) IsDragging() bool { return c.dragging }

// State 返回当前放置状态
func (c *Card) State() CardState {
	switch {
	case c.dragging:
		return CardDragging
	case c.currentCell != nil:
		return CardPlaced
	default:
		return CardIdle
	}
}

// Placement 返回放置状态快照
func (c *Card) Placement() Placement {
	return Placement{
		State:     c.State(),
		Committed: c.currentCell,
		Tracked:   c.lastCell,
	}
}

// containerBounds 父容器的文档矩形
func (c *Card) containerBounds() BoundingBox {
	return BoundsOf(c.surface, c.surface.Parent(c.element))
}

// SnapToCell 将卡片对齐到格子并提交
// 偏移 = 格子左上角 - 容器左上角。非拖拽状态下跟踪格子同步为该格子，
// 拖拽中的卡片保留本次手势的跟踪格子
func (c *Card) SnapToCell(cell *GridCell) {
	if cell == nil {
		log.Printf("[Card] 警告: %s 尝试对齐到空格子，已忽略", c.character.Name)
		return
	}

	containerBox := c.containerBounds()
	cellBox := BoundsOf(c.surface, cell.anchor)

	c.surface.SetOffset(c.element, cellBox.Left-containerBox.Left, cellBox.Top-containerBox.Top)
	c.currentCell = cell
	if !c.dragging {
		c.lastCell = cell
	}
}

// BeginDrag 标记卡片为拖拽中
// 只改变外观和拖拽标志，不修改格子字段
func (c *Card) BeginDrag() {
	c.surface.AddClass(c.element, config.ClassCardDragging)
	c.dragging = true
}

// UpdateDragPosition 拖拽中移动卡片并解析命中格子
// x, y 为文档坐标（指针位置）。卡片中心移动到指针处后，按注册表顺序
// 检测每个格子：收缩边距为卡片宽度一半，第一个满足的格子获胜，
// 之后的格子一律视为未悬停。获胜格子若被其他角色占用，该卡片被换到
// 本卡片的跟踪格子上
func (c *Card) UpdateDragPosition(x, y float64, cells []*GridCell, occupancy Occupancy) {
	containerBox := c.containerBounds()
	cardBox := BoundsOf(c.surface, c.element)
	width, height := cardBox.Width(), cardBox.Height()

	c.surface.SetOffset(c.element,
		(x-containerBox.Left)-width/2,
		(y-containerBox.Top)-height/2,
	)

	// 移动后重新读取卡片矩形
	cardBox = BoundsOf(c.surface, c.element)
	padding := cardBox.Width() / 2

	found := false
	for _, cell := range cells {
		if !found && cardBox.OverlapsWithMargin(BoundsOf(c.surface, cell.anchor), padding) {
			found = true
			c.hoverCell(cell, occupancy)
			continue
		}

		if c.surface.HasClass(cell.anchor, config.ClassGridCellHover) {
			c.surface.RemoveClass(cell.anchor, config.ClassGridCellHover)
		}
	}
}

// hoverCell 处理获胜格子：悬停标记、占用者置换、更新跟踪格子
func (c *Card) hoverCell(cell *GridCell, occupancy Occupancy) {
	if !c.surface.HasClass(cell.anchor, config.ClassGridCellHover) {
		c.surface.AddClass(cell.anchor, config.ClassGridCellHover)
	}

	if occupancy != nil {
		if occupant := occupancy.Occupant(cell, c); occupant != nil {
			if c.lastCell == nil {
				// 没有可交换的格子：保持悬停提示，但不占领该格子
				log.Printf("[Card] %s 无可交换格子，不占领 (%d,%d)（被 %s 占用）",
					c.character.Name, cell.row, cell.column, occupant.character.Name)
				return
			}
			if !c.lastCell.SameSlot(cell) {
				log.Printf("[Card] %s 置换 %s: (%d,%d) -> (%d,%d)",
					c.character.Name, occupant.character.Name,
					cell.row, cell.column, c.lastCell.row, c.lastCell.column)
				occupant.SnapToCell(c.lastCell)
			}
		}
	}

	c.lastCell = cell
}

// EndDrag 结束拖拽
// 移除拖拽外观；有跟踪格子时提交到该格子，否则卡片停留在释放处；
// 最后清除所有格子的悬停标记
func (c *Card) EndDrag(cells []*GridCell) {
	c.surface.RemoveClass(c.element, config.ClassCardDragging)
	c.dragging = false

	if c.lastCell != nil {
		c.SnapToCell(c.lastCell)
	} else {
		log.Printf("[Card] %s 释放时没有跟踪格子，保持原位", c.character.Name)
	}

	for _, cell := range cells {
		if c.surface.HasClass(cell.anchor, config.ClassGridCellHover) {
			c.surface.RemoveClass(cell.anchor, config.ClassGridCellHover)
		}
	}
}
