package battle

import "github.com/gonewx/battlegrid/pkg/ecs"

// GridCell 网格注册表中的一个格子
// 行列均为 1-based，构造后不可变
type GridCell struct {
	anchor ecs.EntityID // 格子对应的可视锚点元素
	row    int
	column int
	index  int // 注册表索引（0-based）
}

// NewGridRegistry 按文档顺序枚举格子锚点并编号
// row = 1 + index/width, column = 1 + index%width。
// 注册表顺序即行优先顺序，命中检测的先到先得规则依赖这一顺序
func NewGridRegistry(anchors []ecs.EntityID, width int) []*GridCell {
	cells := make([]*GridCell, 0, len(anchors))
	for i, anchor := range anchors {
		cells = append(cells, &GridCell{
			anchor: anchor,
			row:    1 + i/width,
			column: 1 + i%width,
			index:  i,
		})
	}
	return cells
}

// Anchor 返回锚点元素
func (c *GridCell) Anchor() ecs.EntityID { return c.anchor }

// Row 返回行号（1-based）
func (c *GridCell) Row() int { return c.row }

// Column 返回列号（1-based）
func (c *GridCell) Column() int { return c.column }

// Index 返回注册表索引（0-based）
func (c *GridCell) Index() int { return c.index }

// SameSlot 按 (row, column) 判断是否为同一格子，nil 与任何格子都不相同
func (c *GridCell) SameSlot(other *GridCell) bool {
	if c == nil || other == nil {
		return false
	}
	return c.row == other.row && c.column == other.column
}
