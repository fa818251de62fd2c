// Package battle 实现布阵界面的拖放碰撞与放置引擎
//
// Battle 持有网格注册表、卡片集合和唯一的拖拽引用，
// 把指针输入路由到 Card 操作。所有操作在单一消费者中同步执行。
package battle

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/ecs"
)

// Config 布阵编排器的依赖
type Config struct {
	// Surface 渲染表面
	Surface Surface
	// Container 卡片的父容器元素（卡片偏移相对它计算）
	Container ecs.EntityID
	// CellAnchors 格子锚点元素，按文档顺序排列
	CellAnchors []ecs.EntityID
	// Roster 角色名单，按顺序生成卡片
	Roster []Character
	// CardType 卡片类型，默认 "player"
	CardType string
}

// Validate 检查依赖是否齐全
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is required", ErrInvalidBattleConfig)
	}
	if c.Surface == nil {
		return fmt.Errorf("%w: Surface is required", ErrInvalidBattleConfig)
	}
	if c.Container == 0 {
		return fmt.Errorf("%w: Container is required", ErrInvalidBattleConfig)
	}
	if len(c.CellAnchors) == 0 {
		return fmt.Errorf("%w: at least one cell anchor is required", ErrInvalidBattleConfig)
	}
	seen := make(map[int]bool, len(c.Roster))
	for i, character := range c.Roster {
		if seen[character.ID] {
			return fmt.Errorf("%w: roster[%d]: duplicate character id %d", ErrInvalidBattleConfig, i, character.ID)
		}
		seen[character.ID] = true
	}
	return nil
}

// Battle 布阵编排器
type Battle struct {
	id        string
	surface   Surface
	container ecs.EntityID

	gridCells    []*GridCell
	cards        []*Card
	draggingCard *Card
}

// NewBattle 创建布阵编排器
// 构建网格注册表（宽度固定为 config.GridWidth），并为名单中每个角色创建卡片
func NewBattle(cfg *Config) (*Battle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cardType := cfg.CardType
	if cardType == "" {
		cardType = config.DefaultCardType
	}

	b := &Battle{
		id:        uuid.NewString(),
		surface:   cfg.Surface,
		container: cfg.Container,
		gridCells: NewGridRegistry(cfg.CellAnchors, config.GridWidth),
		cards:     make([]*Card, 0, len(cfg.Roster)),
	}

	for _, character := range cfg.Roster {
		b.cards = append(b.cards, NewCard(cfg.Surface, cfg.Container, character, cardType))
	}

	log.Printf("[Battle] 会话 %s 创建: %d 个格子, %d 张卡片", b.id, len(b.gridCells), len(b.cards))
	return b, nil
}

// ID 返回会话ID
func (b *Battle) ID() string { return b.id }

// GridCells 返回网格注册表（只读，不要修改）
func (b *Battle) GridCells() []*GridCell { return b.gridCells }

// Cards 返回卡片集合（只读，不要修改）
func (b *Battle) Cards() []*Card { return b.cards }

// DraggingCard 返回正在拖拽的卡片，没有时返回 nil
func (b *Battle) DraggingCard() *Card { return b.draggingCard }

// SetDraggingCard 设置拖拽中的卡片，是"最多一张卡片拖拽"的唯一入口
//   - card != nil: 结束已有拖拽（如果有），开始拖拽 card
//   - card == nil: 结束已有拖拽；没有拖拽时为空操作
func (b *Battle) SetDraggingCard(card *Card) {
	if card != nil {
		if b.draggingCard == card {
			return
		}
		if b.draggingCard != nil {
			log.Printf("[Battle] 会话 %s: %s 仍在拖拽，先结束", b.id, b.draggingCard.character.Name)
			b.draggingCard.EndDrag(b.gridCells)
		}
		card.BeginDrag()
		b.draggingCard = card
		log.Printf("[Battle] 会话 %s: 开始拖拽 %s", b.id, card.character.Name)
		return
	}

	if b.draggingCard == nil {
		return
	}

	released := b.draggingCard
	released.EndDrag(b.gridCells)
	b.draggingCard = nil

	if cell := released.CurrentCell(); cell != nil {
		log.Printf("[Battle] 会话 %s: %s 放置到 (%d,%d)", b.id, released.character.Name, cell.row, cell.column)
	} else {
		log.Printf("[Battle] 会话 %s: %s 释放，未放置", b.id, released.character.Name)
	}
}

// FindCard 按元素标识符线性查找卡片，找不到返回 nil
func (b *Battle) FindCard(elementID string) *Card {
	for _, card := range b.cards {
		if card.ElementID() == elementID {
			return card
		}
	}
	return nil
}

// Occupant 返回已提交到 cell 的卡片（排除 except 及与其同一角色的卡片）
// 按卡片集合顺序返回第一个
func (b *Battle) Occupant(cell *GridCell, except *Card) *Card {
	for _, card := range b.cards {
		if card == except {
			continue
		}
		if except != nil && card.character.ID == except.character.ID {
			continue
		}
		if card.currentCell.SameSlot(cell) {
			return card
		}
	}
	return nil
}

// InstantiatePlayers 按初始站位放置卡片
// 依次把第一张未放置的卡片放到下一个索引，索引或未放置卡片用完即停止。
// 任一索引越界时返回错误，且不放置任何卡片
func (b *Battle) InstantiatePlayers(cellIndexes []int) error {
	for i, index := range cellIndexes {
		if index < 0 || index >= len(b.gridCells) {
			return fmt.Errorf("initial cell %d (position %d): %w: grid has %d cells",
				index, i, ErrCellIndexOutOfRange, len(b.gridCells))
		}
	}

	for _, index := range cellIndexes {
		card := b.firstUnplacedCard()
		if card == nil {
			break
		}
		card.SnapToCell(b.gridCells[index])
	}

	log.Printf("[Battle] 会话 %s: 初始站位完成 %v", b.id, cellIndexes)
	return nil
}

// firstUnplacedCard 返回卡片集合中第一张未放置的卡片
func (b *Battle) firstUnplacedCard() *Card {
	for _, card := range b.cards {
		if card.currentCell == nil {
			return card
		}
	}
	return nil
}

// RefreshAllPositions 重新计算所有已放置卡片的偏移
// 偏移是与容器几何相关的绝对像素值，窗口缩放后需要刷新
func (b *Battle) RefreshAllPositions() {
	for _, card := range b.cards {
		if card.currentCell == nil {
			continue
		}
		card.SnapToCell(card.currentCell)
	}
}

// toDocument 将视口坐标转换为文档坐标
func (b *Battle) toDocument(x, y float64) (float64, float64) {
	scrollX, scrollY := b.surface.ScrollOffset()
	return x + scrollX, y + scrollY
}

// Dispatch 处理一个输入事件
//   - Press:   查找带卡片类名的目标，开始拖拽并立即在按下位置更新一次
//   - Move:    有拖拽时更新拖拽位置
//   - Release: 结束拖拽
//   - Resize:  刷新所有卡片位置
func (b *Battle) Dispatch(ev InputEvent) {
	switch ev.Kind {
	case EventPress:
		// 只有带卡片类名的目标才能开始拖拽
		card := b.FindCard(ev.TargetID)
		if card == nil || !b.surface.HasClass(card.element, config.ClassCard) {
			return
		}
		b.SetDraggingCard(card)
		x, y := b.toDocument(ev.Point())
		card.UpdateDragPosition(x, y, b.gridCells, b)

	case EventMove:
		if b.draggingCard == nil {
			return
		}
		x, y := b.toDocument(ev.Point())
		b.draggingCard.UpdateDragPosition(x, y, b.gridCells, b)

	case EventRelease:
		b.SetDraggingCard(nil)

	case EventResize:
		b.RefreshAllPositions()

	default:
		log.Printf("[Battle] 会话 %s: 未知事件类型 %d", b.id, ev.Kind)
	}
}
