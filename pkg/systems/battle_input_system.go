package systems

import (
	"log"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/surface"
	"github.com/gonewx/battlegrid/pkg/utils"
)

// DefaultWheelScrollStep 滚轮一格对应的滚动像素
const DefaultWheelScrollStep = 40.0

// BattleInputSystem 把指针输入送入布阵编排器
//
// 每帧：采样指针 -> 跟踪器产生事件 -> 按下事件命中检测填写目标 -> 入队；
// 帧末按顺序排空队列。滚轮滚动文档，拖拽中滚动会补发一次移动事件，
// 让卡片跟随指针所在的文档位置。触摸按在卡片以外时拖动平移文档
type BattleInputSystem struct {
	battle  *battle.Battle
	doc     *surface.Document
	tracker *utils.PointerTracker
	queue   *battle.InputQueue

	// 测试时可替换
	sample func() utils.PointerSample
	wheel  func() (float64, float64)

	scrollStep float64

	// 触摸平移：按下时的滚动位置，之后按手势位移滚动
	panning                bool
	panOriginX, panOriginY float64
}

// NewBattleInputSystem 创建布阵输入系统
func NewBattleInputSystem(b *battle.Battle, doc *surface.Document) *BattleInputSystem {
	tracker := utils.NewPointerTracker()
	return &BattleInputSystem{
		battle:     b,
		doc:        doc,
		tracker:    tracker,
		queue:      battle.NewInputQueue(),
		sample:     tracker.Sample,
		wheel:      utils.WheelDelta,
		scrollStep: DefaultWheelScrollStep,
	}
}

// Queue 返回输入队列（场景在此追加尺寸变化事件）
func (s *BattleInputSystem) Queue() *battle.InputQueue {
	return s.queue
}

// Update 采样本帧输入并处理
func (s *BattleInputSystem) Update(deltaTime float64) {
	wheelX, wheelY := s.wheel()
	s.Process(s.sample(), wheelX, wheelY)
}

// Process 处理一帧输入，返回本帧处理的事件数
func (s *BattleInputSystem) Process(sample utils.PointerSample, wheelX, wheelY float64) int {
	if wheelX != 0 || wheelY != 0 {
		s.scroll(wheelX, wheelY, sample)
	}

	for _, ev := range s.tracker.Feed(sample) {
		switch ev.Kind {
		case battle.EventPress:
			x, y := ev.Point()
			if id, ok := s.doc.HitTest(x, y); ok {
				ev.TargetID = id
			}
			s.panning = s.tracker.IsTouchDrag() && !s.isCard(ev.TargetID)
			s.panOriginX, s.panOriginY = s.doc.ScrollOffset()
		case battle.EventMove:
			if s.panning {
				dx, dy := s.tracker.DragDistance()
				s.doc.ScrollTo(s.panOriginX-float64(dx), s.panOriginY-float64(dy))
			}
		}
		s.queue.Push(ev)
	}
	if s.tracker.JustEnded() {
		s.panning = false
	}

	return s.battle.DrainQueue(s.queue)
}

// isCard 目标元素是否为卡片
func (s *BattleInputSystem) isCard(id string) bool {
	element, ok := s.doc.ElementByID(id)
	return ok && s.doc.HasClass(element, config.ClassCard)
}

// scroll 滚动文档；拖拽中补发移动事件
func (s *BattleInputSystem) scroll(wheelX, wheelY float64, sample utils.PointerSample) {
	beforeX, beforeY := s.doc.ScrollOffset()
	s.doc.ScrollBy(-wheelX*s.scrollStep, -wheelY*s.scrollStep)
	afterX, afterY := s.doc.ScrollOffset()
	if beforeX == afterX && beforeY == afterY {
		return
	}

	log.Printf("[BattleInputSystem] 滚动到 (%.0f, %.0f)", afterX, afterY)
	if s.battle.DraggingCard() != nil && sample.Pressed {
		ev := battle.InputEvent{Kind: battle.EventMove, X: float64(sample.X), Y: float64(sample.Y)}
		if sample.IsTouch {
			ev = battle.InputEvent{
				Kind:    battle.EventMove,
				Source:  battle.SourceTouch,
				Touches: []battle.Point{{X: float64(sample.X), Y: float64(sample.Y)}},
			}
		}
		s.queue.Push(ev)
	}
}
