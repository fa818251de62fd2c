package battle

import "context"

// EventKind 输入事件类型
type EventKind int

const (
	// EventPress 按下（鼠标左键按下 / 触摸开始）
	EventPress EventKind = iota
	// EventMove 移动（鼠标移动 / 触摸移动）
	EventMove
	// EventRelease 释放（鼠标左键抬起 / 触摸结束）
	EventRelease
	// EventResize 视口尺寸变化
	EventResize
)

// String 返回事件类型名称
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// InputSource 输入来源
type InputSource int

const (
	SourceMouse InputSource = iota
	SourceTouch
)

// Point 视口坐标点
type Point struct {
	X, Y float64
}

// InputEvent 输入事件
// 鼠标事件的坐标直接放在 X/Y；触摸事件的坐标放在只有一个元素的 Touches 中
type InputEvent struct {
	Kind     EventKind
	Source   InputSource
	TargetID string  // 按下时指针下的元素标识符
	X, Y     float64 // 视口坐标（鼠标）
	Touches  []Point // 视口坐标（触摸）
}

// Point 返回统一后的指针坐标，有触摸点时取第一个触摸点
func (e InputEvent) Point() (float64, float64) {
	if len(e.Touches) > 0 {
		return e.Touches[0].X, e.Touches[0].Y
	}
	return e.X, e.Y
}

// InputQueue 输入事件队列（FIFO）
// 由游戏循环单线程写入和消费；与环形缓冲不同，满了也不会丢弃事件，
// 释放事件必须送达，否则拖拽状态会一直保持
type InputQueue struct {
	events []InputEvent
}

// NewInputQueue 创建事件队列
func NewInputQueue() *InputQueue {
	return &InputQueue{events: make([]InputEvent, 0, 16)}
}

// Push 追加事件
func (q *InputQueue) Push(ev InputEvent) {
	q.events = append(q.events, ev)
}

// Len 返回待处理事件数
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain 按到达顺序取出所有待处理事件
func (q *InputQueue) Drain() []InputEvent {
	if len(q.events) == 0 {
		return nil
	}
	pending := q.events
	q.events = make([]InputEvent, 0, cap(pending))
	return pending
}

// DrainQueue 按顺序处理队列中所有事件，返回处理数量
func (b *Battle) DrainQueue(q *InputQueue) int {
	pending := q.Drain()
	for _, ev := range pending {
		b.Dispatch(ev)
	}
	return len(pending)
}

// Run 从通道消费事件直到通道关闭或 ctx 取消
// 调用方保证只有一个 Run 在执行；Run 期间不要从其他 goroutine 访问 Battle
func (b *Battle) Run(ctx context.Context, events <-chan InputEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			b.Dispatch(ev)
		}
	}
}
