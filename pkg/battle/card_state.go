package battle

// CardState 卡片放置状态
//
//	Idle --snap--> Placed --press--> Dragging --move*--> Dragging --release--> Placed
//
// 没有在手势中命中任何格子的 Dragging 在释放时回到原已提交格子；
// 从未放置过的卡片释放后回到 Idle
type CardState int

const (
	// CardIdle 未放置（没有已提交格子，也没有跟踪格子）
	CardIdle CardState = iota
	// CardPlaced 已提交到某个格子
	CardPlaced
	// CardDragging 拖拽中
	CardDragging
)

// String 返回状态名称（日志用）
func (s CardState) String() string {
	switch s {
	case CardIdle:
		return "Idle"
	case CardPlaced:
		return "Placed"
	case CardDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Placement 卡片放置状态快照
//
//   - Idle:     Committed == nil, Tracked == nil
//   - Placed:   Committed != nil, Tracked 与 Committed 相同
//   - Dragging: Committed 为拖拽开始前的提交格子（可能为 nil），
//     Tracked 为本次手势最后一次有效命中的格子，释放时提交它
type Placement struct {
	State     CardState
	Committed *GridCell
	Tracked   *GridCell
}
