// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/battlegrid/pkg/battle"
)

// ============================================================================
// 指针采样 - 统一鼠标与触摸输入
// ============================================================================

// PointerSample 一帧的指针状态
type PointerSample struct {
	// Pressed 鼠标左键按住或触摸仍在屏幕上
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// TouchID 触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouch 是否为触摸输入
	IsTouch bool
}

// WheelDelta 返回本帧鼠标滚轮偏移
func WheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// ============================================================================
// 指针跟踪器 - 把逐帧采样转换为按下/移动/释放事件
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回状态名称
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "None"
	case DragStateStarted:
		return "Started"
	case DragStateDragging:
		return "Dragging"
	case DragStateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// PointerTracker 指针跟踪器
// 每帧喂入一次采样，输出本帧产生的输入事件。
// 按下事件的 TargetID 为空，由调用方命中检测后填写
type PointerTracker struct {
	info DragInfo
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{
		info: DragInfo{
			State:   DragStateNone,
			TouchID: -1,
		},
	}
}

// Sample 从 ebiten 读取当前帧指针状态
// 跟踪中的触摸优先：它离开屏幕即视为释放，不会被其他手指"接管"
func (pt *PointerTracker) Sample() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)

	if pt.active() && pt.info.IsTouchInput {
		for _, id := range touchIDs {
			if id == pt.info.TouchID {
				x, y := ebiten.TouchPosition(id)
				return PointerSample{Pressed: true, X: x, Y: y, TouchID: id, IsTouch: true}
			}
		}
		return PointerSample{X: pt.info.CurrentX, Y: pt.info.CurrentY, TouchID: pt.info.TouchID, IsTouch: true}
	}

	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{Pressed: true, X: x, Y: y, TouchID: touchIDs[0], IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
}

// active 是否处于按下到释放之间
func (pt *PointerTracker) active() bool {
	return pt.info.State == DragStateStarted || pt.info.State == DragStateDragging
}

// Feed 处理一帧采样并返回产生的事件（按发生顺序）
//
//	None/Ended + 按下         -> Started，发出 press
//	Started/Dragging + 按住   -> Dragging，位置变化时发出 move
//	Started/Dragging + 松开   -> Ended，发出 release
//	Ended + 松开              -> None
func (pt *PointerTracker) Feed(sample PointerSample) []battle.InputEvent {
	switch pt.info.State {
	case DragStateNone, DragStateEnded:
		if !sample.Pressed {
			pt.Reset()
			return nil
		}
		touchID := sample.TouchID
		if !sample.IsTouch {
			touchID = -1
		}
		pt.info = DragInfo{
			State:        DragStateStarted,
			StartX:       sample.X,
			StartY:       sample.Y,
			CurrentX:     sample.X,
			CurrentY:     sample.Y,
			TouchID:      touchID,
			IsTouchInput: sample.IsTouch,
		}
		return []battle.InputEvent{pt.event(battle.EventPress)}

	default:
		if !sample.Pressed {
			pt.info.State = DragStateEnded
			return []battle.InputEvent{pt.event(battle.EventRelease)}
		}
		pt.info.State = DragStateDragging
		if sample.X == pt.info.CurrentX && sample.Y == pt.info.CurrentY {
			return nil
		}
		pt.info.CurrentX, pt.info.CurrentY = sample.X, sample.Y
		return []battle.InputEvent{pt.event(battle.EventMove)}
	}
}

// event 以当前位置构造事件
// 触摸事件的坐标放在单元素触摸列表中，鼠标事件直接放在 X/Y
func (pt *PointerTracker) event(kind battle.EventKind) battle.InputEvent {
	x, y := float64(pt.info.CurrentX), float64(pt.info.CurrentY)
	if pt.info.IsTouchInput {
		return battle.InputEvent{
			Kind:    kind,
			Source:  battle.SourceTouch,
			Touches: []battle.Point{{X: x, Y: y}},
		}
	}
	return battle.InputEvent{
		Kind:   kind,
		Source: battle.SourceMouse,
		X:      x,
		Y:      y,
	}
}

// Reset 重置拖拽状态
func (pt *PointerTracker) Reset() {
	pt.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// JustEnded 本帧刚释放
func (pt *PointerTracker) JustEnded() bool {
	return pt.info.State == DragStateEnded
}

// DragDistance 当前手势从按下点到当前位置的位移
func (pt *PointerTracker) DragDistance() (dx, dy int) {
	return pt.info.CurrentX - pt.info.StartX, pt.info.CurrentY - pt.info.StartY
}

// IsTouchDrag 当前手势是否来自触摸
func (pt *PointerTracker) IsTouchDrag() bool {
	return pt.info.IsTouchInput
}
