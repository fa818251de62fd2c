package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/battlegrid/pkg/battle"
)

func mouse(pressed bool, x, y int) PointerSample {
	return PointerSample{Pressed: pressed, X: x, Y: y, TouchID: -1}
}

func touch(pressed bool, id, x, y int) PointerSample {
	return PointerSample{Pressed: pressed, X: x, Y: y, TouchID: ebiten.TouchID(id), IsTouch: true}
}

func TestPointerTrackerInitialState(t *testing.T) {
	pt := NewPointerTracker()

	// 验证初始状态
	if pt.info.State != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", pt.info.State)
	}
	if pt.JustEnded() || pt.IsTouchDrag() {
		t.Error("Expected no drag flags initially")
	}
	if pt.info.TouchID != -1 {
		t.Errorf("Expected TouchID -1, got %d", pt.info.TouchID)
	}
}

func TestPointerTrackerMouseGesture(t *testing.T) {
	pt := NewPointerTracker()

	steps := []struct {
		name   string
		sample PointerSample
		want   []battle.EventKind
		state  DragState
	}{
		{"idle", mouse(false, 5, 5), nil, DragStateNone},
		{"press", mouse(true, 10, 20), []battle.EventKind{battle.EventPress}, DragStateStarted},
		{"hold still", mouse(true, 10, 20), nil, DragStateDragging},
		{"move", mouse(true, 30, 45), []battle.EventKind{battle.EventMove}, DragStateDragging},
		{"release", mouse(false, 30, 45), []battle.EventKind{battle.EventRelease}, DragStateEnded},
		{"after release", mouse(false, 30, 45), nil, DragStateNone},
	}

	for _, step := range steps {
		events := pt.Feed(step.sample)
		if len(events) != len(step.want) {
			t.Fatalf("%s: got %d events, want %d", step.name, len(events), len(step.want))
		}
		for i, ev := range events {
			if ev.Kind != step.want[i] {
				t.Errorf("%s: event %d kind = %v, want %v", step.name, i, ev.Kind, step.want[i])
			}
			if ev.Source != battle.SourceMouse {
				t.Errorf("%s: source = %v, want mouse", step.name, ev.Source)
			}
		}
		if pt.info.State != step.state {
			t.Errorf("%s: state = %v, want %v", step.name, pt.info.State, step.state)
		}
	}

	dx, dy := pt.DragDistance()
	if dx != 0 || dy != 0 {
		t.Errorf("Expected reset distance (0, 0), got (%d, %d)", dx, dy)
	}
}

func TestPointerTrackerEventCoordinates(t *testing.T) {
	pt := NewPointerTracker()

	press := pt.Feed(mouse(true, 100, 200))[0]
	if x, y := press.Point(); x != 100 || y != 200 {
		t.Errorf("press point = (%v, %v), want (100, 200)", x, y)
	}

	move := pt.Feed(mouse(true, 150, 280))[0]
	if move.X != 150 || move.Y != 280 || len(move.Touches) != 0 {
		t.Errorf("mouse move = %+v, want flat coordinates", move)
	}

	dx, dy := pt.DragDistance()
	if dx != 50 || dy != 80 {
		t.Errorf("Expected distance (50, 80), got (%d, %d)", dx, dy)
	}

	release := pt.Feed(mouse(false, 0, 0))[0]
	if x, y := release.Point(); x != 150 || y != 280 {
		t.Errorf("release point = (%v, %v), want last position (150, 280)", x, y)
	}
}

func TestPointerTrackerTouchGesture(t *testing.T) {
	pt := NewPointerTracker()

	press := pt.Feed(touch(true, 3, 40, 50))
	if len(press) != 1 || press[0].Source != battle.SourceTouch {
		t.Fatalf("press = %+v, want one touch event", press)
	}
	if len(press[0].Touches) != 1 || press[0].Touches[0] != (battle.Point{X: 40, Y: 50}) {
		t.Errorf("touch list = %v, want [(40, 50)]", press[0].Touches)
	}
	if !pt.IsTouchDrag() || pt.info.TouchID != 3 {
		t.Errorf("Expected touch drag with TouchID 3, got %+v", pt.info)
	}

	move := pt.Feed(touch(true, 3, 60, 70))
	if x, y := move[0].Point(); x != 60 || y != 70 {
		t.Errorf("move point = (%v, %v), want (60, 70)", x, y)
	}

	release := pt.Feed(touch(false, 3, 60, 70))
	if release[0].Kind != battle.EventRelease || release[0].Source != battle.SourceTouch {
		t.Errorf("release = %+v", release[0])
	}
}

func TestPointerTrackerPressRightAfterRelease(t *testing.T) {
	pt := NewPointerTracker()

	pt.Feed(mouse(true, 1, 1))
	pt.Feed(mouse(false, 1, 1))
	if !pt.JustEnded() {
		t.Fatal("Expected JustEnded after release")
	}

	events := pt.Feed(mouse(true, 9, 9))
	if len(events) != 1 || events[0].Kind != battle.EventPress {
		t.Fatalf("Expected a new press, got %+v", events)
	}
	if pt.info.State != DragStateStarted {
		t.Errorf("Expected DragStateStarted, got %v", pt.info.State)
	}
}

func TestPointerTrackerReset(t *testing.T) {
	pt := NewPointerTracker()
	pt.Feed(touch(true, 1, 100, 200))
	pt.Feed(touch(true, 1, 150, 250))

	pt.Reset()

	info := pt.info
	if info.State != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", info.State)
	}
	if info.StartX != 0 || info.CurrentY != 0 || info.IsTouchInput {
		t.Errorf("Expected zeroed info after reset, got %+v", info)
	}
	if info.TouchID != -1 {
		t.Errorf("Expected TouchID to be -1 after reset, got %d", info.TouchID)
	}
}

func TestDragStateString(t *testing.T) {
	tests := map[DragState]string{
		DragStateNone:     "None",
		DragStateStarted:  "Started",
		DragStateDragging: "Dragging",
		DragStateEnded:    "Ended",
		DragState(9):      "Unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("DragState(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
