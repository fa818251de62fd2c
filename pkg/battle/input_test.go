package battle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
)

func TestInputEventPoint(t *testing.T) {
	tests := []struct {
		name  string
		ev    battle.InputEvent
		wantX float64
		wantY float64
	}{
		{"mouse", battle.InputEvent{X: 12, Y: 34}, 12, 34},
		{"touch", battle.InputEvent{Source: battle.SourceTouch, Touches: []battle.Point{{X: 5, Y: 6}}}, 5, 6},
		{"touch wins over flat coordinates", battle.InputEvent{X: 1, Y: 2, Touches: []battle.Point{{X: 7, Y: 8}, {X: 9, Y: 9}}}, 7, 8},
		{"empty touch list falls back", battle.InputEvent{X: 3, Y: 4, Touches: []battle.Point{}}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.ev.Point()
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "press", battle.EventPress.String())
	assert.Equal(t, "move", battle.EventMove.String())
	assert.Equal(t, "release", battle.EventRelease.String())
	assert.Equal(t, "resize", battle.EventResize.String())
	assert.Equal(t, "unknown", battle.EventKind(99).String())
}

func TestInputQueue(t *testing.T) {
	q := battle.NewInputQueue()
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())

	for i := 0; i < 100; i++ {
		q.Push(battle.InputEvent{Kind: battle.EventMove, X: float64(i)})
	}
	q.Push(battle.InputEvent{Kind: battle.EventRelease})
	assert.Equal(t, 101, q.Len())

	events := q.Drain()
	require.Len(t, events, 101)
	for i := 0; i < 100; i++ {
		assert.Equal(t, float64(i), events[i].X)
	}
	assert.Equal(t, battle.EventRelease, events[100].Kind)
	assert.Equal(t, 0, q.Len())
}

func TestDrainQueue(t *testing.T) {
	f := newFixture(t, 8, 4, defaultRoster())
	require.NoError(t, f.battle.InstantiatePlayers(config.DefaultInitialCells))
	cloud := f.card("Cloud")

	q := battle.NewInputQueue()
	x, y := f.cellCenter(42)
	tx, ty := f.cellCenter(9)
	q.Push(battle.InputEvent{Kind: battle.EventPress, TargetID: cloud.ElementID(), X: x, Y: y})
	q.Push(battle.InputEvent{Kind: battle.EventMove, X: tx, Y: ty})
	q.Push(battle.InputEvent{Kind: battle.EventRelease})

	assert.Equal(t, 3, f.battle.DrainQueue(q))
	assert.Equal(t, 9, cellIndexOf(cloud))
	assert.Equal(t, 0, f.battle.DrainQueue(q))
}

func TestRun(t *testing.T) {
	t.Run("processes events until channel closes", func(t *testing.T) {
		f := newFixture(t, 8, 4, defaultRoster())
		require.NoError(t, f.battle.InstantiatePlayers(config.DefaultInitialCells))
		cloud := f.card("Cloud")

		events := make(chan battle.InputEvent, 3)
		x, y := f.cellCenter(42)
		tx, ty := f.cellCenter(15)
		events <- battle.InputEvent{Kind: battle.EventPress, TargetID: cloud.ElementID(), X: x, Y: y}
		events <- battle.InputEvent{Kind: battle.EventMove, X: tx, Y: ty}
		events <- battle.InputEvent{Kind: battle.EventRelease}
		close(events)

		err := f.battle.Run(context.Background(), events)
		require.NoError(t, err)
		assert.Equal(t, 15, cellIndexOf(cloud))
		assert.Nil(t, f.battle.DraggingCard())
	})

	t.Run("stops on context cancel", func(t *testing.T) {
		f := newFixture(t, 1, 4, defaultRoster())
		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan battle.InputEvent)

		done := make(chan error, 1)
		go func() {
			done <- f.battle.Run(ctx, events)
		}()
		cancel()

		select {
		case err := <-done:
			assert.True(t, errors.Is(err, context.Canceled))
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
