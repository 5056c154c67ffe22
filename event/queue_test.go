package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventEnemyKilled, Tick: 1})
	q.Push(GameEvent{Type: EventPlayerHit, Tick: 2})
	assert.Equal(t, 2, q.Len())

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventEnemyKilled, got[0].Type)
	assert.Equal(t, EventPlayerHit, got[1].Type)
	assert.Equal(t, 0, q.Len())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventPickupCollected, Tick: uint64(i)})
	}

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, uint64(10), got[0].Tick)
	assert.Equal(t, uint64(total-1), got[len(got)-1].Tick)
	assert.Equal(t, uint64(10), q.Dropped())
}

func TestQueueReusableAfterConsume(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize-2; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	q.Consume()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Tick: uint64(100 + i)})
	}
	got := q.Consume()
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, uint64(100+i), ev.Tick)
	}
	assert.Zero(t, q.Dropped())
}

func TestQueueResetClearsDropCount(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize+3; i++ {
		q.Push(GameEvent{Type: EventPlayerHit})
	}
	assert.Equal(t, uint64(3), q.Dropped())
	assert.Equal(t, parameter.EventQueueSize, q.Len())

	q.Reset()
	assert.Zero(t, q.Dropped())
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "BossKilled", EventBossKilled.String())
	assert.Equal(t, "Unknown", EventType(999).String())
}
