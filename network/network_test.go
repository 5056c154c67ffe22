package network

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/engine"
)

func run(name string, difficulty, seconds float64) engine.RunSummary {
	return engine.RunSummary{
		RunID:           uuid.New(),
		Name:            name,
		Level:           3,
		Kills:           42,
		Difficulty:      difficulty,
		SurvivalSeconds: seconds,
		EndedAt:         time.Unix(1_700_000_000, 0),
	}
}

func TestFileBoard_SubmitRanksAndTop(t *testing.T) {
	ctx := context.Background()
	b := NewFileBoard(filepath.Join(t.TempDir(), "scores.db"))

	top, err := b.Top(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, top, "missing file is an empty board")

	rank, err := b.Submit(ctx, run("mid", 2, 100))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = b.Submit(ctx, run("best", 3, 50))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = b.Submit(ctx, run("worst", 2, 90))
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	top, err = b.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "best", top[0].Name)
	assert.Equal(t, "mid", top[1].Name)
	assert.Equal(t, 42, top[0].Kills)
	assert.True(t, top[0].EndedAt.Equal(time.Unix(1_700_000_000, 0)))
}

func TestFileBoard_TornTailIsDropped(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")
	b := NewFileBoard(path)

	_, err := b.Submit(ctx, run("kept", 1, 10))
	require.NoError(t, err)
	_, err = b.Submit(ctx, run("torn", 1, 20))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, info.Size()-3))

	top, err := b.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "kept", top[0].Name)
}

func TestFileBoard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewFileBoard(filepath.Join(t.TempDir(), "scores.db"))

	_, err := b.Submit(ctx, run("late", 1, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingBoard struct{ block chan struct{} }

func (f *failingBoard) Submit(ctx context.Context, _ engine.RunSummary) (int, error) {
	select {
	case <-f.block:
		return 0, errors.New("backend unavailable")
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (f *failingBoard) Top(context.Context, int) ([]engine.RunSummary, error) { return nil, nil }

func TestAsyncSubmitter_DeliversResult(t *testing.T) {
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "scores.db"))
	a := NewAsyncSubmitter(NewFileBoard(cfg.Path), cfg)

	_, ok := a.Poll()
	assert.False(t, ok)

	s := run("async", 1, 5)
	a.Submit(s)

	var res Result
	require.Eventually(t, func() bool {
		res, ok = a.Poll()
		return ok
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Rank)
	assert.Equal(t, s.RunID, res.Summary.RunID)
	assert.Eventually(t, func() bool { return a.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestAsyncSubmitter_TimeoutSurfacesAsError(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.SubmitTimeout = 20 * time.Millisecond
	board := &failingBoard{block: make(chan struct{})}
	a := NewAsyncSubmitter(board, cfg)

	a.Submit(run("slow", 1, 1))
	assert.Equal(t, 1, a.Pending(), "submit never blocks the caller")

	var res Result
	require.Eventually(t, func() bool {
		var ok bool
		res, ok = a.Poll()
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestAsyncSubmitter_DropsWhenNobodyPolls(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.ResultQueueSize = 1
	board := &failingBoard{block: make(chan struct{})}
	close(board.block)
	a := NewAsyncSubmitter(board, cfg)

	a.Submit(run("a", 1, 1))
	a.Submit(run("b", 1, 1))
	require.Eventually(t, func() bool { return a.Pending() == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), a.Dropped())

	res, ok := a.Poll()
	require.True(t, ok)
	assert.EqualError(t, res.Err, "backend unavailable")
}
