package network

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/slime-survivor/engine"
)

// FileBoard is a Board backed by msgpack records appended to a local file
type FileBoard struct {
	mu   sync.Mutex
	path string
}

func NewFileBoard(path string) *FileBoard {
	return &FileBoard{path: path}
}

func (b *FileBoard) Submit(ctx context.Context, s engine.RunSummary) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, errors.Wrap(err, "open scoreboard")
	}
	if err := msgpack.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		return 0, errors.Wrap(err, "append run")
	}
	if err := f.Close(); err != nil {
		return 0, errors.Wrap(err, "close scoreboard")
	}

	runs, err := b.load(ctx)
	if err != nil {
		return 0, err
	}
	return rankOf(runs, s), nil
}

func (b *FileBoard) Top(ctx context.Context, n int) ([]engine.RunSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	runs, err := b.load(ctx)
	if err != nil {
		return nil, err
	}
	sortRuns(runs)
	if n >= 0 && len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

// load decodes every stored record; a torn final record is dropped
func (b *FileBoard) load(ctx context.Context) ([]engine.RunSummary, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open scoreboard")
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	var runs []engine.RunSummary
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var s engine.RunSummary
		err := dec.Decode(&s)
		switch {
		case err == nil:
			runs = append(runs, s)
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return runs, nil
		default:
			return nil, errors.Wrapf(err, "decode run %d", len(runs))
		}
	}
}
