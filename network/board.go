package network

import (
	"context"
	"slices"

	"github.com/lixenwraith/slime-survivor/engine"
)

// Board persists run summaries and ranks them
type Board interface {
	// Submit stores s and returns its 1-based rank among all stored runs
	Submit(ctx context.Context, s engine.RunSummary) (int, error)
	// Top returns up to n best runs, best first
	Top(ctx context.Context, n int) ([]engine.RunSummary, error)
}

// compareRuns orders runs best first: difficulty reached, then survival time, then earlier finish
func compareRuns(a, b engine.RunSummary) int {
	switch {
	case a.Difficulty != b.Difficulty:
		if a.Difficulty > b.Difficulty {
			return -1
		}
		return 1
	case a.SurvivalSeconds != b.SurvivalSeconds:
		if a.SurvivalSeconds > b.SurvivalSeconds {
			return -1
		}
		return 1
	}
	return a.EndedAt.Compare(b.EndedAt)
}

// rankOf returns the 1-based position s takes among runs
func rankOf(runs []engine.RunSummary, s engine.RunSummary) int {
	rank := 1
	for _, r := range runs {
		if r.RunID == s.RunID {
			continue
		}
		if compareRuns(r, s) <= 0 {
			rank++
		}
	}
	return rank
}

func sortRuns(runs []engine.RunSummary) {
	slices.SortStableFunc(runs, compareRuns)
}
