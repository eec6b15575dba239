package workouts

import (
	"context"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type historyStore interface {
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
}

// Analyzer evaluates completed sets against the stored per-exercise history.
type Analyzer struct {
	store historyStore
}

func NewAnalyzer(store historyStore) *Analyzer {
	return &Analyzer{
		store: store,
	}
}

// History returns all committed sets for the given exercise, oldest first.
func (a *Analyzer) History(ctx context.Context, userID, exerciseKey string) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshots, err := a.store.Query(ctx, store.Query{
		Collection: store.ExerciseHistoryCollection(userID, exerciseKey),
		OrderBy:    "timestamp",
	})
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(snapshots))
	for _, snap := range snapshots {
		sets = append(sets, DecodeSet(snap.Data))
	}
	return sets, nil
}

// IsPersonalRecord reports whether a newly completed set is a personal
// record for its exercise, given all previously committed sets.
//
// A set is a PR if any of these hold: it is the first set ever, it is the
// heaviest weight ever, it ties the previous max weight with more reps than
// any prior set at that weight, or its volume (weight x reps) beats every
// prior set's volume. The criteria overlap; a set satisfying several still
// counts once.
func IsPersonalRecord(set Set, history []Set) bool {
	if !set.IsCompleted {
		return false
	}

	var prior []Set
	for _, h := range history {
		if h.IsCompleted {
			prior = append(prior, h)
		}
	}
	if len(prior) == 0 {
		return true
	}

	maxWeight := prior[0].Weight
	for _, h := range prior {
		if h.Weight > maxWeight {
			maxWeight = h.Weight
		}
	}
	if set.Weight > maxWeight {
		return true
	}

	if set.Weight == maxWeight {
		maxRepsAtWeight := 0
		for _, h := range prior {
			if h.Weight == maxWeight && h.Reps > maxRepsAtWeight {
				maxRepsAtWeight = h.Reps
			}
		}
		if set.Reps > maxRepsAtWeight {
			return true
		}
	}

	maxVolume := prior[0].Volume()
	for _, h := range prior {
		if h.Volume() > maxVolume {
			maxVolume = h.Volume()
		}
	}
	return set.Volume() > maxVolume
}
