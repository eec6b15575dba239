package workouts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEmptyWorkout       = errors.New("workout has no sets")
	ErrNoPendingCatalog   = errors.New("no pending catalog sync for record")
	ErrCatalogSyncFailed  = errors.New("exercise catalog sync failed")
	ErrEmptyWorkoutUserID = errors.New("empty user id")
)

//go:generate mockgen -source=$GOFILE -destination=commit_mocks_test.go -package=workouts_test

type commitStore interface {
	Get(ctx context.Context, path string) (store.Document, error)
	Batch(ctx context.Context, writes []store.Write) error
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
}

type CommitResult struct {
	Record          Record `json:"record"`
	PersonalRecords int    `json:"personalRecords"`
	// CatalogSynced is false when commit phase two failed; the workout record
	// itself is durable, and the catalog update can be retried
	CatalogSynced bool `json:"catalogSynced"`
}

// CommitCoordinator fans a finished workout out to the remote store.
//
// Phase one is a single atomic batch: the workout record, the merged
// last-workout timestamp on the user document, and a mirrored record in every
// group the user belongs to - either all of them land, or none.
//
// Phase two is a second, independent atomic batch: exercise catalog upserts
// (display name, incremented set counter, refreshed last-set timestamp),
// immutable per-set history records, and the aggregate PR counter increment.
// A phase-two failure is reported but never rolls phase one back; the payload
// is retained so RetryCatalogSync can reconcile the gap.
type CommitCoordinator struct {
	store    commitStore
	analyzer *Analyzer
	metrics  *metrics.Manager

	// injectable for testing
	Now   func() time.Time
	NewID func() string

	mutex   sync.Mutex
	pending map[string]pendingCatalogSync // record ID -> retained phase two
}

type pendingCatalogSync struct {
	// writes are nil when phase two failed before the batch could be built
	// (exercise history read error); the retry then rebuilds the batch from
	// the retained commit inputs
	writes     []store.Write
	prCount    int
	userID     string
	exercises  []Exercise
	commitTime time.Time
}

func NewCommitCoordinator(s commitStore, metricsManager *metrics.Manager) *CommitCoordinator {
	return &CommitCoordinator{
		store:    s,
		analyzer: NewAnalyzer(s),
		metrics:  metricsManager,
		Now:      time.Now,
		NewID:    uuid.NewString,
		pending:  make(map[string]pendingCatalogSync),
	}
}

// Commit durably records a finished workout. On a phase-two failure the
// returned result is still valid (the workout is committed) and the error
// wraps ErrCatalogSyncFailed.
func (c *CommitCoordinator) Commit(
	ctx context.Context,
	userID, title string,
	exercises []Exercise,
	groupIDs []string,
) (_ *CommitResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coordinator.workouts.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises", len(exercises)))

	if userID == "" {
		return nil, ErrEmptyWorkoutUserID
	}

	// validation happens before any remote call
	withSets := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if len(ex.Sets) > 0 {
			withSets = append(withSets, ex)
		}
	}
	if len(withSets) == 0 {
		return nil, ErrEmptyWorkout
	}

	// the prior last-workout timestamp decides how the stored streak counter
	// moves; a fresh account has none yet
	userDoc, err := c.store.Get(ctx, store.UserPath(userID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load user stats: %w", err)
	}
	lastWorkoutAt := store.GetTime(userDoc, "lastWorkoutAt", time.Time{})

	commitTime := c.Now()
	record := Record{
		ID:        c.NewID(),
		Title:     title,
		Timestamp: commitTime,
		Exercises: make([]Summary, 0, len(withSets)),
	}
	for _, ex := range withSets {
		record.Exercises = append(record.Exercises, summarize(ex))
	}

	// the streak counter moves in the same atomic batch as the last-workout
	// timestamp: exactly one day since the previous workout is a store-side
	// atomic increment, a longer gap (or a first-ever workout, whose zero
	// timestamp reads as an arbitrarily old one) restarts the streak at one,
	// and same-day repeats leave the counter alone
	userWrite := store.Write{
		Path:  store.UserPath(userID),
		Data:  store.Document{"lastWorkoutAt": commitTime},
		Merge: true,
	}
	switch gap := dayGap(lastWorkoutAt, commitTime); {
	case gap == 1:
		userWrite.Increments = map[string]int64{"workoutStreak": 1}
	case gap > 1:
		userWrite.Data["workoutStreak"] = int64(1)
	}

	// phase one: workout record + last-workout timestamp + group mirrors,
	// one all-or-nothing batch, so partial group mirroring cannot happen
	phaseOne := []store.Write{
		{
			Path: store.WorkoutPath(userID, record.ID),
			Data: record.Document(),
		},
		userWrite,
	}
	for _, groupID := range groupIDs {
		mirror := record
		mirror.UserID = userID
		mirror.GroupID = groupID
		phaseOne = append(phaseOne, store.Write{
			Path: store.GroupWorkoutPath(groupID, record.ID),
			Data: mirror.Document(),
		})
	}

	if err := c.store.Batch(ctx, phaseOne); err != nil {
		return nil, fmt.Errorf("commit workout record: %w", err)
	}

	if c.metrics != nil {
		c.metrics.CounterWorkoutCommits.Inc()
	}

	// phase two: exercise catalog updates, a separate best-effort batch
	phaseTwo, prCount, err := c.buildCatalogWrites(ctx, userID, withSets, commitTime)
	if err != nil {
		log.Errorf("workout [%s] committed, but catalog sync failed: %s", record.ID, err)
		c.retain(record.ID, pendingCatalogSync{
			userID:     userID,
			exercises:  withSets,
			commitTime: commitTime,
		})
		return &CommitResult{Record: record}, fmt.Errorf("%w: %s", ErrCatalogSyncFailed, err)
	}

	if err := c.store.Batch(ctx, phaseTwo); err != nil {
		log.Errorf("workout [%s] committed, but catalog sync failed: %s", record.ID, err)
		c.retain(record.ID, pendingCatalogSync{writes: phaseTwo, prCount: prCount})
		return &CommitResult{Record: record, PersonalRecords: prCount},
			fmt.Errorf("%w: %s", ErrCatalogSyncFailed, err)
	}

	if c.metrics != nil {
		c.metrics.CounterPersonalRecords.Add(float64(prCount))
	}

	return &CommitResult{
		Record:          record,
		PersonalRecords: prCount,
		CatalogSynced:   true,
	}, nil
}

// RetryCatalogSync re-runs the retained phase two of a previously committed
// workout whose catalog update failed.
func (c *CommitCoordinator) RetryCatalogSync(ctx context.Context, recordID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coordinator.workouts.retryCatalogSync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.mutex.Lock()
	pending, ok := c.pending[recordID]
	c.mutex.Unlock()
	if !ok {
		return ErrNoPendingCatalog
	}

	if c.metrics != nil {
		c.metrics.CounterCatalogSyncRetries.Inc()
	}

	writes, prCount := pending.writes, pending.prCount
	if writes == nil {
		// the original commit never got its batch built; rebuild it now,
		// re-reading the history (which phase two never touched)
		writes, prCount, err = c.buildCatalogWrites(ctx, pending.userID, pending.exercises, pending.commitTime)
		if err != nil {
			return fmt.Errorf("rebuild catalog sync [%s]: %w", recordID, err)
		}
	}

	if err := c.store.Batch(ctx, writes); err != nil {
		return fmt.Errorf("retry catalog sync [%s]: %w", recordID, err)
	}

	c.mutex.Lock()
	delete(c.pending, recordID)
	c.mutex.Unlock()

	if c.metrics != nil {
		c.metrics.CounterPersonalRecords.Add(float64(prCount))
	}
	return nil
}

// PendingCatalogSyncs lists record IDs whose catalog update still has to be
// reconciled.
func (c *CommitCoordinator) PendingCatalogSyncs() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	ids := make([]string, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	return ids
}

func (c *CommitCoordinator) retain(recordID string, pending pendingCatalogSync) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.pending[recordID] = pending
}

func (c *CommitCoordinator) buildCatalogWrites(
	ctx context.Context,
	userID string,
	exercises []Exercise,
	commitTime time.Time,
) (writes []store.Write, prCount int, err error) {
	for _, ex := range exercises {
		key := StorageKey(ex.Name)

		var completed []Set
		for _, set := range ex.Sets {
			if set.IsCompleted {
				completed = append(completed, set)
			}
		}
		if len(completed) == 0 {
			continue
		}

		history, err := c.analyzer.History(ctx, userID, key)
		if err != nil {
			return nil, 0, fmt.Errorf("load history for [%s]: %w", key, err)
		}

		catalogDoc := store.Document{
			"name":      DisplayName(key),
			"lastSetAt": commitTime,
		}
		if len(ex.MuscleGroups) > 0 {
			catalogDoc["muscleGroups"] = ex.MuscleGroups
		}
		if ex.Equipment != "" {
			catalogDoc["equipment"] = ex.Equipment
		}
		writes = append(writes, store.Write{
			Path:       store.ExercisePath(userID, key),
			Data:       catalogDoc,
			Merge:      true,
			Increments: map[string]int64{"setCount": int64(len(completed))},
		})

		// each completed set becomes an immutable history record; PR
		// evaluation sees the history grow within the workout itself
		for _, set := range completed {
			if IsPersonalRecord(set, history) {
				prCount++
			}
			history = append(history, set)

			writes = append(writes, store.Write{
				Path: store.ExerciseSetPath(userID, key, c.NewID()),
				Data: set.Document(),
			})
		}
	}

	if prCount > 0 {
		writes = append(writes, store.Write{
			Path:       store.UserPath(userID),
			Merge:      true,
			Increments: map[string]int64{"totalPRs": int64(prCount)},
		})
	}

	return writes, prCount, nil
}

func summarize(ex Exercise) Summary {
	summary := Summary{
		ExerciseName: DisplayName(StorageKey(ex.Name)),
		TotalSets:    len(ex.Sets),
	}
	for _, set := range ex.Sets {
		if set.Reps > summary.MaxReps {
			summary.MaxReps = set.Reps
			summary.WeightAtMaxReps = set.Weight
		}
	}
	return summary
}
