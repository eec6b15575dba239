package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/groups"
	"github.com/2beens/fitsync/internal/nutrition"
	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	recentWorkoutsLimit  = 30
	exerciseCatalogLimit = 100
)

var ErrEmptyPatch = errors.New("profile patch is empty")

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=user_test

type aggregatorStore interface {
	Get(ctx context.Context, path string) (store.Document, error)
	Set(ctx context.Context, path string, data store.Document, merge bool) error
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
}

type templatesLister interface {
	Recent(ctx context.Context, userID string, limit int) ([]workouts.Template, error)
}

type membershipsLister interface {
	Memberships(ctx context.Context, userID string) ([]groups.Membership, error)
}

type groupsResolver interface {
	Resolve(ctx context.Context, memberships []groups.Membership) ([]groups.Group, error)
}

// State is the aggregated in-memory view the UI reads. All fields are
// replaced wholesale from store snapshots; nothing in here is patched
// incrementally.
type State struct {
	SignedIn bool `json:"signedIn"`
	Loading  bool `json:"loading"`

	Profile     Profile                `json:"profile"`
	Goals       nutrition.Goals        `json:"goals"`
	Templates   []workouts.Template    `json:"templates"`
	Workouts    []workouts.Record      `json:"workouts"`
	Exercises   []workouts.Exercise    `json:"exercises"`
	Groups      []groups.Group         `json:"groups"`
	CustomFoods []nutrition.FoodRecord `json:"customFoods"`

	// Streak is derived from the profile's last-workout timestamp on
	// every profile application, not read from the store
	Streak int `json:"streak"`
}

// Aggregator is the client-side sync core: it reacts to sign-in/sign-out,
// runs the parallel initial load, keeps state fresh through realtime
// subscriptions, and owns the single mutex all state mutation goes through.
type Aggregator struct {
	store       aggregatorStore
	subs        *SubscriptionManager
	templates   templatesLister
	memberships membershipsLister
	resolver    groupsResolver
	metrics     *metrics.Manager

	// injectable for testing
	Now func() time.Time

	mutex sync.Mutex
	state State
	// generation guards against a sign-out racing an in-flight load: a
	// load completion whose generation is stale mutates nothing
	generation int
}

func NewAggregator(
	s aggregatorStore,
	subs *SubscriptionManager,
	templates templatesLister,
	memberships membershipsLister,
	resolver groupsResolver,
	metricsManager *metrics.Manager,
) *Aggregator {
	a := &Aggregator{
		store:       s,
		subs:        subs,
		templates:   templates,
		memberships: memberships,
		resolver:    resolver,
		metrics:     metricsManager,
		Now:         time.Now,
	}
	a.state = a.emptyState()
	return a
}

// OnAuthStateChange is the session lifecycle entry point, registered with
// the auth service. Sign-in starts a fresh load; sign-out tears everything
// down.
func (a *Aggregator) OnAuthStateChange(userID string, signedIn bool) {
	if signedIn {
		go func() {
			if err := a.SignIn(context.Background(), userID); err != nil {
				log.Errorf("initial load for [%s]: %s", userID, err)
			}
		}()
		return
	}
	a.SignOut()
}

// SignIn runs the initial load for the user and, on completion, attaches the
// realtime subscriptions. Individual load failures are tolerated: every read
// finishes before completion fires, successfully loaded slices are published,
// and the first-seen error is returned.
func (a *Aggregator) SignIn(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.user.signIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	a.mutex.Lock()
	a.generation++
	gen := a.generation
	a.state = a.emptyState()
	a.state.SignedIn = true
	a.state.Loading = true
	a.mutex.Unlock()

	loadStart := a.Now()
	loaded, err := a.loadAll(ctx, userID)
	if a.metrics != nil {
		a.metrics.HistInitialLoadDuration.Observe(time.Since(loadStart).Seconds())
	}

	a.mutex.Lock()
	if a.generation != gen {
		// signed out (or re-signed-in) while the load was in flight
		a.mutex.Unlock()
		return nil
	}
	a.state.Loading = false
	a.state.Profile = loaded.profile
	a.state.Goals = nutrition.Calculate(loaded.profile.NutritionInputs(), a.Now())
	a.state.Streak = workouts.AdvanceStreak(
		loaded.profile.LastWorkoutAt, a.Now(), loaded.profile.WorkoutStreak,
	)
	a.state.Templates = loaded.templates
	a.state.Workouts = loaded.workouts
	a.state.Exercises = loaded.exercises
	a.state.Groups = loaded.groups
	a.mutex.Unlock()

	a.startSubscriptions(ctx, userID, gen)
	return err
}

// SignOut cancels all subscriptions and resets state to placeholders.
func (a *Aggregator) SignOut() {
	a.mutex.Lock()
	a.generation++
	a.state = a.emptyState()
	a.mutex.Unlock()

	a.subs.CancelAll()
}

// State returns a copy of the aggregated state; slices are copied so the
// caller can hold the result across further updates.
func (a *Aggregator) State() State {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	state := a.state
	state.Templates = append([]workouts.Template(nil), a.state.Templates...)
	state.Workouts = append([]workouts.Record(nil), a.state.Workouts...)
	state.Exercises = append([]workouts.Exercise(nil), a.state.Exercises...)
	state.Groups = append([]groups.Group(nil), a.state.Groups...)
	state.CustomFoods = append([]nutrition.FoodRecord(nil), a.state.CustomFoods...)
	return state
}

// UpdateProfile merge-writes a partial profile patch; the full merged record
// flows back through the profile subscription.
func (a *Aggregator) UpdateProfile(ctx context.Context, userID string, patch store.Document) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.user.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(patch) == 0 {
		return ErrEmptyPatch
	}
	return a.store.Set(ctx, store.UserPath(userID), patch, true)
}

// NutritionInputs supplies the goal calculator inputs, from aggregated state
// when it is current, from the store otherwise.
func (a *Aggregator) NutritionInputs(ctx context.Context, userID string) (nutrition.Inputs, error) {
	a.mutex.Lock()
	if a.state.SignedIn && a.state.Profile.ID == userID {
		inputs := a.state.Profile.NutritionInputs()
		a.mutex.Unlock()
		return inputs, nil
	}
	a.mutex.Unlock()

	doc, err := a.store.Get(ctx, store.UserPath(userID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nutrition.Inputs{}, err
	}
	return DecodeProfile(userID, doc, a.Now()).NutritionInputs(), nil
}

type loadResult struct {
	profile   Profile
	templates []workouts.Template
	workouts  []workouts.Record
	exercises []workouts.Exercise
	groups    []groups.Group
}

// loadAll fans the five baseline reads out in parallel and waits for all of
// them; errs is indexed so the first-seen error is deterministic.
func (a *Aggregator) loadAll(ctx context.Context, userID string) (loadResult, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.user.loadAll")
	defer span.End()

	loaded := loadResult{profile: EmptyProfile(a.Now())}
	errs := make([]error, 5)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		doc, err := a.store.Get(ctx, store.UserPath(userID))
		if errors.Is(err, store.ErrNotFound) {
			// fresh account, everything at fallback values
			doc, err = store.Document{}, nil
		}
		if err != nil {
			errs[0] = err
			return
		}
		loaded.profile = DecodeProfile(userID, doc, a.Now())
	}()

	go func() {
		defer wg.Done()
		loaded.templates, errs[1] = a.templates.Recent(ctx, userID, workouts.RecentTemplatesLimit)
	}()

	go func() {
		defer wg.Done()
		snapshots, err := a.store.Query(ctx, store.Query{
			Collection: store.UserWorkoutsCollection(userID),
			OrderBy:    "timestamp",
			Desc:       true,
			Limit:      recentWorkoutsLimit,
		})
		if err != nil {
			errs[2] = err
			return
		}
		records := make([]workouts.Record, 0, len(snapshots))
		for _, snap := range snapshots {
			records = append(records, workouts.DecodeRecord(snap.ID, snap.Data))
		}
		loaded.workouts = records
	}()

	go func() {
		defer wg.Done()
		snapshots, err := a.store.Query(ctx, store.Query{
			Collection: store.UserExercisesCollection(userID),
			OrderBy:    "lastSetAt",
			Desc:       true,
			Limit:      exerciseCatalogLimit,
		})
		if err != nil {
			errs[3] = err
			return
		}
		exercises := make([]workouts.Exercise, 0, len(snapshots))
		for _, snap := range snapshots {
			exercises = append(exercises, workouts.DecodeExercise(snap.ID, snap.Data))
		}
		loaded.exercises = exercises
	}()

	go func() {
		defer wg.Done()
		memberships, err := a.memberships.Memberships(ctx, userID)
		if err != nil {
			errs[4] = err
			return
		}
		if len(memberships) == 0 {
			loaded.groups = []groups.Group{}
			return
		}
		loaded.groups, errs[4] = a.resolver.Resolve(ctx, memberships)
	}()

	wg.Wait()

	if combined := multierr.Combine(errs...); combined != nil {
		log.Errorf("initial load for [%s] partially failed: %s", userID, combined)
	}
	for _, err := range errs {
		if err != nil {
			return loaded, err
		}
	}
	return loaded, nil
}

// startSubscriptions attaches the realtime listeners after the baseline
// load. Every callback checks the generation, so deliveries racing a
// sign-out mutate nothing.
func (a *Aggregator) startSubscriptions(ctx context.Context, userID string, gen int) {
	a.mutex.Lock()
	if a.generation != gen {
		a.mutex.Unlock()
		return
	}
	a.mutex.Unlock()

	a.subs.StartProfile(ctx, userID, func(doc store.Document) {
		profile := DecodeProfile(userID, doc, a.Now())
		a.mutex.Lock()
		defer a.mutex.Unlock()
		if a.generation != gen {
			return
		}
		a.state.Profile = profile
		a.state.Goals = nutrition.Calculate(profile.NutritionInputs(), a.Now())
		a.state.Streak = workouts.AdvanceStreak(
			profile.LastWorkoutAt, a.Now(), profile.WorkoutStreak,
		)
	})

	a.subs.StartTemplates(ctx, userID, func(snapshots []store.Snapshot) {
		templates := make([]workouts.Template, 0, len(snapshots))
		for _, snap := range snapshots {
			templates = append(templates, workouts.DecodeTemplate(snap.ID, snap.Data))
		}
		a.mutex.Lock()
		defer a.mutex.Unlock()
		if a.generation != gen {
			return
		}
		a.state.Templates = templates
	})

	a.subs.StartFoods(ctx, userID, func(snapshots []store.Snapshot) {
		foods := make([]nutrition.FoodRecord, 0, len(snapshots))
		for _, snap := range snapshots {
			foods = append(foods, nutrition.DecodeFoodRecord(snap.Data))
		}
		a.mutex.Lock()
		defer a.mutex.Unlock()
		if a.generation != gen {
			return
		}
		a.state.CustomFoods = foods
	})
}

func (a *Aggregator) emptyState() State {
	return State{
		Profile:     EmptyProfile(a.Now()),
		Goals:       nutrition.DefaultGoals,
		Templates:   []workouts.Template{},
		Workouts:    []workouts.Record{},
		Exercises:   []workouts.Exercise{},
		Groups:      []groups.Group{},
		CustomFoods: []nutrition.FoodRecord{},
	}
}
