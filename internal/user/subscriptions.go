package user

import (
	"context"
	"sync"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
)

// Subscription kinds; at most one live subscription exists per kind.
const (
	SubProfile   = "profile"
	SubTemplates = "templates"
	SubFoods     = "foods"
)

type subscribeStore interface {
	Subscribe(ctx context.Context, q store.Query, fn func([]store.Snapshot)) store.Subscription
	SubscribeDoc(ctx context.Context, path string, fn func(store.Document)) store.Subscription
}

// SubscriptionManager owns the realtime subscriptions that keep aggregated
// state current after the initial load. Starting a kind that is already
// active cancels the prior subscription first, so no two callbacks for the
// same kind are ever live at once.
type SubscriptionManager struct {
	store   subscribeStore
	metrics *metrics.Manager

	mutex  sync.Mutex
	active map[string]store.Subscription
}

func NewSubscriptionManager(s subscribeStore, metricsManager *metrics.Manager) *SubscriptionManager {
	return &SubscriptionManager{
		store:   s,
		metrics: metricsManager,
		active:  make(map[string]store.Subscription),
	}
}

// StartProfile subscribes to the user's profile document.
func (m *SubscriptionManager) StartProfile(ctx context.Context, userID string, fn func(store.Document)) {
	m.cancelPrior(SubProfile)
	sub := m.store.SubscribeDoc(ctx, store.UserPath(userID), func(doc store.Document) {
		m.countDelivery(SubProfile)
		fn(doc)
	})
	m.attach(SubProfile, sub)
}

// StartTemplates subscribes to the user's templates collection. Every
// delivery carries the full current result set; the callback replaces its
// slice wholesale.
func (m *SubscriptionManager) StartTemplates(ctx context.Context, userID string, fn func([]store.Snapshot)) {
	m.cancelPrior(SubTemplates)
	sub := m.store.Subscribe(ctx, store.Query{
		Collection: store.UserTemplatesCollection(userID),
		OrderBy:    "editedAt",
		Desc:       true,
	}, func(snapshots []store.Snapshot) {
		m.countDelivery(SubTemplates)
		fn(snapshots)
	})
	m.attach(SubTemplates, sub)
}

// StartFoods subscribes to the user's custom foods collection.
func (m *SubscriptionManager) StartFoods(ctx context.Context, userID string, fn func([]store.Snapshot)) {
	m.cancelPrior(SubFoods)
	sub := m.store.Subscribe(ctx, store.Query{
		Collection: store.UserFoodsCollection(userID),
		OrderBy:    "name",
	}, func(snapshots []store.Snapshot) {
		m.countDelivery(SubFoods)
		fn(snapshots)
	})
	m.attach(SubFoods, sub)
}

// CancelAll tears down every active subscription, waiting for in-flight
// callbacks to finish.
func (m *SubscriptionManager) CancelAll() {
	m.mutex.Lock()
	active := m.active
	m.active = make(map[string]store.Subscription)
	m.mutex.Unlock()

	for _, sub := range active {
		sub.Cancel()
	}
	if m.metrics != nil {
		m.metrics.GaugeActiveSubscriptions.Set(0)
	}
}

// cancelPrior takes the slot of the kind and cancels its subscription, if
// any, before a new one is attached. Cancelling first means the old callback
// can never fire after the new one delivered a fresher snapshot.
func (m *SubscriptionManager) cancelPrior(kind string) {
	m.mutex.Lock()
	prior := m.active[kind]
	delete(m.active, kind)
	m.mutex.Unlock()

	if prior != nil {
		prior.Cancel()
		if m.metrics != nil {
			m.metrics.CounterSubReplacements.Inc()
		}
	}
}

func (m *SubscriptionManager) attach(kind string, sub store.Subscription) {
	m.mutex.Lock()
	m.active[kind] = sub
	count := len(m.active)
	m.mutex.Unlock()

	if m.metrics != nil {
		m.metrics.GaugeActiveSubscriptions.Set(float64(count))
	}
}

func (m *SubscriptionManager) countDelivery(kind string) {
	if m.metrics != nil {
		m.metrics.CounterSnapshotsDelivered.WithLabelValues(kind).Inc()
	}
}
