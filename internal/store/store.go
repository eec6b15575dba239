package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Document is the raw, untyped payload of a remote document.
// Typed decoding (and all fallback defaults) happens in the owning feature package.
type Document = map[string]any

// Snapshot is one document out of a full query result, delivered wholesale
// on every read or realtime change, never as an incremental diff.
type Snapshot struct {
	ID   string
	Data Document
}

type Filter struct {
	Field string
	Op    string
	Value any
}

type Query struct {
	// Collection is a slash-separated collection path, e.g. "users/u1/templates"
	Collection string
	Filters    []Filter
	OrderBy    string
	Desc       bool
	Limit      int
}

// Write is one operation of an atomic multi-document batch.
type Write struct {
	// Path is a slash-separated document path, e.g. "users/u1/workouts/w1"
	Path   string
	Data   Document
	Merge  bool
	Delete bool
	// Increments are applied as store-side atomic counter increments,
	// on top of Data
	Increments map[string]int64
}

type Subscription interface {
	// Cancel stops the subscription and waits for any in-flight
	// callback to return
	Cancel()
}

// Store is the remote document store contract: path-addressed documents,
// per-document atomic writes, batched all-or-nothing multi-document writes,
// ordered/limited queries, and realtime subscriptions that re-deliver the
// full current result set whenever any matching document changes.
type Store interface {
	Get(ctx context.Context, path string) (Document, error)
	Set(ctx context.Context, path string, data Document, merge bool) error
	Batch(ctx context.Context, writes []Write) error
	Query(ctx context.Context, q Query) ([]Snapshot, error)
	// GetByIDs fetches the documents with the given IDs from a collection in
	// one batched read. An empty ID list is vacuously empty, not "fetch all".
	GetByIDs(ctx context.Context, collection string, ids []string) ([]Snapshot, error)
	Subscribe(ctx context.Context, q Query, fn func([]Snapshot)) Subscription
	SubscribeDoc(ctx context.Context, path string, fn func(Document)) Subscription
}
