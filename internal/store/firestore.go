package store

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store on top of a Cloud Firestore client.
type Firestore struct {
	client *firestore.Client
}

var _ Store = (*Firestore)(nil)

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{
		client: client,
	}
}

func (f *Firestore) Get(ctx context.Context, path string) (Document, error) {
	doc, err := f.client.Doc(path).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get [%s]: %w", path, err)
	}
	return doc.Data(), nil
}

func (f *Firestore) Set(ctx context.Context, path string, data Document, merge bool) error {
	var opts []firestore.SetOption
	if merge {
		opts = append(opts, firestore.MergeAll)
	}
	if _, err := f.client.Doc(path).Set(ctx, data, opts...); err != nil {
		return fmt.Errorf("set [%s]: %w", path, err)
	}
	return nil
}

func (f *Firestore) Batch(ctx context.Context, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}

	batch := f.client.Batch()
	for _, w := range writes {
		ref := f.client.Doc(w.Path)
		switch {
		case w.Delete:
			batch.Delete(ref)
		default:
			data := make(Document, len(w.Data)+len(w.Increments))
			for k, v := range w.Data {
				data[k] = v
			}
			for k, v := range w.Increments {
				data[k] = firestore.Increment(v)
			}
			if w.Merge || len(w.Increments) > 0 {
				batch.Set(ref, data, firestore.MergeAll)
			} else {
				batch.Set(ref, data)
			}
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("batch commit [%d writes]: %w", len(writes), err)
	}
	return nil
}

func (f *Firestore) Query(ctx context.Context, q Query) ([]Snapshot, error) {
	iter := f.buildQuery(q).Documents(ctx)
	defer iter.Stop()

	var snapshots []Snapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query [%s]: %w", q.Collection, err)
		}
		snapshots = append(snapshots, Snapshot{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return snapshots, nil
}

func (f *Firestore) GetByIDs(ctx context.Context, collection string, ids []string) ([]Snapshot, error) {
	// an empty ID list must not turn into a "fetch all" query
	if len(ids) == 0 {
		return nil, nil
	}

	col := f.client.Collection(collection)
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, col.Doc(id))
	}

	docs, err := f.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("get all [%s]: %w", collection, err)
	}

	snapshots := make([]Snapshot, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		snapshots = append(snapshots, Snapshot{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return snapshots, nil
}

func (f *Firestore) Subscribe(ctx context.Context, q Query, fn func([]Snapshot)) Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &firestoreSubscription{cancel: cancel}
	sub.wg.Add(1)

	snapIter := f.buildQuery(q).Snapshots(ctx)
	go func() {
		defer sub.wg.Done()
		defer snapIter.Stop()
		for {
			snap, err := snapIter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					// listener errors are non-fatal, the caller keeps its last known state
					log.Errorf("subscription on [%s] stopped: %s", q.Collection, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Errorf("subscription on [%s], read snapshot docs: %s", q.Collection, err)
				continue
			}

			snapshots := make([]Snapshot, 0, len(docs))
			for _, doc := range docs {
				snapshots = append(snapshots, Snapshot{ID: doc.Ref.ID, Data: doc.Data()})
			}
			fn(snapshots)
		}
	}()

	return sub
}

func (f *Firestore) SubscribeDoc(ctx context.Context, path string, fn func(Document)) Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &firestoreSubscription{cancel: cancel}
	sub.wg.Add(1)

	snapIter := f.client.Doc(path).Snapshots(ctx)
	go func() {
		defer sub.wg.Done()
		defer snapIter.Stop()
		for {
			snap, err := snapIter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Errorf("subscription on doc [%s] stopped: %s", path, err)
				}
				return
			}
			if !snap.Exists() {
				continue
			}
			fn(snap.Data())
		}
	}()

	return sub
}

func (f *Firestore) buildQuery(q Query) firestore.Query {
	fq := f.client.Collection(q.Collection).Query
	for _, filter := range q.Filters {
		fq = fq.Where(filter.Field, filter.Op, filter.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		fq = fq.Limit(q.Limit)
	}
	return fq
}

type firestoreSubscription struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Cancel stops the listener and blocks until its callback goroutine exits,
// so no two callbacks for the same subscription kind can overlap.
func (s *firestoreSubscription) Cancel() {
	s.cancel()
	s.wg.Wait()
}
