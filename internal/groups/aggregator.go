package groups

import (
	"context"
	"sync"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=groups_test

type aggregatorStore interface {
	GetByIDs(ctx context.Context, collection string, ids []string) ([]store.Snapshot, error)
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
}

// Aggregator resolves membership pointers into full group records: one
// batched fetch for the group documents themselves, then a parallel
// members+templates fan-out per group.
type Aggregator struct {
	store aggregatorStore
}

func NewAggregator(store aggregatorStore) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

// Resolve fetches the full group record for every membership. The result is
// published only once every group's member and template fetches have
// completed; per-group failures are joined and returned alongside the groups
// that did resolve.
func (a *Aggregator) Resolve(ctx context.Context, memberships []Membership) (_ []Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.groups.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("memberships", len(memberships)))

	if len(memberships) == 0 {
		return []Group{}, nil
	}

	roleByGroup := make(map[string]string, len(memberships))
	groupIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		groupIDs = append(groupIDs, m.GroupID)
		roleByGroup[m.GroupID] = m.Role
	}

	snapshots, err := a.store.GetByIDs(ctx, store.GroupsCollection, groupIDs)
	if err != nil {
		return nil, err
	}

	resolved := make([]Group, len(snapshots))
	errs := make([]error, len(snapshots))
	var wg sync.WaitGroup
	for i, snap := range snapshots {
		group := DecodeGroup(snap.ID, snap.Data)
		group.Role = roleByGroup[snap.ID]

		wg.Add(1)
		go func(i int, group Group) {
			defer wg.Done()
			resolved[i], errs[i] = a.resolveDetails(ctx, group)
		}(i, group)
	}
	wg.Wait()

	return resolved, multierr.Combine(errs...)
}

// resolveDetails runs the members and templates fetches of one group in
// parallel and waits for both.
func (a *Aggregator) resolveDetails(ctx context.Context, group Group) (Group, error) {
	var (
		wg                       sync.WaitGroup
		membersErr, templatesErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		snapshots, err := a.store.Query(ctx, store.Query{
			Collection: store.GroupMembersCollection(group.ID),
			OrderBy:    "joinedAt",
		})
		if err != nil {
			membersErr = err
			return
		}
		members := make([]Member, 0, len(snapshots))
		for _, snap := range snapshots {
			members = append(members, DecodeMember(snap.ID, snap.Data))
		}
		group.Members = members
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		snapshots, err := a.store.Query(ctx, store.Query{
			Collection: store.GroupTemplatesCollection(group.ID),
			OrderBy:    "editedAt",
			Desc:       true,
		})
		if err != nil {
			templatesErr = err
			return
		}
		templates := make([]workouts.Template, 0, len(snapshots))
		for _, snap := range snapshots {
			templates = append(templates, workouts.DecodeTemplate(snap.ID, snap.Data))
		}
		group.Templates = templates
	}()

	wg.Wait()
	return group, multierr.Append(membersErr, templatesErr)
}
