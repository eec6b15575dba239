package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	"github.com/google/uuid"
)

var (
	ErrEmptyGroupName = errors.New("group name is empty")
	ErrEmptyJoinCode  = errors.New("join code is empty")
	ErrGroupNotFound  = errors.New("group not found")
	ErrAlreadyMember  = errors.New("already a group member")
	ErrNotGroupAdmin  = errors.New("not a group admin")
)

// JoinCodeLength is the length of generated group join codes.
const JoinCodeLength = 8

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=groups_test

type groupsStore interface {
	Get(ctx context.Context, path string) (store.Document, error)
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
	Batch(ctx context.Context, writes []store.Write) error
}

// Service owns group membership writes. Every mutation pairs the group-side
// documents with the per-user membership pointer and the memberCount counter
// in one atomic batch, so the counter can drift from the members collection
// only across actions, never within one.
type Service struct {
	store groupsStore

	// injectable for testing
	Now            func() time.Time
	NewID          func() string
	RandStringFunc func(s int) (string, error)
}

func NewService(store groupsStore) *Service {
	return &Service{
		store:          store,
		Now:            time.Now,
		NewID:          uuid.NewString,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Memberships lists the user's membership pointers, oldest joined first.
func (s *Service) Memberships(ctx context.Context, userID string) (_ []Membership, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.groups.memberships")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshots, err := s.store.Query(ctx, store.Query{
		Collection: store.UserMembershipsCollection(userID),
		OrderBy:    "joinedAt",
	})
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	memberships := make([]Membership, 0, len(snapshots))
	for _, snap := range snapshots {
		memberships = append(memberships, DecodeMembership(snap.ID, snap.Data))
	}
	return memberships, nil
}

// Create makes a new group with the creator as its only, admin, member.
func (s *Service) Create(ctx context.Context, userID, displayName, name, description string) (_ *Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.groups.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	joinCode, err := s.RandStringFunc(JoinCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate join code: %w", err)
	}
	joinCode = strings.ToUpper(joinCode)

	group := Group{
		ID:          s.NewID(),
		Name:        name,
		Description: description,
		JoinCode:    joinCode,
		MemberCount: 1,
		CreatedAt:   s.Now(),
		Role:        RoleAdmin,
	}

	if err := s.store.Batch(ctx, []store.Write{
		{
			Path: store.GroupPath(group.ID),
			Data: store.Document{
				"name":        group.Name,
				"description": group.Description,
				"joinCode":    group.JoinCode,
				"memberCount": group.MemberCount,
				"createdAt":   group.CreatedAt,
			},
		},
		{
			Path: store.GroupMemberPath(group.ID, userID),
			Data: store.Document{
				"displayName": displayName,
				"role":        RoleAdmin,
				"joinedAt":    group.CreatedAt,
			},
		},
		{
			Path: store.MembershipPath(userID, group.ID),
			Data: store.Document{
				"role":     RoleAdmin,
				"joinedAt": group.CreatedAt,
			},
		},
	}); err != nil {
		return nil, fmt.Errorf("create group [%s]: %w", name, err)
	}

	return &group, nil
}

// Join adds the user to the group matching the join code.
func (s *Service) Join(ctx context.Context, userID, displayName, joinCode string) (_ *Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.groups.join")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	joinCode = strings.ToUpper(strings.TrimSpace(joinCode))
	if joinCode == "" {
		return nil, ErrEmptyJoinCode
	}

	snapshots, err := s.store.Query(ctx, store.Query{
		Collection: store.GroupsCollection,
		Filters: []store.Filter{
			{Field: "joinCode", Op: "==", Value: joinCode},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("find group by join code: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrGroupNotFound
	}

	group := DecodeGroup(snapshots[0].ID, snapshots[0].Data)

	if _, err := s.store.Get(ctx, store.MembershipPath(userID, group.ID)); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check membership: %w", err)
	}

	joinedAt := s.Now()
	if err := s.store.Batch(ctx, []store.Write{
		{
			Path: store.GroupMemberPath(group.ID, userID),
			Data: store.Document{
				"displayName": displayName,
				"role":        RoleMember,
				"joinedAt":    joinedAt,
			},
		},
		{
			Path: store.MembershipPath(userID, group.ID),
			Data: store.Document{
				"role":     RoleMember,
				"joinedAt": joinedAt,
			},
		},
		{
			Path:       store.GroupPath(group.ID),
			Merge:      true,
			Increments: map[string]int64{"memberCount": 1},
		},
	}); err != nil {
		return nil, fmt.Errorf("join group [%s]: %w", group.ID, err)
	}

	group.MemberCount++
	group.Role = RoleMember
	return &group, nil
}

// Leave removes the user from a group: member document, membership pointer
// and counter decrement land in one atomic batch. A group left by its last
// member is not auto-deleted.
func (s *Service) Leave(ctx context.Context, userID, groupID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.groups.leave")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.store.Get(ctx, store.MembershipPath(userID, groupID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("check membership: %w", err)
	}

	if err := s.store.Batch(ctx, []store.Write{
		{Path: store.GroupMemberPath(groupID, userID), Delete: true},
		{Path: store.MembershipPath(userID, groupID), Delete: true},
		{
			Path:       store.GroupPath(groupID),
			Merge:      true,
			Increments: map[string]int64{"memberCount": -1},
		},
	}); err != nil {
		return fmt.Errorf("leave group [%s]: %w", groupID, err)
	}
	return nil
}

// Delete removes a group entirely: the group document, every member document
// and every member's membership pointer, in one atomic batch. Admins only.
func (s *Service) Delete(ctx context.Context, userID, groupID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.groups.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	membershipDoc, err := s.store.Get(ctx, store.MembershipPath(userID, groupID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("check membership: %w", err)
	}
	if store.GetString(membershipDoc, "role", RoleMember) != RoleAdmin {
		return ErrNotGroupAdmin
	}

	members, err := s.store.Query(ctx, store.Query{
		Collection: store.GroupMembersCollection(groupID),
	})
	if err != nil {
		return fmt.Errorf("list group members: %w", err)
	}

	writes := make([]store.Write, 0, 2*len(members)+1)
	for _, member := range members {
		writes = append(writes,
			store.Write{Path: store.GroupMemberPath(groupID, member.ID), Delete: true},
			store.Write{Path: store.MembershipPath(member.ID, groupID), Delete: true},
		)
	}
	writes = append(writes, store.Write{Path: store.GroupPath(groupID), Delete: true})

	if err := s.store.Batch(ctx, writes); err != nil {
		return fmt.Errorf("delete group [%s]: %w", groupID, err)
	}
	return nil
}
