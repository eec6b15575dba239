package groups

import (
	"time"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/workouts"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Group is a workout group. Members, Templates and Role are resolved by the
// Aggregator; the raw group document carries only the scalar fields.
//
// MemberCount is a store-side atomic counter maintained alongside membership
// writes. It should equal the size of the members collection, but the two are
// only eventually consistent, and Role is a snapshot taken at resolve time,
// not a live join against the members collection.
type Group struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	JoinCode    string              `json:"joinCode"`
	MemberCount int64               `json:"memberCount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Role        string              `json:"role,omitempty"`
	Members     []Member            `json:"members,omitempty"`
	Templates   []workouts.Template `json:"templates,omitempty"`
}

type Member struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Membership is the per-user membership pointer, one document per joined
// group under the user's memberships collection.
type Membership struct {
	GroupID  string    `json:"groupId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func DecodeGroup(id string, doc store.Document) Group {
	return Group{
		ID:          id,
		Name:        store.GetString(doc, "name", ""),
		Description: store.GetString(doc, "description", ""),
		JoinCode:    store.GetString(doc, "joinCode", ""),
		MemberCount: store.GetInt(doc, "memberCount", 0),
		CreatedAt:   store.GetTime(doc, "createdAt", time.Time{}),
	}
}

func DecodeMember(id string, doc store.Document) Member {
	return Member{
		ID:          id,
		DisplayName: store.GetString(doc, "displayName", ""),
		Role:        store.GetString(doc, "role", RoleMember),
		ImageURL:    store.GetString(doc, "imageUrl", ""),
		JoinedAt:    store.GetTime(doc, "joinedAt", time.Time{}),
	}
}

func DecodeMembership(id string, doc store.Document) Membership {
	return Membership{
		GroupID:  id,
		Role:     store.GetString(doc, "role", RoleMember),
		JoinedAt: store.GetTime(doc, "joinedAt", time.Time{}),
	}
}
