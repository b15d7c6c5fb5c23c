package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// UserInput carries the fields shared by roster members and the clan owner.
type UserInput struct {
	ID         int64
	Name       string
	Type       int
	Types      []int
	Icon       string
	IsPublic   bool
	IsOnline   bool
	JoinedAt   time.Time
	LastOnline time.Time
	Code       int
}

// FeaturesInput carries the raw clan capability descriptor.
type FeaturesInput struct {
	MaxMembers               int
	MaxMembershipTypes       int
	Capabilities             int
	MembershipTypes          []int
	InvitePermissions        bool
	UpdateBannerPermissions  bool
	UpdateCulturePermissions bool
	JoinLevel                int
}

// RosterSnapshotInput is a clan and its roster as fetched at FetchedAt.
type RosterSnapshotInput struct {
	ClanID      int64
	FetchedAt   time.Time
	Name        string
	GroupType   int
	CreatedAt   time.Time
	MemberCount int
	Description *string
	IsPublic    bool
	Banner      string
	Avatar      string
	About       string
	Tags        []string
	Owner       UserInput
	Features    FeaturesInput
	Members     []UserInput
}

// Validate rejects a roster that lists one membership twice. The mirror keys
// members by (clan, type, id), so such a roster cannot be stored.
func (in RosterSnapshotInput) Validate() error {
	if i, ok := DuplicateMember(in.Members); ok {
		m := in.Members[i]
		return fmt.Errorf("%w: members[%d] %s/%d", domain.ErrDuplicateMember, i, domain.ParseMembershipType(m.Type), m.ID)
	}
	return nil
}

// DuplicateMember returns the index of the first member whose (type, id)
// repeats an earlier one. Types are normalized the way they are stored.
func DuplicateMember(members []UserInput) (int, bool) {
	type key struct {
		t  domain.MembershipType
		id int64
	}
	seen := make(map[key]struct{}, len(members))
	for i, m := range members {
		k := key{t: domain.ParseMembershipType(m.Type), id: m.ID}
		if _, dup := seen[k]; dup {
			return i, true
		}
		seen[k] = struct{}{}
	}
	return 0, false
}

// SnapshotService applies roster snapshots to the mirror.
type SnapshotService interface {
	Process(ctx context.Context, snapshot RosterSnapshotInput) error
}
