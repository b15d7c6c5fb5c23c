package domain

import (
	"context"
	"slices"
	"time"

	"github.com/clanops/clan-gateway/pkg/bungieurl"
)

// ClanRequester is the transport the clan aggregate delegates fetches to.
// A filter for which MembershipType.AnyPlatform holds means every platform. Errors are returned to
// the caller as they are.
type ClanRequester interface {
	FetchClanMember(ctx context.Context, clanID int64, name string, t MembershipType) (*ClanMember, error)
	FetchClanMembers(ctx context.Context, clanID int64, t MembershipType) ([]*ClanMember, error)
}

// Clan is a snapshot of a clan as returned by the API. Fetch methods never
// change the snapshot's own fields.
type Clan struct {
	ID          int64
	Type        GroupType
	Name        string
	CreatedAt   time.Time
	MemberCount int
	Description *string
	IsPublic    bool
	Banner      Image
	Avatar      Image
	About       string
	Tags        []string
	Owner       *ClanOwner
	Features    ClanFeatures

	net ClanRequester
}

// Bind returns a copy of c that fetches through net.
func (c Clan) Bind(net ClanRequester) *Clan {
	c.Tags = slices.Clone(c.Tags)
	c.net = net
	return &c
}

func (c *Clan) Int() int64     { return c.ID }
func (c *Clan) String() string { return c.Name }

// DescriptionOr returns the description, or def when the clan has none.
func (c *Clan) DescriptionOr(def string) string {
	if c.Description == nil {
		return def
	}
	return *c.Description
}

// Link is the clan's page on bungie.net.
func (c *Clan) Link() string {
	return bungieurl.ClanLink(c.ID)
}

// FetchMember looks a member up by display name. Without a type every
// platform is searched.
func (c *Clan) FetchMember(ctx context.Context, name string, t ...MembershipType) (*ClanMember, error) {
	if c.net == nil {
		return nil, ErrNoRequester
	}
	return c.net.FetchClanMember(ctx, c.ID, name, firstType(t))
}

// FetchMembers returns the roster, optionally filtered to one platform.
// MemberCount is left as it was.
func (c *Clan) FetchMembers(ctx context.Context, t ...MembershipType) ([]*ClanMember, error) {
	if c.net == nil {
		return nil, ErrNoRequester
	}
	return c.net.FetchClanMembers(ctx, c.ID, firstType(t))
}

func (c *Clan) FetchBannedMembers(ctx context.Context) ([]*ClanMember, error) {
	return nil, unsupported(OpFetchBanned)
}

func (c *Clan) FetchPendingMembers(ctx context.Context) ([]*ClanMember, error) {
	return nil, unsupported(OpFetchPending)
}

func (c *Clan) FetchInvitedMembers(ctx context.Context) ([]*ClanMember, error) {
	return nil, unsupported(OpFetchInvited)
}

func firstType(t []MembershipType) MembershipType {
	if len(t) == 0 {
		return MembershipTypeNone
	}
	return t[0]
}
