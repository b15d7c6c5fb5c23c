package domain

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
)

// UserLike is the capability set shared by every account-bound entity.
type UserLike interface {
	fmt.Stringer
	Int() int64
	Identity() Identity
	IconURL() string
	Online() bool
	Link() string
	HumanTimedelta() string
	AsDict() map[string]any
}

var (
	_ UserLike = (*ClanMember)(nil)
	_ UserLike = (*ClanOwner)(nil)
)

// ClanMember is a member of a clan roster.
type ClanMember struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Type       MembershipType   `json:"type"`
	Types      []MembershipType `json:"types"`
	Icon       Image            `json:"icon"`
	IsPublic   bool             `json:"is_public"`
	GroupID    int64            `json:"group_id"`
	IsOnline   bool             `json:"is_online"`
	JoinedAt   time.Time        `json:"joined_at"`
	LastOnline time.Time        `json:"last_online"`
	Code       int              `json:"code"`
}

func (m *ClanMember) String() string { return m.Name }
func (m *ClanMember) Int() int64 { return m.ID }
func (m *ClanMember) Identity() Identity { return Identity{ID: m.ID, Type: m.Type} }
func (m *ClanMember) IconURL() string { return m.Icon.URL() }
func (m *ClanMember) Online() bool { return m.IsOnline }
func (m *ClanMember) Link() string { return m.Identity().Link() }
func (m *ClanMember) HumanTimedelta() string { return humanTimedelta(m.LastOnline) }

// AsDict exports the member's fields keyed by their JSON names.
func (m *ClanMember) AsDict() map[string]any {
	d := userDict(m.Identity(), m.Name, m.Types, m.Icon, m.IsPublic, m.IsOnline, m.JoinedAt, m.LastOnline, m.Code)
	d["group_id"] = m.GroupID
	return d
}

// Ban needs an authorized moderation flow and always fails.
func (m *ClanMember) Ban(ctx context.Context) error { return unsupported(OpBan) }

// Unban needs an authorized moderation flow and always fails.
func (m *ClanMember) Unban(ctx context.Context) error { return unsupported(OpUnban) }

// Kick needs an authorized moderation flow and always fails.
func (m *ClanMember) Kick(ctx context.Context) error { return unsupported(OpKick) }

// Moderate dispatches op to Ban, Unban or Kick.
func (m *ClanMember) Moderate(ctx context.Context, op Operation) error {
	switch op {
	case OpBan:
		return m.Ban(ctx)
	case OpUnban:
		return m.Unban(ctx)
	case OpKick:
		return m.Kick(ctx)
	}
	return fmt.Errorf("unknown moderation operation %q", op)
}

// ClanOwner is the founder of a clan.
type ClanOwner struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Type       MembershipType   `json:"type"`
	Types      []MembershipType `json:"types"`
	Icon       Image            `json:"icon"`
	IsPublic   bool             `json:"is_public"`
	ClanID     int64            `json:"clan_id"`
	IsOnline   bool             `json:"is_online"`
	JoinedAt   time.Time        `json:"joined_at"`
	LastOnline time.Time        `json:"last_online"`
	Code       int              `json:"code"`
}

func (o *ClanOwner) String() string { return o.Name }
func (o *ClanOwner) Int() int64 { return o.ID }
func (o *ClanOwner) Identity() Identity { return Identity{ID: o.ID, Type: o.Type} }
func (o *ClanOwner) IconURL() string { return o.Icon.URL() }
func (o *ClanOwner) Online() bool { return o.IsOnline }
func (o *ClanOwner) Link() string { return o.Identity().Link() }
func (o *ClanOwner) HumanTimedelta() string { return humanTimedelta(o.LastOnline) }

// AsDict exports the owner's fields keyed by their JSON names.
func (o *ClanOwner) AsDict() map[string]any {
	d := userDict(o.Identity(), o.Name, o.Types, o.Icon, o.IsPublic, o.IsOnline, o.JoinedAt, o.LastOnline, o.Code)
	d["clan_id"] = o.ClanID
	return d
}

func userDict(id Identity, name string, types []MembershipType, icon Image, public, online bool, joined, last time.Time, code int) map[string]any {
	return map[string]any{
		"id":          id.ID,
		"name":        name,
		"type":        id.Type,
		"types":       slices.Clone(types),
		"icon":        icon.URL(),
		"is_public":   public,
		"is_online":   online,
		"joined_at":   joined,
		"last_online": last,
		"code":        code,
		"link":        id.Link(),
	}
}

func humanTimedelta(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}
