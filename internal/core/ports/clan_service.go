package ports

import (
	"context"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// MemberList is a fetched roster next to the clan it was fetched for.
// Clan.MemberCount is the stored value, not len(Members).
type MemberList struct {
	Clan    *domain.Clan
	Members []*domain.ClanMember
}

// ClanService defines the read and moderation use cases over clans.
type ClanService interface {
	GetClan(ctx context.Context, clanID int64) (*domain.Clan, error)
	GetMember(ctx context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error)
	ListMembers(ctx context.Context, clanID int64, t domain.MembershipType) (*MemberList, error)
	// RestrictedMembers serves the banned, pending and invited lists.
	RestrictedMembers(ctx context.Context, clanID int64, op domain.Operation) ([]*domain.ClanMember, error)
	// Moderate applies ban, unban or kick to a member.
	Moderate(ctx context.Context, clanID int64, name string, t domain.MembershipType, op domain.Operation) error
}
