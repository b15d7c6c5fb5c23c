package ports

import (
	"context"
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// ClanRepository persists the clan/roster mirror. It doubles as the
// requester clan aggregates fetch members through.
type ClanRepository interface {
	domain.ClanRequester

	// FindClan returns the stored snapshot, unbound.
	FindClan(ctx context.Context, clanID int64) (*domain.Clan, error)
	// UpsertClan stores the clan snapshot taken at fetchedAt.
	UpsertClan(ctx context.Context, clan *domain.Clan, fetchedAt time.Time) error
	// ReplaceMembers swaps the stored roster of clanID for members.
	ReplaceMembers(ctx context.Context, clanID int64, members []*domain.ClanMember) error
}

// MemberCache drops cached member lookups.
type MemberCache interface {
	Invalidate(ctx context.Context, clanID int64) error
}
