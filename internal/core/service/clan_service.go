package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/api/metrics"
	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// ClanService serves clan snapshots from the mirror and delegates member
// fetches through the clan aggregate.
type ClanService struct {
	repo      ports.ClanRepository
	requester domain.ClanRequester
	logger    zerolog.Logger
}

// NewClanService returns a ClanService. Clans are bound to requester; a nil
// requester falls back to repo.
func NewClanService(repo ports.ClanRepository, requester domain.ClanRequester, logger zerolog.Logger) *ClanService {
	if requester == nil {
		requester = repo
	}
	return &ClanService{repo: repo, requester: requester, logger: logger}
}

// GetClan returns the stored clan bound to the service's requester.
func (s *ClanService) GetClan(ctx context.Context, clanID int64) (*domain.Clan, error) {
	clan, err := s.repo.FindClan(ctx, clanID)
	if err != nil {
		return nil, fmt.Errorf("get clan %d: %w", clanID, err)
	}
	return clan.Bind(s.requester), nil
}

// GetMember fetches one member of clanID by display name.
func (s *ClanService) GetMember(ctx context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error) {
	clan, err := s.GetClan(ctx, clanID)
	if err != nil {
		return nil, err
	}

	member, err := clan.FetchMember(ctx, name, t)
	observeFetch(domain.OpFetchMember, err)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ListMembers fetches the roster of clanID. The clan's stored member count is
// returned as is.
func (s *ClanService) ListMembers(ctx context.Context, clanID int64, t domain.MembershipType) (*ports.MemberList, error) {
	clan, err := s.GetClan(ctx, clanID)
	if err != nil {
		return nil, err
	}

	members, err := clan.FetchMembers(ctx, t)
	observeFetch(domain.OpFetchMembers, err)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("clan_id", clanID).
		Str("type", t.String()).
		Int("fetched", len(members)).
		Int("member_count", clan.MemberCount).
		Msg("roster fetched")

	return &ports.MemberList{Clan: clan, Members: members}, nil
}

// RestrictedMembers serves the banned, pending and invited member lists.
func (s *ClanService) RestrictedMembers(ctx context.Context, clanID int64, op domain.Operation) ([]*domain.ClanMember, error) {
	if !domain.Supports(op) {
		return nil, s.reject(clanID, op)
	}

	clan, err := s.GetClan(ctx, clanID)
	if err != nil {
		return nil, err
	}
	switch op {
	case domain.OpFetchBanned:
		return clan.FetchBannedMembers(ctx)
	case domain.OpFetchPending:
		return clan.FetchPendingMembers(ctx)
	case domain.OpFetchInvited:
		return clan.FetchInvitedMembers(ctx)
	}
	return nil, fmt.Errorf("restricted members: unknown operation %q", op)
}

// Moderate applies op to a member. Moderation needs an authorized flow, so
// the operation is rejected before anything is looked up.
func (s *ClanService) Moderate(ctx context.Context, clanID int64, name string, t domain.MembershipType, op domain.Operation) error {
	if !domain.Supports(op) {
		return s.reject(clanID, op)
	}

	member, err := s.GetMember(ctx, clanID, name, t)
	if err != nil {
		return err
	}
	return member.Moderate(ctx, op)
}

func (s *ClanService) reject(clanID int64, op domain.Operation) error {
	metrics.UnsupportedOperationsTotal.WithLabelValues(string(op)).Inc()
	s.logger.Info().Int64("clan_id", clanID).Str("op", string(op)).Msg("unsupported operation rejected")
	return &domain.UnsupportedOperationError{Op: op}
}

func observeFetch(op domain.Operation, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrMemberNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	metrics.MemberFetchTotal.WithLabelValues(string(op), result).Inc()
}
