package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/api/metrics"
	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, clanID int64, fetchedAt time.Time) (bool, error)
	Mark(ctx context.Context, clanID int64, fetchedAt time.Time) error
}

type snapshotService struct {
	repo  ports.ClanRepository
	cache ports.MemberCache
	dedup DedupChecker
	log   zerolog.Logger
}

// NewSnapshotService returns a SnapshotService implementation.
func NewSnapshotService(
	repo ports.ClanRepository,
	cache ports.MemberCache,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.SnapshotService {
	return &snapshotService{
		repo:  repo,
		cache: cache,
		dedup: dedup,
		log:   log,
	}
}

// Process validates, deduplicates and applies a single roster snapshot.
func (s *snapshotService) Process(ctx context.Context, in ports.RosterSnapshotInput) error {
	// 1. Idempotency check: duplicates are skipped silently.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ClanID, in.FetchedAt)
	if err != nil {
		s.log.Warn().Err(err).Int64("clan_id", in.ClanID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.SnapshotDedupTotal.WithLabelValues("hit").Inc()
		metrics.SnapshotsProcessedTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Int64("clan_id", in.ClanID).Time("fetched_at", in.FetchedAt).Msg("duplicate snapshot skipped")
		return nil
	} else {
		metrics.SnapshotDedupTotal.WithLabelValues("miss").Inc()
	}

	// 2. Build the aggregate; invalid features and duplicate members never
	// reach storage.
	if err := in.Validate(); err != nil {
		metrics.SnapshotsProcessedTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("process snapshot: %w", err)
	}
	clan, err := toClan(in)
	if err != nil {
		metrics.SnapshotsProcessedTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("process snapshot: %w", err)
	}
	members := toMembers(in.ClanID, in.Members)

	// 3. Persist clan then roster.
	if err := s.repo.UpsertClan(ctx, clan, in.FetchedAt); err != nil {
		metrics.SnapshotsProcessedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("process snapshot: upsert clan: %w", err)
	}
	if err := s.repo.ReplaceMembers(ctx, in.ClanID, members); err != nil {
		metrics.SnapshotsProcessedTotal.WithLabelValues("error").Inc()
		// The clan document is already new; cached lookups may not survive.
		s.invalidate(ctx, in.ClanID)
		return fmt.Errorf("process snapshot: replace members: %w", err)
	}

	// 4. Mark as applied, drop stale lookups (both non-fatal).
	if err := s.dedup.Mark(ctx, in.ClanID, in.FetchedAt); err != nil {
		s.log.Warn().Err(err).Int64("clan_id", in.ClanID).Msg("failed to set dedup key")
	}
	s.invalidate(ctx, in.ClanID)

	metrics.SnapshotsProcessedTotal.WithLabelValues("applied").Inc()
	s.log.Info().
		Int64("clan_id", in.ClanID).
		Str("name", in.Name).
		Int("members", len(members)).
		Msg("snapshot applied")

	return nil
}

func (s *snapshotService) invalidate(ctx context.Context, clanID int64) {
	if err := s.cache.Invalidate(ctx, clanID); err != nil {
		s.log.Warn().Err(err).Int64("clan_id", clanID).Msg("failed to invalidate member cache")
	}
}

func toClan(in ports.RosterSnapshotInput) (*domain.Clan, error) {
	features, err := domain.NewClanFeatures(domain.ClanFeaturesParams{
		MaxMembers:               in.Features.MaxMembers,
		MaxMembershipTypes:       in.Features.MaxMembershipTypes,
		Capabilities:             in.Features.Capabilities,
		MembershipTypes:          domain.MembershipTypes(in.Features.MembershipTypes),
		InvitePermissions:        in.Features.InvitePermissions,
		UpdateBannerPermissions:  in.Features.UpdateBannerPermissions,
		UpdateCulturePermissions: in.Features.UpdateCulturePermissions,
		JoinLevel:                in.Features.JoinLevel,
	})
	if err != nil {
		return nil, err
	}

	o := in.Owner
	return &domain.Clan{
		ID:          in.ClanID,
		Type:        domain.GroupType(in.GroupType),
		Name:        in.Name,
		CreatedAt:   in.CreatedAt.UTC(),
		MemberCount: in.MemberCount,
		Description: in.Description,
		IsPublic:    in.IsPublic,
		Banner:      domain.Image(in.Banner),
		Avatar:      domain.Image(in.Avatar),
		About:       in.About,
		Tags:        in.Tags,
		Features:    features,
		Owner: &domain.ClanOwner{
			ID:         o.ID,
			Name:       o.Name,
			Type:       domain.ParseMembershipType(o.Type),
			Types:      domain.MembershipTypes(o.Types),
			Icon:       domain.Image(o.Icon),
			IsPublic:   o.IsPublic,
			ClanID:     in.ClanID,
			IsOnline:   o.IsOnline,
			JoinedAt:   o.JoinedAt.UTC(),
			LastOnline: o.LastOnline.UTC(),
			Code:       o.Code,
		},
	}, nil
}

func toMembers(clanID int64, in []ports.UserInput) []*domain.ClanMember {
	out := make([]*domain.ClanMember, len(in))
	for i, m := range in {
		out[i] = &domain.ClanMember{
			ID:         m.ID,
			Name:       m.Name,
			Type:       domain.ParseMembershipType(m.Type),
			Types:      domain.MembershipTypes(m.Types),
			Icon:       domain.Image(m.Icon),
			IsPublic:   m.IsPublic,
			GroupID:    clanID,
			IsOnline:   m.IsOnline,
			JoinedAt:   m.JoinedAt.UTC(),
			LastOnline: m.LastOnline.UTC(),
			Code:       m.Code,
		}
	}
	return out
}
