package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

func validSnapshot() ports.RosterSnapshotInput {
	desc := "we raid"
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return ports.RosterSnapshotInput{
		ClanID:      998271,
		FetchedAt:   at,
		Name:        "Cool clan",
		GroupType:   1,
		CreatedAt:   at.AddDate(-2, 0, 0),
		MemberCount: 2,
		Description: &desc,
		IsPublic:    true,
		Tags:        []string{"pve"},
		Owner:       ports.UserInput{ID: 2938, Name: "DiggaD", Type: 3, Types: []int{3, 2}},
		Features: ports.FeaturesInput{
			MaxMembers:         100,
			MaxMembershipTypes: 5,
			Capabilities:       31,
			MembershipTypes:    []int{1, 2, 3},
			JoinLevel:          1,
		},
		Members: []ports.UserInput{
			{ID: 4432, Name: "thom", Type: 3},
			{ID: 4433, Name: "vex", Type: 99},
		},
	}
}

func TestSnapshotService_Process_Applies(t *testing.T) {
	repo, cache, dedup := newStubClanRepo(), &stubCache{}, newStubDedup()
	svc := NewSnapshotService(repo, cache, dedup, zerolog.Nop())

	in := validSnapshot()
	require.NoError(t, svc.Process(context.Background(), in))

	clan := repo.clans[in.ClanID]
	require.NotNil(t, clan)
	assert.Equal(t, domain.GroupTypeClan, clan.Type)
	assert.Equal(t, "we raid", clan.DescriptionOr(""))
	assert.Equal(t, in.ClanID, clan.Owner.ClanID)
	assert.Equal(t, 100, clan.Features.MaxMembers())
	assert.True(t, clan.Features.SupportsMembershipType(domain.MembershipTypeSteam))
	assert.Equal(t, in.FetchedAt, repo.fetchedAt[in.ClanID])

	members := repo.members[in.ClanID]
	require.Len(t, members, 2)
	assert.Equal(t, in.ClanID, members[0].GroupID)
	assert.Equal(t, domain.MembershipTypeNone, members[1].Type)

	assert.Equal(t, 1, dedup.marks)
	assert.Equal(t, []int64{in.ClanID}, cache.invalidated)
}

func TestSnapshotService_Process_SkipsDuplicate(t *testing.T) {
	repo, dedup := newStubClanRepo(), newStubDedup()
	svc := NewSnapshotService(repo, &stubCache{}, dedup, zerolog.Nop())

	in := validSnapshot()
	require.NoError(t, svc.Process(context.Background(), in))
	require.NoError(t, svc.Process(context.Background(), in))

	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, 1, dedup.marks)
}

func TestSnapshotService_Process_InvalidFeatures(t *testing.T) {
	repo, dedup := newStubClanRepo(), newStubDedup()
	svc := NewSnapshotService(repo, &stubCache{}, dedup, zerolog.Nop())

	in := validSnapshot()
	in.Features.JoinLevel = 0

	err := svc.Process(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidFeatures)
	assert.Zero(t, repo.upserts)
	assert.Zero(t, dedup.marks)
}

func TestSnapshotService_Process_DuplicateMembersNeverStored(t *testing.T) {
	repo, cache, dedup := newStubClanRepo(), &stubCache{}, newStubDedup()
	svc := NewSnapshotService(repo, cache, dedup, zerolog.Nop())

	in := validSnapshot()
	in.Members = append(in.Members, ports.UserInput{ID: 4432, Name: "thom", Type: 3})

	err := svc.Process(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicateMember)
	assert.Contains(t, err.Error(), "members[2] STEAM/4432")
	assert.Zero(t, repo.upserts)
	assert.Zero(t, repo.replaces)
	assert.Zero(t, dedup.marks)
	assert.Empty(t, cache.invalidated)
}

func TestSnapshotService_Process_SameIDOnTwoPlatforms(t *testing.T) {
	repo := newStubClanRepo()
	svc := NewSnapshotService(repo, &stubCache{}, newStubDedup(), zerolog.Nop())

	in := validSnapshot()
	in.Members = append(in.Members, ports.UserInput{ID: 4432, Name: "thom", Type: 2})

	require.NoError(t, svc.Process(context.Background(), in))
	assert.Len(t, repo.members[in.ClanID], 3)
}

func TestSnapshotService_Process_DedupFailureStillApplies(t *testing.T) {
	repo, dedup := newStubClanRepo(), newStubDedup()
	dedup.checkErr = errors.New("redis unavailable")
	svc := NewSnapshotService(repo, &stubCache{}, dedup, zerolog.Nop())

	require.NoError(t, svc.Process(context.Background(), validSnapshot()))
	assert.Equal(t, 1, repo.upserts)
}

func TestSnapshotService_Process_RepoErrors(t *testing.T) {
	repo := newStubClanRepo()
	repo.upsertErr = errors.New("mongo down")
	dedup := newStubDedup()
	svc := NewSnapshotService(repo, &stubCache{}, dedup, zerolog.Nop())

	err := svc.Process(context.Background(), validSnapshot())
	assert.ErrorIs(t, err, repo.upsertErr)
	assert.Zero(t, repo.replaces)
	assert.Zero(t, dedup.marks)

	repo.upsertErr = nil
	repo.replaceErr = errors.New("bulk write failed")
	err = svc.Process(context.Background(), validSnapshot())
	assert.ErrorIs(t, err, repo.replaceErr)
	assert.Zero(t, dedup.marks)
}

func TestSnapshotService_Process_ReplaceFailureDropsCachedLookups(t *testing.T) {
	repo, cache := newStubClanRepo(), &stubCache{}
	repo.replaceErr = errors.New("bulk write failed")
	svc := NewSnapshotService(repo, cache, newStubDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), validSnapshot())
	assert.ErrorIs(t, err, repo.replaceErr)
	assert.Equal(t, []int64{998271}, cache.invalidated)
}

func TestSnapshotService_Process_CacheFailureIsNotFatal(t *testing.T) {
	repo := newStubClanRepo()
	svc := NewSnapshotService(repo, &stubCache{err: errors.New("scan failed")}, newStubDedup(), zerolog.Nop())

	require.NoError(t, svc.Process(context.Background(), validSnapshot()))
	assert.Len(t, repo.members[998271], 2)
}
