package service

import (
	"context"
	"strings"
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// stubClanRepo is an in-memory ClanRepository.
type stubClanRepo struct {
	clans     map[int64]*domain.Clan
	fetchedAt map[int64]time.Time
	members   map[int64][]*domain.ClanMember

	upsertErr  error
	replaceErr error
	fetchErr   error

	upserts  int
	replaces int
	fetches  []domain.MembershipType
}

func newStubClanRepo() *stubClanRepo {
	return &stubClanRepo{
		clans:     make(map[int64]*domain.Clan),
		fetchedAt: make(map[int64]time.Time),
		members:   make(map[int64][]*domain.ClanMember),
	}
}

func (r *stubClanRepo) FindClan(_ context.Context, clanID int64) (*domain.Clan, error) {
	c, ok := r.clans[clanID]
	if !ok {
		return nil, domain.ErrClanNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClanRepo) UpsertClan(_ context.Context, clan *domain.Clan, fetchedAt time.Time) error {
	r.upserts++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	clone := *clan
	r.clans[clan.ID] = &clone
	r.fetchedAt[clan.ID] = fetchedAt
	return nil
}

func (r *stubClanRepo) ReplaceMembers(_ context.Context, clanID int64, members []*domain.ClanMember) error {
	r.replaces++
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.members[clanID] = members
	return nil
}

func (r *stubClanRepo) FetchClanMember(_ context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error) {
	r.fetches = append(r.fetches, t)
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	for _, m := range r.members[clanID] {
		if strings.EqualFold(m.Name, name) && (t.AnyPlatform() || m.Type == t) {
			return m, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubClanRepo) FetchClanMembers(_ context.Context, clanID int64, t domain.MembershipType) ([]*domain.ClanMember, error) {
	r.fetches = append(r.fetches, t)
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	var out []*domain.ClanMember
	for _, m := range r.members[clanID] {
		if t.AnyPlatform() || m.Type == t {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubCache struct {
	invalidated []int64
	err         error
}

func (c *stubCache) Invalidate(_ context.Context, clanID int64) error {
	c.invalidated = append(c.invalidated, clanID)
	return c.err
}

type stubDedup struct {
	seen     map[int64]time.Time
	checkErr error
	marks    int
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[int64]time.Time)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, clanID int64, fetchedAt time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	at, ok := d.seen[clanID]
	return ok && at.Equal(fetchedAt), nil
}

func (d *stubDedup) Mark(_ context.Context, clanID int64, fetchedAt time.Time) error {
	d.marks++
	d.seen[clanID] = fetchedAt
	return nil
}
