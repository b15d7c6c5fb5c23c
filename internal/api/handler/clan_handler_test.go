package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

type stubClanService struct {
	clan    *domain.Clan
	members []*domain.ClanMember
	err     error

	gotName string
	gotType domain.MembershipType
	gotOp   domain.Operation
}

func (s *stubClanService) GetClan(_ context.Context, clanID int64) (*domain.Clan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.clan, nil
}

func (s *stubClanService) GetMember(_ context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error) {
	s.gotName, s.gotType = name, t
	if s.err != nil {
		return nil, s.err
	}
	return s.members[0], nil
}

func (s *stubClanService) ListMembers(_ context.Context, clanID int64, t domain.MembershipType) (*ports.MemberList, error) {
	s.gotType = t
	if s.err != nil {
		return nil, s.err
	}
	return &ports.MemberList{Clan: s.clan, Members: s.members}, nil
}

func (s *stubClanService) RestrictedMembers(_ context.Context, clanID int64, op domain.Operation) ([]*domain.ClanMember, error) {
	s.gotOp = op
	return nil, &domain.UnsupportedOperationError{Op: op}
}

func (s *stubClanService) Moderate(_ context.Context, clanID int64, name string, t domain.MembershipType, op domain.Operation) error {
	s.gotName, s.gotType, s.gotOp = name, t, op
	return &domain.UnsupportedOperationError{Op: op}
}

func sampleClan(t *testing.T) *domain.Clan {
	t.Helper()
	features, err := domain.NewClanFeatures(domain.ClanFeaturesParams{
		MaxMembers:      100,
		MembershipTypes: []domain.MembershipType{domain.MembershipTypeSteam},
		JoinLevel:       1,
	})
	require.NoError(t, err)
	return &domain.Clan{
		ID:          998271,
		Type:        domain.GroupTypeClan,
		Name:        "Cool clan",
		MemberCount: 40,
		Banner:      "/img/banner.png",
		Features:    features,
		Owner:       &domain.ClanOwner{ID: 2938, Name: "DiggaD", Type: domain.MembershipTypeSteam, ClanID: 998271},
	}
}

func sampleMembers() []*domain.ClanMember {
	return []*domain.ClanMember{
		{ID: 4432, Name: "thom", Type: domain.MembershipTypeSteam, GroupID: 998271, LastOnline: time.Now().Add(-2 * time.Hour)},
	}
}

func newClanContext(method, target string, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestClanHandler_Get(t *testing.T) {
	h := NewClanHandler(&stubClanService{clan: sampleClan(t)})
	c, rec := newClanContext(http.MethodGet, "/v1/clans/998271", []string{"id"}, []string{"998271"})

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cool clan", resp["name"])
	assert.Equal(t, "CLAN", resp["type"])
	assert.Equal(t, "https://www.bungie.net/en/ClanV2?groupid=998271", resp["link"])
	assert.Equal(t, "https://www.bungie.net/img/banner.png", resp["banner_url"])
	assert.Nil(t, resp["description"])

	owner := resp["owner"].(map[string]any)
	assert.Equal(t, "DiggaD", owner["name"])
	assert.Equal(t, "https://www.bungie.net/7/en/User/Profile/3/2938", owner["link"])
	assert.Equal(t, "never", owner["last_seen"])

	features := resp["features"].(map[string]any)
	assert.Equal(t, []any{"STEAM"}, features["membership_types"])
}

func TestClanHandler_Get_InvalidID(t *testing.T) {
	h := NewClanHandler(&stubClanService{})
	for _, id := range []string{"abc", "0", "-3"} {
		c, _ := newClanContext(http.MethodGet, "/v1/clans/"+id, []string{"id"}, []string{id})

		err := h.Get(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, id)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestClanHandler_Get_PropagatesDomainError(t *testing.T) {
	h := NewClanHandler(&stubClanService{err: domain.ErrClanNotFound})
	c, _ := newClanContext(http.MethodGet, "/v1/clans/1", []string{"id"}, []string{"1"})

	assert.ErrorIs(t, h.Get(c), domain.ErrClanNotFound)
}

func TestClanHandler_ListMembers(t *testing.T) {
	svc := &stubClanService{clan: sampleClan(t), members: sampleMembers()}
	h := NewClanHandler(svc)
	c, rec := newClanContext(http.MethodGet, "/v1/clans/998271/members?type=steam", []string{"id"}, []string{"998271"})

	require.NoError(t, h.ListMembers(c))
	assert.Equal(t, domain.MembershipTypeSteam, svc.gotType)

	var resp memberListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.MemberCount)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "STEAM", resp.Type)
	assert.Equal(t, int64(998271), resp.Members[0].GroupID)
	assert.Equal(t, "2 hours ago", resp.Members[0].LastSeen)
}

func TestClanHandler_ListMembers_DefaultsToAllPlatforms(t *testing.T) {
	svc := &stubClanService{clan: sampleClan(t), members: sampleMembers()}
	h := NewClanHandler(svc)
	c, _ := newClanContext(http.MethodGet, "/v1/clans/998271/members", []string{"id"}, []string{"998271"})

	require.NoError(t, h.ListMembers(c))
	assert.Equal(t, domain.MembershipTypeNone, svc.gotType)
}

func TestClanHandler_ListMembers_AllType(t *testing.T) {
	for _, q := range []string{"all", "ALL", "-1"} {
		svc := &stubClanService{clan: sampleClan(t), members: sampleMembers()}
		h := NewClanHandler(svc)
		c, _ := newClanContext(http.MethodGet, "/v1/clans/998271/members?type="+q, []string{"id"}, []string{"998271"})

		require.NoError(t, h.ListMembers(c), q)
		assert.Equal(t, domain.MembershipTypeAll, svc.gotType, q)
		assert.True(t, svc.gotType.AnyPlatform(), q)
	}
}

func TestClanHandler_GetMember(t *testing.T) {
	svc := &stubClanService{members: sampleMembers()}
	h := NewClanHandler(svc)
	c, rec := newClanContext(http.MethodGet, "/v1/clans/998271/members/thom?type=3", []string{"id", "name"}, []string{"998271", "thom"})

	require.NoError(t, h.GetMember(c))
	assert.Equal(t, "thom", svc.gotName)
	assert.Equal(t, domain.MembershipTypeSteam, svc.gotType)
	assert.Contains(t, rec.Body.String(), `"link":"https://www.bungie.net/7/en/User/Profile/3/4432"`)
}

func TestClanHandler_Restricted(t *testing.T) {
	svc := &stubClanService{}
	h := NewClanHandler(svc)
	c, _ := newClanContext(http.MethodGet, "/v1/clans/998271/banned", []string{"id"}, []string{"998271"})

	err := h.Restricted(domain.OpFetchBanned)(c)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	assert.Equal(t, domain.OpFetchBanned, svc.gotOp)
}

func TestClanHandler_Moderate(t *testing.T) {
	svc := &stubClanService{}
	h := NewClanHandler(svc)
	c, _ := newClanContext(http.MethodPost, "/v1/clans/998271/members/thom/kick?type=xbox", []string{"id", "name"}, []string{"998271", "thom"})

	err := h.Moderate(domain.OpKick)(c)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	assert.Equal(t, domain.OpKick, svc.gotOp)
	assert.Equal(t, domain.MembershipTypeXbox, svc.gotType)
}
