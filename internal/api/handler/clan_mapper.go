package handler

import (
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// --- Domain → Response ---

func toClanResponse(c *domain.Clan) clanResponse {
	f := c.Features
	resp := clanResponse{
		ID:          c.ID,
		Type:        c.Type.String(),
		Name:        c.Name,
		CreatedAt:   c.CreatedAt,
		MemberCount: c.MemberCount,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		BannerURL:   c.Banner.URL(),
		AvatarURL:   c.Avatar.URL(),
		About:       c.About,
		Tags:        c.Tags,
		Link:        c.Link(),
		Features: featuresResponse{
			MaxMembers:               f.MaxMembers(),
			MaxMembershipTypes:       f.MaxMembershipTypes(),
			Capabilities:             f.Capabilities(),
			MembershipTypes:          typeNames(f.MembershipTypes()),
			InvitePermissions:        f.InvitePermissions(),
			UpdateBannerPermissions:  f.UpdateBannerPermissions(),
			UpdateCulturePermissions: f.UpdateCulturePermissions(),
			JoinLevel:                f.JoinLevel(),
		},
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if c.Owner != nil {
		owner := toOwnerResponse(c.Owner)
		resp.Owner = &owner
	}
	return resp
}

func toMemberResponse(m *domain.ClanMember) userResponse {
	r := userFields(m, m.Types, m.JoinedAt, m.LastOnline, m.Code, m.IsPublic)
	r.GroupID = m.GroupID
	return r
}

func toOwnerResponse(o *domain.ClanOwner) userResponse {
	r := userFields(o, o.Types, o.JoinedAt, o.LastOnline, o.Code, o.IsPublic)
	r.ClanID = o.ClanID
	return r
}

func toMemberListResponse(list *ports.MemberList, t domain.MembershipType) memberListResponse {
	members := make([]userResponse, len(list.Members))
	for i, m := range list.Members {
		members[i] = toMemberResponse(m)
	}
	return memberListResponse{
		ClanID:      list.Clan.ID,
		MemberCount: list.Clan.MemberCount,
		Type:        t.String(),
		Count:       len(members),
		Members:     members,
	}
}

func userFields(u domain.UserLike, types []domain.MembershipType, joined, last time.Time, code int, public bool) userResponse {
	id := u.Identity()
	return userResponse{
		ID:         id.ID,
		Name:       u.String(),
		Type:       id.Type.String(),
		Types:      typeNames(types),
		IconURL:    u.IconURL(),
		IsPublic:   public,
		IsOnline:   u.Online(),
		JoinedAt:   joined,
		LastOnline: last,
		LastSeen:   u.HumanTimedelta(),
		Code:       code,
		Link:       u.Link(),
	}
}

func typeNames(ts []domain.MembershipType) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}
