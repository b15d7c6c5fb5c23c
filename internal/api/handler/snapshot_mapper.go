package handler

import "github.com/clanops/clan-gateway/internal/core/ports"

// --- Request → Service input ---

func toSnapshotInput(clanID int64, req rosterSnapshotRequest) ports.RosterSnapshotInput {
	members := make([]ports.UserInput, len(req.Members))
	for i, m := range req.Members {
		members[i] = toUserInput(m)
	}
	return ports.RosterSnapshotInput{
		ClanID:      clanID,
		FetchedAt:   req.FetchedAt,
		Name:        req.Name,
		GroupType:   req.GroupType,
		CreatedAt:   req.CreatedAt,
		MemberCount: req.MemberCount,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Banner:      req.Banner,
		Avatar:      req.Avatar,
		About:       req.About,
		Tags:        req.Tags,
		Owner:       toUserInput(req.Owner),
		Features: ports.FeaturesInput{
			MaxMembers:               req.Features.MaxMembers,
			MaxMembershipTypes:       req.Features.MaxMembershipTypes,
			Capabilities:             req.Features.Capabilities,
			MembershipTypes:          req.Features.MembershipTypes,
			InvitePermissions:        req.Features.InvitePermissions,
			UpdateBannerPermissions:  req.Features.UpdateBannerPermissions,
			UpdateCulturePermissions: req.Features.UpdateCulturePermissions,
			JoinLevel:                req.Features.JoinLevel,
		},
		Members: members,
	}
}

func toUserInput(u userRequest) ports.UserInput {
	return ports.UserInput{
		ID:         u.ID,
		Name:       u.Name,
		Type:       u.Type,
		Types:      u.Types,
		Icon:       u.Icon,
		IsPublic:   u.IsPublic,
		IsOnline:   u.IsOnline,
		JoinedAt:   u.JoinedAt,
		LastOnline: u.LastOnline,
		Code:       u.Code,
	}
}
