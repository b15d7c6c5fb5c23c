package handler

import "time"

// --- Response types ---

type userResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Types      []string  `json:"types"`
	IconURL    string    `json:"icon_url,omitempty"`
	IsPublic   bool      `json:"is_public"`
	IsOnline   bool      `json:"is_online"`
	JoinedAt   time.Time `json:"joined_at"`
	LastOnline time.Time `json:"last_online"`
	LastSeen   string    `json:"last_seen"`
	Code       int       `json:"code,omitempty"`
	Link       string    `json:"link"`
	GroupID    int64     `json:"group_id,omitempty"`
	ClanID     int64     `json:"clan_id,omitempty"`
}

type featuresResponse struct {
	MaxMembers               int      `json:"max_members"`
	MaxMembershipTypes       int      `json:"max_membership_types"`
	Capabilities             int      `json:"capabilities"`
	MembershipTypes          []string `json:"membership_types"`
	InvitePermissions        bool     `json:"invite_permissions"`
	UpdateBannerPermissions  bool     `json:"update_banner_permissions"`
	UpdateCulturePermissions bool     `json:"update_culture_permissions"`
	JoinLevel                int      `json:"join_level"`
}

type clanResponse struct {
	ID          int64            `json:"id"`
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	CreatedAt   time.Time        `json:"created_at"`
	MemberCount int              `json:"member_count"`
	Description *string          `json:"description"`
	IsPublic    bool             `json:"is_public"`
	BannerURL   string           `json:"banner_url,omitempty"`
	AvatarURL   string           `json:"avatar_url,omitempty"`
	About       string           `json:"about,omitempty"`
	Tags        []string         `json:"tags"`
	Link        string           `json:"link"`
	Owner       *userResponse    `json:"owner,omitempty"`
	Features    featuresResponse `json:"features"`
}

type memberListResponse struct {
	ClanID      int64          `json:"clan_id"`
	MemberCount int            `json:"member_count"`
	Type        string         `json:"type"`
	Count       int            `json:"count"`
	Members     []userResponse `json:"members"`
}
