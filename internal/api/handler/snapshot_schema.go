package handler

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/clanops/clan-gateway/internal/core/ports"
)

type userRequest struct {
	ID         int64     `json:"id"          validate:"gt=0"`
	Name       string    `json:"name"        validate:"required"`
	Type       int       `json:"type"`
	Types      []int     `json:"types"`
	Icon       string    `json:"icon"`
	IsPublic   bool      `json:"is_public"`
	IsOnline   bool      `json:"is_online"`
	JoinedAt   time.Time `json:"joined_at"`
	LastOnline time.Time `json:"last_online"`
	Code       int       `json:"code"`
}

type featuresRequest struct {
	MaxMembers               int   `json:"max_members"                validate:"gte=0"`
	MaxMembershipTypes       int   `json:"max_membership_types"       validate:"gte=0"`
	Capabilities             int   `json:"capabilities"               validate:"gte=0"`
	MembershipTypes          []int `json:"membership_types"`
	InvitePermissions        bool  `json:"invite_permissions"`
	UpdateBannerPermissions  bool  `json:"update_banner_permissions"`
	UpdateCulturePermissions bool  `json:"update_culture_permissions"`
	JoinLevel                int   `json:"join_level"                 validate:"gte=1"`
}

type rosterSnapshotRequest struct {
	FetchedAt   time.Time       `json:"fetched_at"   validate:"required"`
	Name        string          `json:"name"         validate:"required"`
	GroupType   int             `json:"group_type"   validate:"oneof=0 1"`
	CreatedAt   time.Time       `json:"created_at"`
	MemberCount int             `json:"member_count" validate:"gte=0"`
	Description *string         `json:"description"`
	IsPublic    bool            `json:"is_public"`
	Banner      string          `json:"banner"`
	Avatar      string          `json:"avatar"`
	About       string          `json:"about"`
	Tags        []string        `json:"tags"`
	Owner       userRequest     `json:"owner"`
	Features    featuresRequest `json:"features"`
	Members     []userRequest   `json:"members"      validate:"dive"`
}

// uniqueRosterMembers reports a roster member whose (type, id) repeats an
// earlier one.
func uniqueRosterMembers(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(rosterSnapshotRequest)
	if !ok {
		return
	}
	members := make([]ports.UserInput, len(req.Members))
	for i, m := range req.Members {
		members[i] = toUserInput(m)
	}
	if i, dup := ports.DuplicateMember(members); dup {
		name := fmt.Sprintf("members[%d]", i)
		sl.ReportError(req.Members[i], name, name, "unique_member", "")
	}
}
