package domain

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Capability is a bit in ClanFeatures.Capabilities.
type Capability int

const (
	CapabilityNone                  Capability = 0
	CapabilityLeaderboards          Capability = 1
	CapabilityCallsign              Capability = 2
	CapabilityOptionalConversations Capability = 4
	CapabilityClanBanner            Capability = 8
	CapabilityD2InvestmentData      Capability = 16
	CapabilityTags                  Capability = 32
	CapabilityAlliances             Capability = 64
)

var featuresValidate = validator.New()

// ClanFeaturesParams carries the raw values NewClanFeatures is built from.
type ClanFeaturesParams struct {
	MaxMembers               int `validate:"gte=0"`
	MaxMembershipTypes       int `validate:"gte=0"`
	Capabilities             int `validate:"gte=0"`
	MembershipTypes          []MembershipType
	InvitePermissions        bool
	UpdateBannerPermissions  bool
	UpdateCulturePermissions bool
	JoinLevel                int `validate:"gte=1"`
}

// ClanFeatures describes what a clan supports. It is immutable: the only way
// to get one is NewClanFeatures, and accessors hand out copies.
type ClanFeatures struct {
	maxMembers               int
	maxMembershipTypes       int
	capabilities             int
	membershipTypes          []MembershipType
	invitePermissions        bool
	updateBannerPermissions  bool
	updateCulturePermissions bool
	joinLevel                int
}

// NewClanFeatures validates p and returns the descriptor.
func NewClanFeatures(p ClanFeaturesParams) (ClanFeatures, error) {
	if err := featuresValidate.Struct(p); err != nil {
		return ClanFeatures{}, fmt.Errorf("%w: %v", ErrInvalidFeatures, err)
	}
	return ClanFeatures{
		maxMembers:               p.MaxMembers,
		maxMembershipTypes:       p.MaxMembershipTypes,
		capabilities:             p.Capabilities,
		membershipTypes:          slices.Clone(p.MembershipTypes),
		invitePermissions:        p.InvitePermissions,
		updateBannerPermissions:  p.UpdateBannerPermissions,
		updateCulturePermissions: p.UpdateCulturePermissions,
		joinLevel:                p.JoinLevel,
	}, nil
}

func (f ClanFeatures) MaxMembers() int { return f.maxMembers }
func (f ClanFeatures) MaxMembershipTypes() int { return f.maxMembershipTypes }
func (f ClanFeatures) Capabilities() int { return f.capabilities }
func (f ClanFeatures) InvitePermissions() bool { return f.invitePermissions }
func (f ClanFeatures) UpdateBannerPermissions() bool { return f.updateBannerPermissions }
func (f ClanFeatures) UpdateCulturePermissions() bool { return f.updateCulturePermissions }
func (f ClanFeatures) JoinLevel() int { return f.joinLevel }

// MembershipTypes returns a copy of the platforms the clan accepts, in order.
func (f ClanFeatures) MembershipTypes() []MembershipType {
	return slices.Clone(f.membershipTypes)
}

// HasCapability reports whether the capability bit is set.
func (f ClanFeatures) HasCapability(c Capability) bool {
	if c == CapabilityNone {
		return f.capabilities == 0
	}
	return f.capabilities&int(c) == int(c)
}

// SupportsMembershipType reports whether members from t may join.
func (f ClanFeatures) SupportsMembershipType(t MembershipType) bool {
	return slices.Contains(f.membershipTypes, t)
}

// Params returns the values the descriptor was built from.
func (f ClanFeatures) Params() ClanFeaturesParams {
	return ClanFeaturesParams{
		MaxMembers:               f.maxMembers,
		MaxMembershipTypes:       f.maxMembershipTypes,
		Capabilities:             f.capabilities,
		MembershipTypes:          f.MembershipTypes(),
		InvitePermissions:        f.invitePermissions,
		UpdateBannerPermissions:  f.updateBannerPermissions,
		UpdateCulturePermissions: f.updateCulturePermissions,
		JoinLevel:                f.joinLevel,
	}
}
