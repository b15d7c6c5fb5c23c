package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MembershipType is the platform a Bungie account membership lives on.
type MembershipType int

const (
	MembershipTypeAll        MembershipType = -1
	MembershipTypeNone       MembershipType = 0
	MembershipTypeXbox       MembershipType = 1
	MembershipTypePSN        MembershipType = 2
	MembershipTypeSteam      MembershipType = 3
	MembershipTypeBlizzard   MembershipType = 4
	MembershipTypeStadia     MembershipType = 5
	MembershipTypeEpicGames  MembershipType = 6
	MembershipTypeDemon      MembershipType = 10
	MembershipTypeBungieNext MembershipType = 254
)

var membershipTypeNames = map[MembershipType]string{
	MembershipTypeAll:        "ALL",
	MembershipTypeNone:       "NONE",
	MembershipTypeXbox:       "XBOX",
	MembershipTypePSN:        "PSN",
	MembershipTypeSteam:      "STEAM",
	MembershipTypeBlizzard:   "BLIZZARD",
	MembershipTypeStadia:     "STADIA",
	MembershipTypeEpicGames:  "EPIC_GAMES_STORE",
	MembershipTypeDemon:      "DEMON",
	MembershipTypeBungieNext: "BUNGIE",
}

// ParseMembershipType maps a raw API value onto the recognized set.
// Unknown values map to MembershipTypeNone.
func ParseMembershipType(v int) MembershipType {
	t := MembershipType(v)
	if _, ok := membershipTypeNames[t]; ok {
		return t
	}
	return MembershipTypeNone
}

// MembershipTypeFromString accepts a case-insensitive name ("steam") or a
// numeric string ("3"). Anything unrecognized is MembershipTypeNone.
func MembershipTypeFromString(s string) MembershipType {
	s = strings.TrimSpace(s)
	if s == "" {
		return MembershipTypeNone
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ParseMembershipType(n)
	}
	upper := strings.ToUpper(s)
	for t, name := range membershipTypeNames {
		if name == upper {
			return t
		}
	}
	switch upper {
	case "EPIC", "EPICGAMES":
		return MembershipTypeEpicGames
	case "PLAYSTATION":
		return MembershipTypePSN
	}
	return MembershipTypeNone
}

func (t MembershipType) String() string {
	if name, ok := membershipTypeNames[t]; ok {
		return name
	}
	return membershipTypeNames[MembershipTypeNone]
}

// AnyPlatform reports whether t, used as a roster filter, matches members on
// every platform. Both NONE and ALL do.
func (t MembershipType) AnyPlatform() bool {
	return t == MembershipTypeNone || t == MembershipTypeAll
}

// UnmarshalJSON normalizes unknown values to MembershipTypeNone.
func (t *MembershipType) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = ParseMembershipType(n)
	return nil
}

// MembershipTypes converts raw API values, dropping nothing: unknown values
// become MembershipTypeNone in place.
func MembershipTypes(raw []int) []MembershipType {
	out := make([]MembershipType, len(raw))
	for i, v := range raw {
		out[i] = ParseMembershipType(v)
	}
	return out
}

// GroupType distinguishes clans from general groups.
type GroupType int

const (
	GroupTypeGeneral GroupType = 0
	GroupTypeClan    GroupType = 1
)

func (g GroupType) String() string {
	if g == GroupTypeClan {
		return "CLAN"
	}
	return "GENERAL"
}
