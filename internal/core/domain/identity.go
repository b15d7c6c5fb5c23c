package domain

import "github.com/clanops/clan-gateway/pkg/bungieurl"

// Identity is a membership id tagged with its platform.
type Identity struct {
	ID   int64
	Type MembershipType
}

// Link is the public profile URL for the identity.
func (i Identity) Link() string {
	return bungieurl.ProfileLink(int(i.Type), i.ID)
}

// Image is an image path as returned by the API.
type Image string

// URL resolves the path to an absolute bungie.net URL.
func (i Image) URL() string {
	return bungieurl.ImageURL(string(i))
}
