// Package bungieurl holds the bungie.net endpoints and the link/URL builders
// derived from them.
package bungieurl

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// Base is the bungie.net root.
	Base = "https://www.bungie.net"
	// RestEP is the REST API path prefix.
	RestEP = "/Platform"
	// OAuthEP is the OAuth2 authorize endpoint.
	OAuthEP = Base + "/en/OAuth/Authorize"
	// TokenEP is the OAuth2 token path, relative to Base.
	TokenEP = "/App/OAuth/token"

	profileTemplate = Base + "/7/en/User/Profile/%d/%d"
	clanTemplate    = Base + "/en/ClanV2?groupid=%d"
)

// ProfileLink formats the public profile URL for a membership.
// Any membership type value is accepted, including 0 (none).
func ProfileLink(membershipType int, id int64) string {
	return fmt.Sprintf(profileTemplate, membershipType, id)
}

// ClanLink formats the clan page URL.
func ClanLink(groupID int64) string {
	return fmt.Sprintf(clanTemplate, groupID)
}

// ImageURL resolves an image path returned by the API against Base.
// An empty path yields an empty string.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return Base + path
}

// OAuthConfig returns the oauth2 configuration for a registered application.
func OAuthConfig(clientID string) *oauth2.Config {
	return &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:  OAuthEP,
			TokenURL: Base + RestEP + TokenEP,
		},
	}
}

// AuthorizeURL builds the authorize URL the user is redirected to:
//
//	https://www.bungie.net/en/OAuth/Authorize?client_id=<id>&response_type=code&state=<state>
func AuthorizeURL(clientID, state string) string {
	return OAuthConfig(clientID).AuthCodeURL(state)
}

// NewState returns a fresh random value for the OAuth2 state parameter.
func NewState() string {
	return uuid.NewString()
}
