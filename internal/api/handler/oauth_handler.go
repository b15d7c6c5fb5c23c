package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clanops/clan-gateway/pkg/bungieurl"
)

// OAuthHandler hands out bungie.net authorization URLs. Completing the flow
// is left to the caller.
type OAuthHandler struct {
	clientID string
	newState func() string
}

func NewOAuthHandler(clientID string) *OAuthHandler {
	return &OAuthHandler{clientID: clientID, newState: bungieurl.NewState}
}

type authorizeResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// Authorize handles GET /v1/oauth/authorize.
//
// @Summary      Build a bungie.net authorization URL
// @Tags         oauth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authorizeResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/oauth/authorize [get]
func (h *OAuthHandler) Authorize(c echo.Context) error {
	if h.clientID == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "oauth client is not configured")
	}

	state := h.newState()
	return c.JSON(http.StatusOK, authorizeResponse{
		URL:   bungieurl.AuthorizeURL(h.clientID, state),
		State: state,
	})
}
