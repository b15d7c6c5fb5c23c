package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// ClanHandler serves clan reads and the member moderation endpoints.
type ClanHandler struct {
	svc ports.ClanService
}

func NewClanHandler(svc ports.ClanService) *ClanHandler {
	return &ClanHandler{svc: svc}
}

// Get handles GET /v1/clans/:id.
//
// @Summary      Get a clan
// @Tags         clans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Group id"
// @Success      200  {object}  clanResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clans/{id} [get]
func (h *ClanHandler) Get(c echo.Context) error {
	clanID, err := clanIDParam(c)
	if err != nil {
		return err
	}

	clan, err := h.svc.GetClan(c.Request().Context(), clanID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClanResponse(clan))
}

// ListMembers handles GET /v1/clans/:id/members. Without ?type every platform
// is listed.
//
// @Summary      List clan members
// @Tags         clans
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true   "Group id"
// @Param        type  query     string  false  "Membership type, by name or number"
// @Success      200   {object}  memberListResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clans/{id}/members [get]
func (h *ClanHandler) ListMembers(c echo.Context) error {
	clanID, err := clanIDParam(c)
	if err != nil {
		return err
	}
	t := domain.MembershipTypeFromString(c.QueryParam("type"))

	list, err := h.svc.ListMembers(c.Request().Context(), clanID, t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberListResponse(list, t))
}

// GetMember handles GET /v1/clans/:id/members/:name.
//
// @Summary      Get a clan member by name
// @Tags         clans
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true   "Group id"
// @Param        name  path      string  true   "Display name"
// @Param        type  query     string  false  "Membership type, by name or number"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clans/{id}/members/{name} [get]
func (h *ClanHandler) GetMember(c echo.Context) error {
	clanID, err := clanIDParam(c)
	if err != nil {
		return err
	}
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "member name is required")
	}
	t := domain.MembershipTypeFromString(c.QueryParam("type"))

	m, err := h.svc.GetMember(c.Request().Context(), clanID, name, t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberResponse(m))
}

// Restricted returns the handler for the banned, pending or invited list.
// These lists need an authorized flow and answer 501.
//
// @Summary      List banned, pending or invited members
// @Tags         clans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Group id"
// @Failure      501  {object}  errorResponse
// @Router       /v1/clans/{id}/banned [get]
// @Router       /v1/clans/{id}/pending [get]
// @Router       /v1/clans/{id}/invited [get]
func (h *ClanHandler) Restricted(op domain.Operation) echo.HandlerFunc {
	return func(c echo.Context) error {
		clanID, err := clanIDParam(c)
		if err != nil {
			return err
		}

		members, err := h.svc.RestrictedMembers(c.Request().Context(), clanID, op)
		if err != nil {
			return err
		}
		out := make([]userResponse, len(members))
		for i, m := range members {
			out[i] = toMemberResponse(m)
		}
		return c.JSON(http.StatusOK, out)
	}
}

// Moderate returns the handler for ban, unban or kick.
//
// @Summary      Ban, unban or kick a member
// @Tags         clans
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true   "Group id"
// @Param        name  path      string  true   "Display name"
// @Param        type  query     string  false  "Membership type, by name or number"
// @Failure      403   {object}  errorResponse
// @Failure      501   {object}  errorResponse
// @Router       /v1/clans/{id}/members/{name}/ban [post]
// @Router       /v1/clans/{id}/members/{name}/unban [post]
// @Router       /v1/clans/{id}/members/{name}/kick [post]
func (h *ClanHandler) Moderate(op domain.Operation) echo.HandlerFunc {
	return func(c echo.Context) error {
		clanID, err := clanIDParam(c)
		if err != nil {
			return err
		}
		t := domain.MembershipTypeFromString(c.QueryParam("type"))

		if err := h.svc.Moderate(c.Request().Context(), clanID, c.Param("name"), t, op); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func clanIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid clan id")
	}
	return id, nil
}
