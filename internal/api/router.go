package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clanops/clan-gateway/docs"
	"github.com/clanops/clan-gateway/internal/api/handler"
	"github.com/clanops/clan-gateway/internal/api/middleware"
	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	ClanService    ports.ClanService
	AuthService    ports.AuthService
	Dispatcher     handler.SnapshotDispatcher
	HealthChecks   map[string]handler.Pinger
	JWTSecret      string
	BungieClientID string
	Logger         zerolog.Logger
	// Registerer receives the HTTP metrics. Nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clan_gateway_http",
		Registerer: reg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	clanHandler := handler.NewClanHandler(d.ClanService)
	snapshotHandler := handler.NewSnapshotHandler(d.Dispatcher, d.Logger)
	oauthHandler := handler.NewOAuthHandler(d.BungieClientID)
	healthHandler := handler.NewHealthHandler(d.HealthChecks)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(d.JWTSecret))
	readers := middleware.RBAC(domain.RoleAdmin, domain.RoleReader)
	admins := middleware.RBAC(domain.RoleAdmin)

	v1.GET("/oauth/authorize", oauthHandler.Authorize, readers)

	clans := v1.Group("/clans/:id")
	clans.GET("", clanHandler.Get, readers)
	clans.GET("/members", clanHandler.ListMembers, readers)
	clans.GET("/members/:name", clanHandler.GetMember, readers)
	clans.GET("/banned", clanHandler.Restricted(domain.OpFetchBanned), readers)
	clans.GET("/pending", clanHandler.Restricted(domain.OpFetchPending), readers)
	clans.GET("/invited", clanHandler.Restricted(domain.OpFetchInvited), readers)

	clans.POST("/members/:name/ban", clanHandler.Moderate(domain.OpBan), admins)
	clans.POST("/members/:name/unban", clanHandler.Moderate(domain.OpUnban), admins)
	clans.POST("/members/:name/kick", clanHandler.Moderate(domain.OpKick), admins)
	clans.POST("/snapshot", snapshotHandler.Submit, admins)

	return e
}
