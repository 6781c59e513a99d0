// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rewards/config"
	"rewards/internal/delivery/api/middleware"
	"rewards/internal/delivery/api/router/handler"
	"rewards/internal/domain/entity"
	"rewards/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OfferHandler   *handler.OfferHandler
	PointHandler   *handler.PointHandler
	MissionHandler *handler.MissionHandler
	AdminHandler   *handler.AdminHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	offerHandler   *handler.OfferHandler
	pointHandler   *handler.PointHandler
	missionHandler *handler.MissionHandler
	adminHandler   *handler.AdminHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		offerHandler:   params.OfferHandler,
		pointHandler:   params.PointHandler,
		missionHandler: params.MissionHandler,
		adminHandler:   params.AdminHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	// Gateway callbacks carry a shared secret instead of a user token
	e.POST("/api/v1/payments/callback", r.paymentHandler.Callback)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.POST("/claim", r.offerHandler.Claim)
		offersGroup.POST("/cancel", r.offerHandler.Cancel)
		offersGroup.POST("/redeem", r.offerHandler.Redeem)
		offersGroup.GET("/my_claimed_offers", r.offerHandler.MyClaimedOffers)
		offersGroup.GET("/claims/:id/qr", r.offerHandler.VoucherQR)
	}

	pointsGroup := apiV1.Group("/points")
	{
		pointsGroup.GET("/balance", r.pointHandler.Balance)
		pointsGroup.GET("/history", r.pointHandler.History)
		pointsGroup.GET("/components", r.pointHandler.Components)
		pointsGroup.POST("/components/combine", r.pointHandler.Combine)
	}

	missionsGroup := apiV1.Group("/missions")
	{
		missionsGroup.GET("", r.missionHandler.List)
		missionsGroup.POST("/:id/complete", r.missionHandler.Complete)
	}

	// Operator routes; merchants may void vouchers, everything else is admin only
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleMerchant))
	{
		adminGroup.POST("/vouchers/:id/void", r.adminHandler.VoidVoucher)

		adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
		adminGroup.POST("/missions/:id/rearm", r.adminHandler.RearmMission, adminOnly)
		adminGroup.POST("/points/credit", r.adminHandler.CreditPoints, adminOnly)
	}
}
