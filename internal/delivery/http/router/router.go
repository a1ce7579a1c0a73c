// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lowkey/internal/delivery/http/middleware"
	"lowkey/internal/delivery/http/router/handler"
	"lowkey/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DealHandler    *handler.DealHandler
	OfferHandler   *handler.OfferHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dealHandler    *handler.DealHandler
	offerHandler   *handler.OfferHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dealHandler:    params.DealHandler,
		offerHandler:   params.OfferHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Buyer routes are public
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.dealHandler.ListProducts)
		productsGroup.GET("/suggest", r.dealHandler.SuggestProducts)
		productsGroup.GET("/stats", r.dealHandler.CatalogStats)
		productsGroup.GET("/:name/deals", r.dealHandler.SearchDeals)
		productsGroup.GET("/:name/offers/:sellerID/qrcode", r.offerHandler.DealQRCode)
		productsGroup.POST("/:name/offers/:sellerID/ratings", r.offerHandler.RateOffer)
		productsGroup.POST("/:name/offers/:sellerID/reservations", r.offerHandler.ReserveDeal)
	}

	// Seller inventory requires a seller token
	sellerGroup := apiV1.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller))
	{
		sellerGroup.GET("/offers", r.offerHandler.GetSellerOffers)
		sellerGroup.PUT("/offers", r.offerHandler.UpsertOffer)
		sellerGroup.DELETE("/offers/:name", r.offerHandler.RemoveOffer)
	}
}
