package handler

import (
	"log/slog"
	"net/http"

	"lowkey/internal/delivery/http/response"
	"lowkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DealHandlerParams holds dependencies for DealHandler, injected by Fx.
type DealHandlerParams struct {
	fx.In

	DealUC usecase.DealUsecase
	Logger *slog.Logger
}

// DealHandler serves buyer-facing catalog queries.
type DealHandler struct {
	dealUC usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler
func NewDealHandler(params DealHandlerParams) *DealHandler {
	return &DealHandler{
		dealUC: params.DealUC,
		logger: params.Logger,
	}
}

// SearchDealsQuery is the query string of a deal search.
type SearchDealsQuery struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
	OpenOnly  bool    `json:"open_only"`
	Limit     int     `json:"limit" validate:"gte=0,lte=100"`
}

// SuggestQuery is the query string of a suggestion lookup.
type SuggestQuery struct {
	Query string `json:"q" validate:"required,max=200"`
}

// ListProducts returns a browse summary for every product.
func (h *DealHandler) ListProducts(c echo.Context) error {
	summaries, err := h.dealUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// CatalogStats returns catalog-wide counts for the home page.
func (h *DealHandler) CatalogStats(c echo.Context) error {
	stats, err := h.dealUC.GetCatalogStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// SuggestProducts returns product names close to the query.
func (h *DealHandler) SuggestProducts(c echo.Context) error {
	var query SuggestQuery
	if err := echo.QueryParamsBinder(c).String("q", &query.Query).BindError(); err != nil {
		return bindingError(c, err)
	}
	if err := c.Validate(&query); err != nil {
		return validationError(c, err)
	}

	suggestions, err := h.dealUC.SuggestProducts(c.Request().Context(), query.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"query":       query.Query,
		"suggestions": suggestions,
	})
}

// SearchDeals ranks a product's offers for the buyer's location.
func (h *DealHandler) SearchDeals(c echo.Context) error {
	product, err := pathParam(c, "name")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query SearchDealsQuery
	err = echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lng", &query.Longitude).
		Bool("open_only", &query.OpenOnly).
		Int("limit", &query.Limit).
		BindError()
	if err != nil {
		return bindingError(c, err)
	}
	if err := c.Validate(&query); err != nil {
		return validationError(c, err)
	}

	result, err := h.dealUC.SearchDeals(c.Request().Context(), &usecase.SearchDealsInput{
		Product:   product,
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		OpenOnly:  query.OpenOnly,
		Limit:     query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
