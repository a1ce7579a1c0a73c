package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "lowkey/internal/delivery/context"
	"lowkey/internal/delivery/http/response"
	"lowkey/internal/domain/entity"
	"lowkey/internal/domain/service"
	"lowkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC   usecase.OfferUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// OfferHandler serves seller inventory, buyer ratings and deal share codes.
type OfferHandler struct {
	offerUC   usecase.OfferUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC:   params.OfferUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// UpsertOfferRequest represents the request body for creating or replacing an offer
type UpsertOfferRequest struct {
	ProductName  string              `json:"product_name" validate:"required,max=200"`
	Description  string              `json:"description" validate:"max=1000"`
	RegularPrice *decimal.Decimal    `json:"regular_price" validate:"required"`
	SalePrice    decimal.NullDecimal `json:"sale_price"`
	Location     entity.Coordinate   `json:"location"`
	OpenHours    entity.HourWindow   `json:"open_hours"`
	OpenDays     entity.Weekdays     `json:"open_days" validate:"required"`
}

// RateOfferRequest represents the request body for rating an offer
type RateOfferRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// GetSellerOffers lists the authenticated seller's offers
func (h *OfferHandler) GetSellerOffers(c echo.Context) error {
	sellerID, ok := deliverycontext.GetSellerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Seller missing from token")
	}

	offers, err := h.offerUC.GetSellerOffers(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers)
}

// UpsertOffer creates or replaces the authenticated seller's offer for a product
func (h *OfferHandler) UpsertOffer(c echo.Context) error {
	sellerID, ok := deliverycontext.GetSellerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Seller missing from token")
	}

	var req UpsertOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	offer, err := h.offerUC.UpsertOffer(c.Request().Context(), sellerID, &usecase.UpsertOfferInput{
		ProductName:  req.ProductName,
		Description:  req.Description,
		RegularPrice: *req.RegularPrice,
		SalePrice:    req.SalePrice,
		Location:     req.Location,
		OpenHours:    req.OpenHours,
		OpenDays:     req.OpenDays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// RemoveOffer deletes the authenticated seller's offer for a product
func (h *OfferHandler) RemoveOffer(c echo.Context) error {
	sellerID, ok := deliverycontext.GetSellerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Seller missing from token")
	}

	product, err := pathParam(c, "name")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.offerUC.RemoveOffer(c.Request().Context(), sellerID, product); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RateOffer records a buyer rating for one seller's offer
func (h *OfferHandler) RateOffer(c echo.Context) error {
	product, sellerID, err := offerPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	offer, err := h.offerUC.RateOffer(c.Request().Context(), product, sellerID, req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"product":        offer.ProductName,
		"seller_id":      offer.SellerID,
		"rating_count":   len(offer.Ratings),
		"average_rating": offer.AverageRating(),
	})
}

// ReserveDeal holds one seller's offer at its current price
func (h *OfferHandler) ReserveDeal(c echo.Context) error {
	product, sellerID, err := offerPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reservation, err := h.offerUC.ReserveDeal(c.Request().Context(), product, sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reservation)
}

// DealQRCode renders a PNG share code for one seller's offer
func (h *OfferHandler) DealQRCode(c echo.Context) error {
	product, sellerID, err := offerPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), product, sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateDealQR(offer.ProductName, offer.SellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func offerPath(c echo.Context) (string, string, error) {
	product, err := pathParam(c, "name")
	if err != nil {
		return "", "", err
	}

	sellerID, err := pathParam(c, "sellerID")
	if err != nil {
		return "", "", err
	}

	return product, sellerID, nil
}
