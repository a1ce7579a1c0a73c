package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"lowkey/config"
	deliverycontext "lowkey/internal/delivery/context"
	"lowkey/internal/domain/service"
	"lowkey/internal/errors"
	"lowkey/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultMinDiscountPercent = 10

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DealAlert is a sale deep enough to tell buyers about.
type DealAlert struct {
	ProductName     string
	SellerID        string
	OfferID         string
	RegularPrice    string
	SalePrice       string
	DiscountPercent float64
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler turns pushed offer events into deal alerts
type PushHandler struct {
	verify             TokenVerifier
	minDiscountPercent float64
	logger             *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// for the google provider outside local and develop environments.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config

	var verify TokenVerifier
	if cfg.PubSub != nil && cfg.PubSub.Provider == pubsub.ProviderGoogle &&
		cfg.Env.Env != config.EnvLocal && cfg.Env.Env != config.EnvDevelop {
		verify = verifyPubSubToken
	}

	minDiscount := float64(defaultMinDiscountPercent)
	if cfg.DealAlerts != nil && cfg.DealAlerts.MinDiscountPercent > 0 {
		minDiscount = cfg.DealAlerts.MinDiscountPercent
	}

	return &PushHandler{
		verify:             verify,
		minDiscountPercent: minDiscount,
		logger:             params.Logger,
	}
}

// HandlePush acknowledges every well-formed message. Malformed messages get
// 400 so Pub/Sub routes them to the dead-letter topic instead of retrying.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode offer event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if alert, ok := h.evaluate(event); ok {
		reqLogger.InfoContext(ctx, "[Worker] Deal alert",
			slog.String("product", alert.ProductName),
			slog.String("seller_id", alert.SellerID),
			slog.String("offer_id", alert.OfferID),
			slog.String("regular_price", alert.RegularPrice),
			slog.String("sale_price", alert.SalePrice),
			slog.Float64("discount_percent", alert.DiscountPercent),
		)
	} else {
		reqLogger.DebugContext(ctx, "[Worker] Offer event skipped",
			slog.String("type", event.Type),
			slog.String("product", event.ProductName),
			slog.String("seller_id", event.SellerID),
		)
	}

	return c.NoContent(http.StatusOK)
}

// evaluate reports an alert for upserts discounted by at least the threshold.
func (h *PushHandler) evaluate(event *service.OfferEvent) (DealAlert, bool) {
	if event.Type != service.OfferEventUpserted || event.DiscountPercent < h.minDiscountPercent {
		return DealAlert{}, false
	}

	return DealAlert{
		ProductName:     event.ProductName,
		SellerID:        event.SellerID,
		OfferID:         event.OfferID,
		RegularPrice:    event.RegularPrice,
		SalePrice:       event.Price,
		DiscountPercent: event.DiscountPercent,
	}, true
}

func decodeEvent(data string) (*service.OfferEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 data")
	}

	var event service.OfferEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal offer event")
	}
	if event.Type == "" || event.ProductName == "" || event.SellerID == "" {
		return nil, errors.New("offer event is missing type, product or seller")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id header, then a fresh UUID.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OfferEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken validates the Google-signed OIDC token of a push request.
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}
