package worker

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lowkey/config"
	"lowkey/internal/delivery/worker/handler"
	"lowkey/internal/domain/service"
	"lowkey/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker serves the push endpoint and returns the publisher pointed at it.
func newTestWorker(t *testing.T, minDiscount float64) (service.EventPublisher, *bytes.Buffer, *httptest.Server) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Env = config.EnvLocal
	cfg.DealAlerts = &config.DealAlertConfig{MinDiscountPercent: minDiscount}

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger})
	srv := httptest.NewServer(NewEcho(cfg, logger, pushHandler))
	t.Cleanup(srv.Close)

	return pubsub.NewLocalHTTPPublisher(srv.URL+pushPath, slog.New(slog.DiscardHandler)), &buf, srv
}

func upserted(discount float64) *service.OfferEvent {
	return &service.OfferEvent{
		EventID:         "evt-1",
		RequestID:       "req-42",
		Type:            service.OfferEventUpserted,
		ProductName:     "Refrigerator",
		SellerID:        "seller-1",
		OfferID:         "offer-1",
		Price:           "20000",
		RegularPrice:    "25000",
		DiscountPercent: discount,
		OccurredAt:      time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC),
	}
}

func TestWorker_DeepDiscountRaisesAlert(t *testing.T) {
	publisher, logs, _ := newTestWorker(t, 15)

	require.NoError(t, publisher.PublishOfferEvent(context.Background(), upserted(20)))

	out := logs.String()
	assert.Contains(t, out, "Deal alert")
	assert.Contains(t, out, `"discount_percent":20`)
	assert.Contains(t, out, `"request_id":"req-42"`)
}

func TestWorker_ShallowDiscountAndOtherEventsAreSkipped(t *testing.T) {
	publisher, logs, _ := newTestWorker(t, 15)
	ctx := context.Background()

	require.NoError(t, publisher.PublishOfferEvent(ctx, upserted(8)))

	rated := upserted(50)
	rated.Type = service.OfferEventRated
	require.NoError(t, publisher.PublishOfferEvent(ctx, rated))

	assert.NotContains(t, logs.String(), "Deal alert")
	assert.Equal(t, 2, strings.Count(logs.String(), "Offer event skipped"))
}

func TestWorker_MalformedMessages(t *testing.T) {
	_, _, srv := newTestWorker(t, 15)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "incomplete event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"type":"offer.upserted"}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+pushPath, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
