package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/config"
	"photo-market-backend/internal/handlers"
	"photo-market-backend/internal/middleware"
	"photo-market-backend/internal/payments"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/testutil"
	"photo-market-backend/internal/watermark"
)

const (
	jwtSecret      = "test-secret-key-for-jwt-signing-must-be-long-enough"
	paymentsSecret = "whsec_payments_test"
	connectSecret  = "whsec_connect_test"
)

type testServer struct {
	router  *gin.Engine
	store   *testutil.FakeStore
	proc    *testutil.FakeProcessor
	storage *testutil.FakeStorage
	feed    *testutil.FakeFeed
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := testutil.NewFakeStore()
	proc := &testutil.FakeProcessor{}
	storage := testutil.NewFakeStorage()
	feed := &testutil.FakeFeed{}
	logger := zerolog.Nop()

	connect := services.NewConnectService(store, proc, services.ConnectConfig{
		Country:     "BR",
		AppURL:      "https://app.example",
		AppDeepLink: "clackbum://",
	}, logger)
	checkout := services.NewCheckoutService(store, proc, services.CheckoutConfig{
		Currency: "brl",
		AppURL:   "https://app.example",
		Pricing:  payments.NewPricing(15),
	}, logger)
	settlement := services.NewSettlementService(store, logger)

	h := &handlers.Handlers{
		Connect:  handlers.NewConnectHandler(connect),
		Checkout: handlers.NewCheckoutHandler(checkout),
		Payouts:  handlers.NewPayoutHandler(services.NewPayoutService(store, proc, "brl", logger)),
		Photos: handlers.NewPhotosHandler(
			services.NewFeedService(feed, storage, logger),
			services.NewDownloadService(store, storage, 5*time.Minute, logger),
			services.NewPreviewService(store, storage, watermark.Options{MaxWidth: 1200, Text: "CLACKBUM"}, logger),
		),
		Webhooks: handlers.NewWebhookHandler(
			payments.NewWebhookVerifier(paymentsSecret),
			payments.NewWebhookVerifier(connectSecret),
			settlement.HandleEvent,
			connect.HandleAccountUpdated,
			logger,
		),
	}

	router := gin.New()
	h.Register(router, middleware.AuthMiddleware(&config.Config{SupabaseJWTSecret: jwtSecret}))

	return &testServer{router: router, store: store, proc: proc, storage: storage, feed: feed}
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func (s *testServer) do(t *testing.T, method, path string, userID *uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("Authorization", bearer(t, *userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) webhook(t *testing.T, path string, payload []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(payments.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
