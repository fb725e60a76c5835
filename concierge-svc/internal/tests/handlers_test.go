package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-concierge/apperr"
	httpapi "hotel-concierge/concierge-svc/internal/api/http"
	"hotel-concierge/concierge-svc/internal/domain"
	"hotel-concierge/concierge-svc/internal/mocks"
	"hotel-concierge/concierge-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiMocks struct {
	hotels  *mocks.HotelRepository
	menu    *mocks.MenuRepository
	orders  *mocks.OrderRepository
	scraper *mocks.MenuScraper
}

func newTestAPI(t *testing.T) (http.Handler, apiMocks) {
	m := apiMocks{
		hotels:  mocks.NewHotelRepository(t),
		menu:    mocks.NewMenuRepository(t),
		orders:  mocks.NewOrderRepository(t),
		scraper: mocks.NewMenuScraper(t),
	}
	logger := zap.NewNop()

	scrapes := service.NewScrapeService(m.scraper, nil, logger)
	hotels := service.NewHotelService(m.hotels, m.menu, scrapes, service.DefaultQRGenerator{Size: 128}, logger)
	orders := service.NewOrderService(m.hotels, m.menu, m.orders, nil, logger)
	voice := service.NewVoiceService(m.hotels, m.menu, orders, service.VoiceSettings{
		AgentID:         "agent_12345",
		LLMWebsocketURL: "wss://llm.example.com",
	}, logger)

	handler := httpapi.NewHandler(scrapes, hotels, orders, voice)
	return httpapi.NewRouter(handler, logger), m
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_Health(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doJSON(t, api, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "concierge-svc", decodeMap(t, rec)["service"])
}

func TestHandler_Scrape(t *testing.T) {
	const pageURL = "https://hotel.example.com/menu"

	tests := []struct {
		name       string
		body       any
		setupMocks func(*mocks.MenuScraper)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "missing url",
			body:       map[string]string{},
			setupMocks: func(s *mocks.MenuScraper) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "URL is required"},
		},
		{
			name: "demo fallback",
			body: map[string]string{"url": pageURL},
			setupMocks: func(s *mocks.MenuScraper) {
				s.On("Scrape", mock.Anything, pageURL).Return(domain.ScrapeResult{
					Success: true,
					Source:  domain.SourceDemoFallback,
					Menu:    []domain.ScrapedMenuItem{{Name: "Soup of the Day", Price: decimal.RequireFromString("8.50")}},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"success": true,
				"source":  "demo_fallback",
				"menu":    []any{map[string]any{"name": "Soup of the Day", "price": 8.5}},
			},
		},
		{
			name: "upstream failure",
			body: map[string]string{"url": pageURL},
			setupMocks: func(s *mocks.MenuScraper) {
				s.On("Scrape", mock.Anything, pageURL).
					Return(domain.ScrapeResult{}, fmt.Errorf("%w: status 403", apperr.ErrUpstreamFetch)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Failed to scrape website. Ensure the URL is publicly accessible."},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api, m := newTestAPI(t)
			testCase.setupMocks(m.scraper)

			rec := doJSON(t, api, http.MethodPost, "/api/integrations/web/scrape", testCase.body)

			assert.Equal(t, testCase.wantStatus, rec.Code)
			assert.Equal(t, testCase.wantBody, decodeMap(t, rec))
		})
	}
}

func TestHandler_VoiceWebhook(t *testing.T) {
	t.Run("unknown number", func(t *testing.T) {
		api, m := newTestAPI(t)
		m.hotels.On("HotelByPhone", mock.Anything, "+15550000000").
			Return(nil, fmt.Errorf("hotel +15550000000: %w", apperr.ErrNotFound)).Once()

		rec := doJSON(t, api, http.MethodPost, "/api/voice/webhook", domain.InboundCall{
			CallID: "call_1", FromNumber: "+15550001111", ToNumber: "+15550000000",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"error": "Hotel not found"}, decodeMap(t, rec))
	})

	t.Run("missing fields", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := doJSON(t, api, http.MethodPost, "/api/voice/webhook", map[string]string{"call_id": "call_1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("configured hotel", func(t *testing.T) {
		api, m := newTestAPI(t)
		m.hotels.On("HotelByPhone", mock.Anything, "+15125550198").Return(grandAustin(), nil).Once()
		m.menu.On("ListMenuItems", mock.Anything, testHotelID, true).Return(roomServiceMenu(), nil).Once()

		rec := doJSON(t, api, http.MethodPost, "/api/voice/webhook", domain.InboundCall{
			CallID: "call_1", FromNumber: "+15550001111", ToNumber: "+15125550198",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var cfg domain.AgentConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
		assert.Equal(t, "agent_12345", cfg.AgentID)
		assert.Equal(t, "11labs-rachel", cfg.VoiceID)
		assert.Contains(t, cfg.SystemPrompt, "Grand Austin Hotel")
		require.Len(t, cfg.Tools, 1)
		assert.Equal(t, "place_order", cfg.Tools[0].Name)
	})
}

func TestHandler_VoicePlaceOrder(t *testing.T) {
	api, m := newTestAPI(t)
	m.hotels.On("HotelByPhone", mock.Anything, "+15125550198").Return(grandAustin(), nil).Once()
	m.hotels.On("GetHotel", mock.Anything, testHotelID).Return(grandAustin(), nil).Once()
	m.menu.On("ListMenuItems", mock.Anything, testHotelID, true).Return(roomServiceMenu(), nil).Once()
	m.orders.On("CreateOrder", mock.Anything, mock.Anything, []uuid.UUID{clubID, cokeID}).Return(nil).Once()

	rec := doJSON(t, api, http.MethodPost, "/api/voice/tools/place_order", domain.ToolPlaceOrderRequest{
		CallID:     "call_9",
		ToNumber:   "+15125550198",
		RoomNumber: "304",
		Items:      []string{"Club Sandwich", "Diet Coke"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "304", body["room"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, 22.0, body["total_amount"])
}

func TestHandler_PlaceOrderUnknownItem(t *testing.T) {
	api, m := newTestAPI(t)
	m.hotels.On("GetHotel", mock.Anything, testHotelID).Return(grandAustin(), nil).Once()
	m.menu.On("ListMenuItems", mock.Anything, testHotelID, true).Return(roomServiceMenu(), nil).Once()

	rec := doJSON(t, api, http.MethodPost, "/api/hotels/"+testHotelID.String()+"/orders", domain.PlaceOrderRequest{
		RoomNumber: "304",
		Items:      []string{"Lobster"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMap(t, rec)["error"], "Lobster")
}

func TestHandler_PathAndBodyErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{name: "malformed hotel id", method: http.MethodGet, path: "/api/hotels/not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "malformed order id", method: http.MethodPatch, path: "/api/orders/42/status", body: map[string]string{"status": "completed"}, wantStatus: http.StatusBadRequest},
		{name: "bad status", method: http.MethodPatch, path: "/api/orders/" + uuid.NewString() + "/status", body: map[string]string{"status": "shipped"}, wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/nothing", wantStatus: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api, _ := newTestAPI(t)

			rec := doJSON(t, api, testCase.method, testCase.path, testCase.body)

			assert.Equal(t, testCase.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("accepted", func(t *testing.T) {
		api, m := newTestAPI(t)
		m.orders.On("UpdateOrderStatus", mock.Anything, orderID, domain.StatusProcessing).Return(nil).Once()

		rec := doJSON(t, api, http.MethodPatch, "/api/orders/"+orderID.String()+"/status", map[string]string{"status": "processing"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "processing", decodeMap(t, rec)["status"])
	})

	t.Run("unknown order", func(t *testing.T) {
		api, m := newTestAPI(t)
		m.orders.On("UpdateOrderStatus", mock.Anything, orderID, domain.StatusCompleted).
			Return(fmt.Errorf("order %s: %w", orderID, apperr.ErrNotFound)).Once()

		rec := doJSON(t, api, http.MethodPatch, "/api/orders/"+orderID.String()+"/status", map[string]string{"status": "completed"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_StoreUnavailable(t *testing.T) {
	api, m := newTestAPI(t)
	m.hotels.On("GetHotel", mock.Anything, testHotelID).Return(nil, apperr.ErrDataUnavailable).Once()

	rec := doJSON(t, api, http.MethodGet, "/api/hotels/"+testHotelID.String(), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, map[string]any{"error": "Failed to load hotel"}, decodeMap(t, rec))
}

func TestHandler_QRCode(t *testing.T) {
	api, m := newTestAPI(t)
	m.hotels.On("GetHotel", mock.Anything, testHotelID).Return(grandAustin(), nil).Once()

	rec := doJSON(t, api, http.MethodGet, "/api/hotels/"+testHotelID.String()+"/qrcode", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestHandler_ImportMenu(t *testing.T) {
	const pageURL = "https://hotel.example.com/dining"
	api, m := newTestAPI(t)
	m.hotels.On("GetHotel", mock.Anything, testHotelID).Return(grandAustin(), nil).Once()
	m.scraper.On("Scrape", mock.Anything, pageURL).Return(domain.ScrapeResult{
		Success: true,
		Source:  domain.SourceWebScrape,
		Menu: []domain.ScrapedMenuItem{
			{Name: "Caesar Salad", Price: decimal.RequireFromString("14.00")},
			{Name: "Ribeye", Price: decimal.RequireFromString("42.00")},
		},
	}, nil).Once()
	m.menu.On("CreateMenuItems", mock.Anything, mock.Anything).Return(nil).Once()

	rec := doJSON(t, api, http.MethodPost, "/api/hotels/"+testHotelID.String()+"/menu/import", map[string]string{"url": pageURL})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "web_scrape", body["source"])
	assert.Equal(t, 2.0, body["syncedCount"])
}
