package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-concierge/api-gateway/internal/gateway"
	"hotel-concierge/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	ConciergeSvcURL: "http://concierge-svc",
	FeedSvcURL:      "http://feed-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Target(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, nil)

	tests := []struct {
		path string
		want string
	}{
		{path: "/api/feed", want: "http://feed-svc"},
		{path: "/api/orders/recent", want: "http://feed-svc"},
		{path: "/api/orders/8c9f/status", want: "http://concierge-svc"},
		{path: "/api/voice/webhook", want: "http://concierge-svc"},
		{path: "/api/integrations/web/scrape", want: "http://concierge-svc"},
		{path: "/api/hotels/1/menu", want: "http://concierge-svc"},
		{path: "/dashboard", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.want, gw.Target(testCase.path))
		})
	}
}

func TestGateway_ProxiesWithQuery(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://feed-svc/api/orders/recent?limit=5" && req.Method == http.MethodGet
	})).Return(okResponse(`[{"room":"304"}]`), nil).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders/recent?limit=5", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "304")
}

func TestGateway_ForwardsBodyAndStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.URL.String() == "http://concierge-svc/api/voice/webhook" &&
			strings.Contains(string(body), "+15550000000")
	})).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(`{"error":"Hotel not found"}`)),
		Header:     make(http.Header),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/voice/webhook",
		strings.NewReader(`{"call_id":"c1","from_number":"+1","to_number":"+15550000000"}`))
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Hotel not found"}`, rr.Body.String())
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, nil)

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"error":"Upstream service unavailable"}`, rr.Body.String())
}
