package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hotel-concierge/apperr"
	"hotel-concierge/feed-svc/internal/domain"
	"hotel-concierge/feed-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxRecentLimit = 100

type Handler struct {
	Feed         service.FeedView
	Orders       service.OrderReader
	DefaultLimit int
}

func NewHandler(feed service.FeedView, orders service.OrderReader, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = service.DefaultLimit
	}
	return &Handler{Feed: feed, Orders: orders, DefaultLimit: defaultLimit}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/feed", h.getFeed).Methods("GET")
	r.HandleFunc("/api/orders/recent", h.getRecentOrders).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.Feed.Status()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "feed-svc",
		"feed":      status.State,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type feedResponse struct {
	domain.FeedStatus
	Orders []domain.Order `json:"orders"`
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feedResponse{
		FeedStatus: h.Feed.Status(),
		Orders:     h.Feed.Orders(),
	})
}

func (h *Handler) getRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := h.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentLimit {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	orders, err := h.Orders.RecentOrders(r.Context(), limit)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
