package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"
	"hotel-concierge/concierge-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Scrapes service.ScrapeServiceInterface
	Hotels  service.HotelServiceInterface
	Orders  service.OrderServiceInterface
	Voice   service.VoiceServiceInterface
}

func NewHandler(scrapes service.ScrapeServiceInterface, hotels service.HotelServiceInterface, orders service.OrderServiceInterface, voice service.VoiceServiceInterface) *Handler {
	return &Handler{
		Scrapes: scrapes,
		Hotels:  hotels,
		Orders:  orders,
		Voice:   voice,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/integrations/web/scrape", h.scrape).Methods("POST")

	r.HandleFunc("/api/hotels", h.createHotel).Methods("POST")
	r.HandleFunc("/api/hotels/{id}", h.getHotel).Methods("GET")
	r.HandleFunc("/api/hotels/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/hotels/{id}/menu", h.addMenuItems).Methods("POST")
	r.HandleFunc("/api/hotels/{id}/menu/import", h.importMenu).Methods("POST")
	r.HandleFunc("/api/hotels/{id}/qrcode", h.getHotelQRCode).Methods("GET")
	r.HandleFunc("/api/hotels/{id}/orders", h.placeOrder).Methods("POST")

	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	r.HandleFunc("/api/voice/webhook", h.voiceWebhook).Methods("POST")
	r.HandleFunc("/api/voice/tools/place_order", h.voicePlaceOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "concierge-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) scrape(w http.ResponseWriter, r *http.Request) {
	var req domain.ScrapeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "URL is required"})
		return
	}

	result, err := h.Scrapes.Scrape(r.Context(), req.URL)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to scrape website. Ensure the URL is publicly accessible.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) createHotel(w http.ResponseWriter, r *http.Request) {
	var hotel domain.Hotel
	if !decodeBody(w, r, &hotel) {
		return
	}
	if err := h.Hotels.Create(r.Context(), &hotel); err != nil {
		apperr.WriteJSON(w, err, "Failed to create hotel")
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handler) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to load hotel")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.Hotels.ListMenu(r.Context(), id)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to load menu")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addMenuItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var items []domain.MenuItem
	if !decodeBody(w, r, &items) {
		return
	}
	created, err := h.Hotels.AddMenuItems(r.Context(), id, items)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to save menu items")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req domain.ScrapeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	items, source, err := h.Hotels.ImportMenu(r.Context(), id, req.URL)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to import menu")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"source":      source,
		"syncedCount": len(items),
		"menu":        items,
	})
}

func (h *Handler) getHotelQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	png, err := h.Hotels.QRCode(r.Context(), id)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req domain.PlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.Orders.Place(r.Context(), id, req)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to place order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req domain.StatusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		apperr.WriteJSON(w, err, "Failed to update order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": req.Status})
}

func (h *Handler) voiceWebhook(w http.ResponseWriter, r *http.Request) {
	var call domain.InboundCall
	if !decodeBody(w, r, &call) {
		return
	}
	cfg, err := h.Voice.AgentConfig(r.Context(), call)
	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Hotel not found"})
			return
		}
		apperr.WriteJSON(w, err, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) voicePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.ToolPlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.Voice.PlaceOrder(r.Context(), req)
	if err != nil {
		apperr.WriteJSON(w, err, "Failed to place order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		apperr.WriteJSON(w, fmt.Errorf("invalid JSON body: %w", apperr.ErrInput), "")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[key])
	if err != nil {
		apperr.WriteJSON(w, fmt.Errorf("invalid %s: %w", key, apperr.ErrInput), "")
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
