package service

import (
	"context"

	"hotel-concierge/concierge-svc/internal/domain"

	"go.uber.org/zap"
)

type VoiceSettings struct {
	AgentID         string
	LLMWebsocketURL string
}

type VoiceService struct {
	hotels   HotelRepository
	menu     MenuRepository
	orders   OrderServiceInterface
	settings VoiceSettings
	logger   *zap.Logger
}

func NewVoiceService(hotels HotelRepository, menu MenuRepository, orders OrderServiceInterface, settings VoiceSettings, logger *zap.Logger) *VoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VoiceService{hotels: hotels, menu: menu, orders: orders, settings: settings, logger: logger}
}

// AgentConfig answers an inbound call. A number no hotel owns is a not-found
// outcome and no prompt is rendered.
func (s *VoiceService) AgentConfig(ctx context.Context, call domain.InboundCall) (*domain.AgentConfig, error) {
	if err := validateInput(call); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.HotelByPhone(ctx, call.ToNumber)
	if err != nil {
		s.logger.Warn("inbound call for unknown number",
			zap.String("call_id", call.CallID),
			zap.String("to_number", call.ToNumber),
			zap.Error(err))
		return nil, err
	}

	menu, err := s.menu.ListMenuItems(ctx, hotel.ID, true)
	if err != nil {
		return nil, err
	}

	prompt, err := RenderPrompt(*hotel, menu)
	if err != nil {
		return nil, err
	}

	s.logger.Info("agent configured for call",
		zap.String("call_id", call.CallID),
		zap.String("hotel_id", hotel.ID.String()),
		zap.Int("menu_items", len(menu)))

	return &domain.AgentConfig{
		AgentID:         s.settings.AgentID,
		LLMWebsocketURL: s.settings.LLMWebsocketURL,
		VoiceID:         hotel.VoiceID,
		SystemPrompt:    prompt,
		Tools:           []domain.Tool{domain.PlaceOrderTool()},
	}, nil
}

func (s *VoiceService) PlaceOrder(ctx context.Context, req domain.ToolPlaceOrderRequest) (*domain.Order, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.HotelByPhone(ctx, req.ToNumber)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Place(ctx, hotel.ID, domain.PlaceOrderRequest{
		RoomNumber: req.RoomNumber,
		Items:      req.Items,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("order placed by voice agent", zap.String("call_id", req.CallID), zap.String("order_id", order.ID.String()))
	return order, nil
}
