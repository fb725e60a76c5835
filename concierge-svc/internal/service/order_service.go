package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService struct {
	hotels    HotelRepository
	menu      MenuRepository
	orders    OrderRepository
	publisher OrderPublisher
	logger    *zap.Logger
}

// NewOrderService accepts a nil publisher; order events are then not published.
func NewOrderService(hotels HotelRepository, menu MenuRepository, orders OrderRepository, publisher OrderPublisher, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{hotels: hotels, menu: menu, orders: orders, publisher: publisher, logger: logger}
}

// Place resolves the requested names against the hotel's available menu,
// case-insensitively, and stores a pending order.
func (s *OrderService) Place(ctx context.Context, hotelID uuid.UUID, req domain.PlaceOrderRequest) (*domain.Order, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	available, err := s.menu.ListMenuItems(ctx, hotelID, true)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          uuid.New(),
		HotelID:     hotelID,
		Room:        strings.TrimSpace(req.RoomNumber),
		Status:      domain.StatusPending,
		TotalAmount: decimal.Zero,
	}
	itemIDs := make([]uuid.UUID, 0, len(req.Items))
	for _, name := range req.Items {
		item, ok := findMenuItem(available, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not on the menu", apperr.ErrInput, name)
		}
		order.Items = append(order.Items, item.Name)
		order.TotalAmount = order.TotalAmount.Add(item.Price)
		itemIDs = append(itemIDs, item.ID)
	}

	if err := s.orders.CreateOrder(ctx, order, itemIDs); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.OrderCreatedEvent{
			Type:      domain.OrderCreatedType,
			HotelID:   hotelID,
			Order:     *order,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Error("publish order event failed", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("room", order.Room),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.TotalAmount.StringFixed(2)))
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrInput, status)
	}
	return s.orders.UpdateOrderStatus(ctx, orderID, status)
}

func findMenuItem(items []domain.MenuItem, name string) (domain.MenuItem, bool) {
	name = strings.TrimSpace(name)
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}
