package service

import (
	"context"

	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/google/uuid"
)

type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel *domain.Hotel) error
	GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	HotelByPhone(ctx context.Context, phone string) (*domain.Hotel, error)
}

type MenuRepository interface {
	CreateMenuItems(ctx context.Context, items []domain.MenuItem) error
	ListMenuItems(ctx context.Context, hotelID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order, menuItemIDs []uuid.UUID) error
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}

type ScrapeCache interface {
	Get(ctx context.Context, url string) (*domain.ScrapeResult, bool, error)
	Set(ctx context.Context, url string, result domain.ScrapeResult) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
}

type MenuScraper interface {
	Scrape(ctx context.Context, url string) (domain.ScrapeResult, error)
}

type ScrapeServiceInterface interface {
	Scrape(ctx context.Context, url string) (domain.ScrapeResult, error)
}

type HotelServiceInterface interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	ListMenu(ctx context.Context, hotelID uuid.UUID) ([]domain.MenuItem, error)
	AddMenuItems(ctx context.Context, hotelID uuid.UUID, items []domain.MenuItem) ([]domain.MenuItem, error)
	ImportMenu(ctx context.Context, hotelID uuid.UUID, url string) ([]domain.MenuItem, domain.ScrapeSource, error)
	QRCode(ctx context.Context, hotelID uuid.UUID) ([]byte, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, hotelID uuid.UUID, req domain.PlaceOrderRequest) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}

type VoiceServiceInterface interface {
	AgentConfig(ctx context.Context, call domain.InboundCall) (*domain.AgentConfig, error)
	PlaceOrder(ctx context.Context, req domain.ToolPlaceOrderRequest) (*domain.Order, error)
}

var (
	_ ScrapeServiceInterface = (*ScrapeService)(nil)
	_ HotelServiceInterface  = (*HotelService)(nil)
	_ OrderServiceInterface  = (*OrderService)(nil)
	_ VoiceServiceInterface  = (*VoiceService)(nil)
)
