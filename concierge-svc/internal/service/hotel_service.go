package service

import (
	"context"
	"fmt"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const importedCategory = "Imported"

type HotelService struct {
	hotels  HotelRepository
	menu    MenuRepository
	scrapes ScrapeServiceInterface
	qr      QRGenerator
	logger  *zap.Logger
}

func NewHotelService(hotels HotelRepository, menu MenuRepository, scrapes ScrapeServiceInterface, qr QRGenerator, logger *zap.Logger) *HotelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HotelService{hotels: hotels, menu: menu, scrapes: scrapes, qr: qr, logger: logger}
}

func (s *HotelService) Create(ctx context.Context, hotel *domain.Hotel) error {
	if err := validateInput(hotel); err != nil {
		return err
	}
	return s.hotels.CreateHotel(ctx, hotel)
}

func (s *HotelService) Get(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	return s.hotels.GetHotel(ctx, id)
}

func (s *HotelService) ListMenu(ctx context.Context, hotelID uuid.UUID) ([]domain.MenuItem, error) {
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.menu.ListMenuItems(ctx, hotelID, false)
}

func (s *HotelService) AddMenuItems(ctx context.Context, hotelID uuid.UUID, items []domain.MenuItem) ([]domain.MenuItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one menu item is required", apperr.ErrInput)
	}
	for i := range items {
		if err := validateInput(items[i]); err != nil {
			return nil, err
		}
		if items[i].Price.IsNegative() {
			return nil, fmt.Errorf("%w: price of %q is negative", apperr.ErrInput, items[i].Name)
		}
		items[i].HotelID = hotelID
	}

	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	if err := s.menu.CreateMenuItems(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ImportMenu scrapes url and stores every item as available under the Imported category.
// Fallback results are stored too; the returned source tells the caller which one it got.
func (s *HotelService) ImportMenu(ctx context.Context, hotelID uuid.UUID, url string) ([]domain.MenuItem, domain.ScrapeSource, error) {
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, "", err
	}

	result, err := s.scrapes.Scrape(ctx, url)
	if err != nil {
		return nil, "", err
	}

	items := make([]domain.MenuItem, 0, len(result.Menu))
	for _, scraped := range result.Menu {
		items = append(items, domain.MenuItem{
			HotelID:     hotelID,
			Name:        scraped.Name,
			Description: scraped.Description,
			Price:       scraped.Price,
			Category:    importedCategory,
			IsAvailable: true,
		})
	}
	if err := s.menu.CreateMenuItems(ctx, items); err != nil {
		return nil, "", err
	}

	s.logger.Info("imported menu",
		zap.String("hotel_id", hotelID.String()),
		zap.String("source", string(result.Source)),
		zap.Int("items", len(items)))
	return items, result.Source, nil
}

func (s *HotelService) QRCode(ctx context.Context, hotelID uuid.UUID) ([]byte, error) {
	hotel, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(hotel.PhoneNumber)
}
