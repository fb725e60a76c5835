package service

import (
	"context"

	"hotel-concierge/feed-svc/internal/domain"
)

type OrderReader interface {
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// ChangeSource delivers insert events until ctx is cancelled or the source fails,
// then closes the channel.
type ChangeSource interface {
	Subscribe(ctx context.Context) (<-chan domain.OrderEvent, error)
}

type FeedView interface {
	Orders() []domain.Order
	Status() domain.FeedStatus
}

var _ FeedView = (*Subscription)(nil)
