package storage

import (
	"context"

	"hotel-concierge/config"
	"hotel-concierge/feed-svc/internal/domain"

	"github.com/lib/pq"
)

type OrderStore struct {
	Backend config.Backend
}

func NewOrderStore(backend config.Backend) *OrderStore {
	return &OrderStore{Backend: backend}
}

// RecentOrders returns the newest limit orders with their item names in line order.
func (s *OrderStore) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	db, err := s.Backend.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT o.id, o.room_number, o.status, o.total_amount, o.created_at, o.seq,
			COALESCE(
				array_agg(COALESCE(m.name, $2) ORDER BY oi.position) FILTER (WHERE oi.order_id IS NOT NULL),
				'{}'
			) AS items
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.seq DESC
		LIMIT $1`, limit, domain.UnknownItem)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var items []string
		if err := rows.Scan(&order.ID, &order.Room, &order.Status, &order.TotalAmount, &order.CreatedAt, &order.Seq, pq.Array(&items)); err != nil {
			return nil, err
		}
		if items == nil {
			items = []string{}
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
