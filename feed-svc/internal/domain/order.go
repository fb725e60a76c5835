package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// PlaceholderItem stands in for item names until the order is re-read with its line items.
	PlaceholderItem = "Fetching items..."
	// UnknownItem names a line item whose menu entry no longer resolves.
	UnknownItem = "Unknown Item"
)

type Order struct {
	ID          uuid.UUID       `json:"id"`
	Room        string          `json:"room"`
	Items       []string        `json:"items"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Seq         int64           `json:"seq"`
}

// OrderEvent is one insert seen on the change feed. Resolved is false when
// the payload only carried the bare orders row.
type OrderEvent struct {
	Order    Order
	Resolved bool
}

// InsertedRow is the orders row as row_to_json renders it in the insert notification.
type InsertedRow struct {
	ID          uuid.UUID       `json:"id"`
	HotelID     *uuid.UUID      `json:"hotel_id"`
	RoomNumber  string          `json:"room_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Seq         int64           `json:"seq"`
}

func (r InsertedRow) Partial() Order {
	return Order{
		ID:          r.ID,
		Room:        r.RoomNumber,
		Items:       []string{PlaceholderItem},
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		TotalAmount: r.TotalAmount,
		Seq:         r.Seq,
	}
}

const OrderCreatedType = "order_created"

// OrderCreatedEvent is the message concierge-svc publishes after an order commits.
type OrderCreatedEvent struct {
	Type      string    `json:"type"`
	HotelID   uuid.UUID `json:"hotel_id"`
	Order     Order     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

type FeedState string

const (
	StateLive       FeedState = "live"
	StateNoLiveData FeedState = "no_live_data"
	StateStopped    FeedState = "stopped"
)

type FeedStatus struct {
	State      FeedState `json:"state"`
	Connected  bool      `json:"connected"`
	Diagnostic string    `json:"diagnostic,omitempty"`
}
