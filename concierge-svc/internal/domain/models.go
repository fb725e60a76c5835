package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Hotel struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name" validate:"required"`
	WebsiteURL       string    `json:"website_url" validate:"omitempty,url"`
	CloverMerchantID string    `json:"clover_merchant_id"`
	VoiceID          string    `json:"voice_id"`
	PhoneNumber      string    `json:"phone_number" validate:"required,e164"`
	CreatedAt        time.Time `json:"created_at"`
}

type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	HotelID     uuid.UUID       `json:"hotel_id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Order struct {
	ID          uuid.UUID       `json:"id"`
	HotelID     uuid.UUID       `json:"hotel_id"`
	Room        string          `json:"room"`
	Items       []string        `json:"items"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Seq         int64           `json:"seq"`
}

type PlaceOrderRequest struct {
	RoomNumber string   `json:"room_number" validate:"required"`
	Items      []string `json:"items" validate:"required,min=1,dive,required"`
}

type StatusUpdateRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

const OrderCreatedType = "order_created"

// OrderCreatedEvent carries the order with its item names already resolved.
type OrderCreatedEvent struct {
	Type      string    `json:"type"`
	HotelID   uuid.UUID `json:"hotel_id"`
	Order     Order     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}
