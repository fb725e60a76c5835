package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"
	"hotel-concierge/config"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	Backend config.Backend
}

func NewPostgresRepository(backend config.Backend) *PostgresRepository {
	return &PostgresRepository{Backend: backend}
}

func (r *PostgresRepository) CreateHotel(ctx context.Context, hotel *domain.Hotel) error {
	db, err := r.Backend.DB()
	if err != nil {
		return err
	}
	if hotel.ID == uuid.Nil {
		hotel.ID = uuid.New()
	}
	return db.QueryRowContext(ctx, `
		INSERT INTO hotels (id, name, website_url, clover_merchant_id, voice_id, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		hotel.ID, hotel.Name, hotel.WebsiteURL, hotel.CloverMerchantID, hotel.VoiceID, hotel.PhoneNumber,
	).Scan(&hotel.CreatedAt)
}

func (r *PostgresRepository) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	return r.findHotel(ctx, "id = $1", id)
}

func (r *PostgresRepository) HotelByPhone(ctx context.Context, phone string) (*domain.Hotel, error) {
	return r.findHotel(ctx, "phone_number = $1", phone)
}

func (r *PostgresRepository) findHotel(ctx context.Context, where string, arg any) (*domain.Hotel, error) {
	db, err := r.Backend.DB()
	if err != nil {
		return nil, err
	}

	var hotel domain.Hotel
	err = db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(website_url, ''), COALESCE(clover_merchant_id, ''), COALESCE(voice_id, ''), phone_number, created_at
		FROM hotels
		WHERE `+where, arg).
		Scan(&hotel.ID, &hotel.Name, &hotel.WebsiteURL, &hotel.CloverMerchantID, &hotel.VoiceID, &hotel.PhoneNumber, &hotel.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("hotel %v: %w", arg, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *PostgresRepository) CreateMenuItems(ctx context.Context, items []domain.MenuItem) error {
	db, err := r.Backend.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range items {
		item := &items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO menu_items (id, hotel_id, name, description, price, category, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at`,
			item.ID, item.HotelID, item.Name, item.Description, item.Price, item.Category, item.IsAvailable,
		).Scan(&item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, hotelID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error) {
	db, err := r.Backend.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, hotel_id, name, COALESCE(description, ''), price, COALESCE(category, ''), is_available, created_at
		FROM menu_items
		WHERE hotel_id = $1 AND (is_available OR NOT $2)
		ORDER BY category, name`, hotelID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.HotelID, &item.Name, &item.Description, &item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateOrder writes the order and its line items in one transaction.
// menuItemIDs must follow the order of order.Items.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order, menuItemIDs []uuid.UUID) error {
	db, err := r.Backend.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, hotel_id, room_number, status, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, seq`,
		order.ID, order.HotelID, order.Room, string(order.Status), order.TotalAmount,
	).Scan(&order.CreatedAt, &order.Seq); err != nil {
		return err
	}

	for position, itemID := range menuItemIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, position)
			VALUES ($1, $2, $3)`,
			order.ID, itemID, position); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	db, err := r.Backend.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", string(status), orderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %s: %w", orderID, apperr.ErrNotFound)
	}
	return nil
}

// DefaultNotifyChannel is the channel the feed listens on unless configured otherwise.
const DefaultNotifyChannel = "orders_inserted"

func schemaStatements(channel string) []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS hotels (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			website_url TEXT,
			clover_merchant_id TEXT,
			voice_id TEXT,
			phone_number TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL DEFAULT 0,
			category TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			hotel_id UUID REFERENCES hotels(id) ON DELETE SET NULL,
			room_number TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'processing', 'completed', 'cancelled')),
			total_amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			seq BIGSERIAL
		)`,
		`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id UUID REFERENCES menu_items(id) ON DELETE SET NULL,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE OR REPLACE FUNCTION notify_order_inserted() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify(` + pq.QuoteLiteral(channel) + `, row_to_json(NEW)::text);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS orders_inserted_notify ON orders`,
		`CREATE TRIGGER orders_inserted_notify AFTER INSERT ON orders
			FOR EACH ROW EXECUTE FUNCTION notify_order_inserted()`,
	}
}

// EnsureSchema creates the tables and the insert trigger that announces new
// orders on channel.
func (r *PostgresRepository) EnsureSchema(ctx context.Context, channel string) error {
	db, err := r.Backend.DB()
	if err != nil {
		return err
	}
	if channel == "" {
		channel = DefaultNotifyChannel
	}
	for _, stmt := range schemaStatements(channel) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
