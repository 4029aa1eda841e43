package order

import (
	"context"
	"fmt"

	"spice-and-soul/internal/database"
	"spice-and-soul/internal/models"
)

// PostgresStore persists orders in PostgreSQL.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a store backed by the given connection pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateOrder inserts the order, its items and the initial pending status
// row in one transaction and returns the generated order id.
func (s *PostgresStore) CreateOrder(ctx context.Context, order *models.Order) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (number, customer_name, customer_phone, customer_address, customer_email,
			subtotal, delivery_fee, total, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		order.Number, order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.CustomerEmail,
		order.Subtotal, order.DeliveryFee, order.Total, order.Status,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, item_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			orderID, item.ID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item %q: %w", item.ID, err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_log (order_id, status, changed_by, notes)
		 VALUES ($1, $2, $3, $4)`,
		orderID, order.Status, "order-service", "order placed",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert status log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return orderID, nil
}

// CountOrdersToday returns how many orders were placed today (UTC), used
// for order-number sequencing.
func (s *PostgresStore) CountOrdersToday(ctx context.Context) (int, error) {
	var count int
	err := s.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at::date = (NOW() AT TIME ZONE 'UTC')::date`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's orders: %w", err)
	}
	return count, nil
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
