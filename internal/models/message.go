package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedMessage is published after an order is persisted. The
// notification subscriber consumes it to dispatch the confirmation the
// storefront promises the customer.
type OrderPlacedMessage struct {
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail *string         `json:"customer_email,omitempty"`
	Items         []CheckoutItem  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Total         decimal.Decimal `json:"total"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// NewOrderPlacedMessage builds the notification payload for a stored order.
func NewOrderPlacedMessage(order *Order) *OrderPlacedMessage {
	return &OrderPlacedMessage{
		OrderNumber:   order.Number,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		PlacedAt:      time.Now().UTC(),
	}
}
