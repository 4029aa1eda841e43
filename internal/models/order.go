package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of a persisted order
type OrderStatus string

const (
	// StatusPending is the only status the storefront writes; fulfilment
	// happens outside this system.
	StatusPending OrderStatus = "pending"
)

// CheckoutItem is one cart line as it crosses the HTTP boundary.
type CheckoutItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CheckoutCustomer carries the customer fields of a checkout request.
type CheckoutCustomer struct {
	Name                string `json:"name"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CheckoutRequest is the POST /api/checkout body.
type CheckoutRequest struct {
	Cart     []CheckoutItem   `json:"cart"`
	Customer CheckoutCustomer `json:"customer"`
}

// CheckoutResponse is the success body of POST /api/checkout.
type CheckoutResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// Order is a persisted order record.
type Order struct {
	ID              int             `json:"id,omitempty"`
	Number          string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	CustomerEmail   *string         `json:"customer_email,omitempty"`
	Items           []CheckoutItem  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
}

// ErrorKind classifies submission failures.
type ErrorKind string

const (
	ErrKindValidation  ErrorKind = "validation"
	ErrKindTransport   ErrorKind = "transport"
	ErrKindPersistence ErrorKind = "persistence"
)

// SubmissionResult is the normalized outcome of handing an order to the
// submission gateway.
type SubmissionResult struct {
	Success bool      `json:"success"`
	OrderID string    `json:"order_id,omitempty"`
	Message string    `json:"message,omitempty"`
	ErrKind ErrorKind `json:"error_kind,omitempty"`
}
