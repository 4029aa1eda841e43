package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"spice-and-soul/internal/logger"
	"spice-and-soul/internal/messaging"
	"spice-and-soul/internal/models"
)

// Subscriber consumes order-placed events and dispatches the customer
// confirmation the storefront promises after a successful order.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new confirmation subscriber.
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes confirmations until the context is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", requestID, "Confirmation subscriber started", nil)

	err := s.consumer.StartConsuming(ctx, s.handleOrderPlaced)
	if err != nil && err != context.Canceled {
		return fmt.Errorf("consumer stopped: %w", err)
	}
	return nil
}

// handleOrderPlaced processes one order-placed event.
func (s *Subscriber) handleOrderPlaced(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var placed models.OrderPlacedMessage
	if err := json.Unmarshal(body, &placed); err != nil {
		s.logger.Error("message_parsing_failed", requestID, "Failed to parse order-placed event", err, nil)
		return fmt.Errorf("failed to parse order-placed event: %w", err)
	}

	s.displayConfirmation(&placed)

	s.logger.Info("confirmation_dispatched", requestID, "Order confirmation dispatched", map[string]any{
		"order_number": placed.OrderNumber,
		"customer":     placed.CustomerName,
		"has_email":    placed.CustomerEmail != nil,
		"total":        placed.Total.StringFixed(2),
	})

	return nil
}

// displayConfirmation prints the human-readable confirmation. A real mailer
// would hang off this same event; the console is the delivery channel here.
func (s *Subscriber) displayConfirmation(placed *models.OrderPlacedMessage) {
	timestamp := placed.PlacedAt.Format("2006-01-02 15:04:05")

	if placed.CustomerEmail != nil {
		fmt.Printf("[%s] Order %s confirmed for %s ($%s). Confirmation email queued for %s.\n",
			timestamp, placed.OrderNumber, placed.CustomerName,
			placed.Total.StringFixed(2), *placed.CustomerEmail)
		return
	}

	fmt.Printf("[%s] Order %s confirmed for %s ($%s).\n",
		timestamp, placed.OrderNumber, placed.CustomerName, placed.Total.StringFixed(2))
}

// Close stops the underlying consumer.
func (s *Subscriber) Close() error {
	return s.consumer.Close()
}
