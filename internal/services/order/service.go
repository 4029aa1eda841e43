package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spice-and-soul/internal/catalog"
	"spice-and-soul/internal/logger"
	"spice-and-soul/internal/models"
)

// Store persists orders. The gateway treats it purely as an
// insert-and-return-id collaborator.
type Store interface {
	CreateOrder(ctx context.Context, order *models.Order) (int, error)
	CountOrdersToday(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// EventPublisher fans the order-placed event out after persistence.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg *models.OrderPlacedMessage) error
}

// Service is the order submission gateway. Callers run the form validator
// first; the gateway only re-checks structural well-formedness before
// handing the order to the store.
type Service struct {
	store     Store
	publisher EventPublisher
	catalog   *catalog.Catalog
	logger    *logger.Logger
}

// NewService creates the submission gateway.
func NewService(store Store, publisher EventPublisher, cat *catalog.Catalog, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		catalog:   cat,
		logger:    log,
	}
}

// Submit serializes a checkout request, persists it and reports a
// normalized result. Structural failures never reach the store; store
// failures surface as a generic message with the cause logged, not exposed.
func (s *Service) Submit(ctx context.Context, req models.CheckoutRequest, requestID string) models.SubmissionResult {
	if reason, ok := structuralCheck(req); !ok {
		s.logger.Debug("checkout_rejected", requestID, reason, nil)
		return models.SubmissionResult{
			Success: false,
			Message: reason,
			ErrKind: models.ErrKindValidation,
		}
	}

	// Totals are recomputed here; client-side numbers are display only.
	subtotal := decimal.Zero
	for _, item := range req.Cart {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	total := subtotal.Add(DeliveryFee)

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		s.logger.Error("order_number_failed", requestID, "Failed to generate order number", err, nil)
		return persistenceFailure()
	}

	order := &models.Order{
		Number:          number,
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
		Items:           req.Cart,
		Subtotal:        subtotal,
		DeliveryFee:     DeliveryFee,
		Total:           total,
		Status:          models.StatusPending,
	}
	if email := strings.TrimSpace(req.Customer.Email); email != "" {
		order.CustomerEmail = &email
	}

	orderID, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("order_creation_failed", requestID, "Failed to persist order", err, map[string]any{
			"order_number": number,
			"total":        total.StringFixed(2),
		})
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return transportFailure()
		}
		return persistenceFailure()
	}
	order.ID = orderID

	s.logger.Info("order_created", requestID, "Order persisted", map[string]any{
		"order_number": number,
		"order_id":     orderID,
		"items":        len(order.Items),
		"total":        total.StringFixed(2),
	})

	// The confirmation dispatch is best effort: the order is already
	// persisted, so a broker hiccup must not fail the submission.
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, models.NewOrderPlacedMessage(order)); err != nil {
			s.logger.Error("notification_publish_failed", requestID,
				"Failed to publish order-placed event", err, map[string]any{
					"order_number": number,
				})
		}
	}

	return models.SubmissionResult{
		Success: true,
		OrderID: number,
		Message: "Order placed successfully",
	}
}

// SubmitForm submits the single-recipe order form. The caller must have
// already obtained a passing ValidationResult for the form.
func (s *Service) SubmitForm(ctx context.Context, form OrderForm, requestID string) models.SubmissionResult {
	req, err := s.checkoutRequestFromForm(form)
	if err != nil {
		s.logger.Debug("checkout_rejected", requestID, err.Error(), nil)
		return models.SubmissionResult{
			Success: false,
			Message: err.Error(),
			ErrKind: models.ErrKindValidation,
		}
	}
	return s.Submit(ctx, req, requestID)
}

// HealthCheck reports whether the store is reachable.
func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}

func (s *Service) checkoutRequestFromForm(form OrderForm) (models.CheckoutRequest, error) {
	summary, err := BuildSummary(s.catalog, form.Selection)
	if err != nil {
		return models.CheckoutRequest{}, err
	}
	if summary == nil {
		return models.CheckoutRequest{}, fmt.Errorf("nothing selected")
	}

	cart := make([]models.CheckoutItem, 0, len(summary.Lines))
	sel := form.Selection
	if sel.Mode == ModeSingleItem {
		item, err := s.catalog.GetItem(sel.ItemID)
		if err != nil {
			return models.CheckoutRequest{}, err
		}
		cart = append(cart, models.CheckoutItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.Amount,
			Quantity: sel.Quantity,
		})
	} else {
		for _, line := range sel.Lines {
			cart = append(cart, models.CheckoutItem{
				ID:       line.Item.ID,
				Name:     line.Item.Name,
				Price:    line.Item.Price.Amount,
				Quantity: line.Quantity,
			})
		}
	}

	address := form.Address
	if form.City != "" || form.State != "" || form.ZipCode != "" {
		address = fmt.Sprintf("%s, %s, %s %s", form.Address, form.City, form.State, form.ZipCode)
	}

	return models.CheckoutRequest{
		Cart: cart,
		Customer: models.CheckoutCustomer{
			Name:                strings.TrimSpace(form.FirstName + " " + form.LastName),
			Email:               form.Email,
			Phone:               form.Phone,
			Address:             address,
			SpecialInstructions: form.SpecialInstructions,
		},
	}, nil
}

func (s *Service) nextOrderNumber(ctx context.Context) (string, error) {
	count, err := s.store.CountOrdersToday(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD_%s_%03d", time.Now().UTC().Format("20060102"), count+1), nil
}

func structuralCheck(req models.CheckoutRequest) (string, bool) {
	if len(req.Cart) == 0 {
		return "Cart is required and must not be empty", false
	}
	if req.Customer.Name == "" || req.Customer.Phone == "" || req.Customer.Address == "" {
		return "Customer information is required", false
	}
	return "", true
}

func persistenceFailure() models.SubmissionResult {
	return models.SubmissionResult{
		Success: false,
		Message: "Failed to create order",
		ErrKind: models.ErrKindPersistence,
	}
}

func transportFailure() models.SubmissionResult {
	return models.SubmissionResult{
		Success: false,
		Message: "An error occurred while placing your order. Please try again.",
		ErrKind: models.ErrKindTransport,
	}
}
