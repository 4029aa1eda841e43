package order

import (
	"fmt"
	"strconv"
	"time"
)

// MaxQuantity is the largest quantity a single order line may carry.
const MaxQuantity = 10

// SuccessDisplayWindow is how long the success acknowledgement stays on
// screen before the presentation layer resets the form to defaults.
const SuccessDisplayWindow = 3 * time.Second

// PaymentMethod enumerates how an order is paid.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// OrderForm is the full set of user-entered fields for one order attempt.
// It is created with defaults at the start of a session, mutated field by
// field as the user types, and read by the validator and pricing engine.
type OrderForm struct {
	Selection           Selection
	SpecialInstructions string

	FirstName string
	LastName  string
	Email     string
	Phone     string

	Address      string
	City         string
	State        string
	ZipCode      string
	DeliveryDate string
	DeliveryTime string

	PaymentMethod  PaymentMethod
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// NewOrderForm returns a form with the session defaults: nothing selected,
// quantity 1, card payment.
func NewOrderForm() OrderForm {
	return OrderForm{
		Selection:     SingleSelection("", 1),
		PaymentMethod: PaymentCard,
	}
}

// Reset discards all entered values and returns the defaults.
func (f OrderForm) Reset() OrderForm {
	return NewOrderForm()
}

// Field names one updatable form field. Using a closed set instead of raw
// strings keeps field dispatch checked at compile time.
type Field string

const (
	FieldSelectedRecipe      Field = "selectedRecipe"
	FieldQuantity            Field = "quantity"
	FieldSpecialInstructions Field = "specialInstructions"
	FieldFirstName           Field = "firstName"
	FieldLastName            Field = "lastName"
	FieldEmail               Field = "email"
	FieldPhone               Field = "phone"
	FieldAddress             Field = "address"
	FieldCity                Field = "city"
	FieldState               Field = "state"
	FieldZipCode             Field = "zipCode"
	FieldDeliveryDate        Field = "deliveryDate"
	FieldDeliveryTime        Field = "deliveryTime"
	FieldPaymentMethod       Field = "paymentMethod"
	FieldCardNumber          Field = "cardNumber"
	FieldExpiryDate          Field = "expiryDate"
	FieldCVV                 Field = "cvv"
	FieldCardholderName      Field = "cardholderName"
)

// UpdateField returns a copy of the form with one field replaced. Quantity
// must parse as an integer and the payment method must be card or cash;
// anything else is rejected rather than silently ignored.
func UpdateField(form OrderForm, field Field, value string) (OrderForm, error) {
	switch field {
	case FieldSelectedRecipe:
		form.Selection = SingleSelection(value, form.Selection.Quantity)
	case FieldQuantity:
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return form, fmt.Errorf("%w: %q is not an integer", ErrInvalidQuantity, value)
		}
		form.Selection.Quantity = quantity
	case FieldSpecialInstructions:
		form.SpecialInstructions = value
	case FieldFirstName:
		form.FirstName = value
	case FieldLastName:
		form.LastName = value
	case FieldEmail:
		form.Email = value
	case FieldPhone:
		form.Phone = value
	case FieldAddress:
		form.Address = value
	case FieldCity:
		form.City = value
	case FieldState:
		form.State = value
	case FieldZipCode:
		form.ZipCode = value
	case FieldDeliveryDate:
		form.DeliveryDate = value
	case FieldDeliveryTime:
		form.DeliveryTime = value
	case FieldPaymentMethod:
		switch PaymentMethod(value) {
		case PaymentCard, PaymentCash:
			form.PaymentMethod = PaymentMethod(value)
		default:
			return form, fmt.Errorf("unknown payment method %q", value)
		}
	case FieldCardNumber:
		form.CardNumber = value
	case FieldExpiryDate:
		form.ExpiryDate = value
	case FieldCVV:
		form.CVV = value
	case FieldCardholderName:
		form.CardholderName = value
	default:
		return form, fmt.Errorf("unknown form field %q", field)
	}
	return form, nil
}

// SelectItem overwrites the single selected recipe id. The single-item and
// cart flows are never mixed within one form.
func SelectItem(form OrderForm, itemID string) OrderForm {
	form.Selection = SingleSelection(itemID, form.Selection.Quantity)
	return form
}

// DeliveryTimeSlots returns the five fixed two-hour delivery windows.
func DeliveryTimeSlots() []string {
	return []string{
		"10:00-12:00",
		"12:00-14:00",
		"14:00-16:00",
		"16:00-18:00",
		"18:00-20:00",
	}
}

// QuantityOptions lists the quantities the order form offers, 1 through
// MaxQuantity.
func QuantityOptions() []int {
	options := make([]int, MaxQuantity)
	for i := range options {
		options[i] = i + 1
	}
	return options
}

// MinDeliveryDate returns tomorrow in YYYY-MM-DD form. The date picker uses
// it as its minimum; the validator itself only checks that a date is present.
func MinDeliveryDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
