package order

import (
	"regexp"
	"strings"
)

// ValidationResult reports whether a form passed validation and every rule
// it violated, in form order.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// local@domain.tld shape; nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the whole form against the rule set. Validation is
// exhaustive, not fail-fast: every violated rule appends its message so the
// UI can show all problems in one pass. Rules run in the order the fields
// appear on the form.
func Validate(form OrderForm) ValidationResult {
	var errs []string

	errs = append(errs, validateSelection(form.Selection)...)

	if strings.TrimSpace(form.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if strings.TrimSpace(form.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(form.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}

	if strings.TrimSpace(form.Address) == "" {
		errs = append(errs, "Delivery address is required")
	}
	if strings.TrimSpace(form.City) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(form.State) == "" {
		errs = append(errs, "State is required")
	}
	if strings.TrimSpace(form.ZipCode) == "" {
		errs = append(errs, "ZIP code is required")
	}
	// Presence only: the picker minimum keeps the date on or after tomorrow,
	// matching the storefront, which never re-checks the bound here.
	if form.DeliveryDate == "" {
		errs = append(errs, "Delivery date is required")
	}
	if form.DeliveryTime == "" {
		errs = append(errs, "Delivery time is required")
	} else if !isDeliveryTimeSlot(form.DeliveryTime) {
		errs = append(errs, "Please select a valid delivery time")
	}

	// Card fields only matter when paying by card; for cash they are skipped
	// regardless of what they hold.
	if form.PaymentMethod == PaymentCard {
		if strings.TrimSpace(form.CardNumber) == "" {
			errs = append(errs, "Card number is required")
		}
		if strings.TrimSpace(form.ExpiryDate) == "" {
			errs = append(errs, "Expiry date is required")
		}
		if strings.TrimSpace(form.CVV) == "" {
			errs = append(errs, "CVV is required")
		}
		if strings.TrimSpace(form.CardholderName) == "" {
			errs = append(errs, "Cardholder name is required")
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func validateSelection(sel Selection) []string {
	var errs []string

	switch sel.Mode {
	case ModeCartLines:
		if len(sel.Lines) == 0 {
			errs = append(errs, "Your cart is empty")
			return errs
		}
		for _, line := range sel.Lines {
			if line.Quantity < 1 || line.Quantity > MaxQuantity {
				errs = append(errs, "Quantity must be between 1 and 10")
				break
			}
		}
	default:
		if sel.ItemID == "" {
			errs = append(errs, "Please select a recipe")
		}
		if sel.Quantity < 1 || sel.Quantity > MaxQuantity {
			errs = append(errs, "Quantity must be between 1 and 10")
		}
	}

	return errs
}

func isDeliveryTimeSlot(value string) bool {
	for _, slot := range DeliveryTimeSlots() {
		if value == slot {
			return true
		}
	}
	return false
}
