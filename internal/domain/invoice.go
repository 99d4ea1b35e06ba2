package domain

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton. Constructing a validator per call
// is expensive; reusing one is the recommended pattern.
var validate = validator.New()

// Invoice is a bill owed by a single customer. Immutable after construction.
type Invoice struct {
	Customer string  `json:"customer" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

// NewInvoice builds a validated invoice. The customer must be non-empty and
// the amount non-negative.
func NewInvoice(customer string, amount float64) (Invoice, error) {
	inv := Invoice{Customer: customer, Amount: amount}
	if err := inv.Validate(); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// Validate reports the first constraint violated by the invoice.
func (i Invoice) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Customer":
			return ErrEmptyCustomer
		case "Amount":
			return ErrNegativeAmount
		}
	}
	return fmt.Errorf("validating invoice: %w", err)
}

// Summary renders the canonical two-line text form of the invoice. The
// terminal renderer, the file store and the ledger all emit exactly this
// text, so persisted content always round-trips with the rendered form.
func (i Invoice) Summary() string {
	return fmt.Sprintf("Invoice for: %s\nAmount due: %s\n", i.Customer, FormatAmount(i.Amount))
}

// Receipt is the outcome of processing one invoice.
type Receipt struct {
	Invoice Invoice `json:"invoice"`
	Tax     float64 `json:"tax"`
	Total   float64 `json:"total"`
}

// FormatAmount renders a monetary amount without trailing zeros
// (5900 stays "5900", 12.50 becomes "12.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
