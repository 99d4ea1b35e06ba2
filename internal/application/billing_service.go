package application

import (
	"fmt"

	"github.com/billcraft/billcraft/internal/domain"
)

// InvoiceService orchestrates the billing pipeline:
// validate -> compute tax -> total -> notify the customer.
// It depends only on the domain ports; concrete jurisdictions and channels
// are chosen by whoever constructs it.
type InvoiceService struct {
	tax      domain.TaxPolicy
	notifier domain.Notifier
}

func NewInvoiceService(tax domain.TaxPolicy, notifier domain.Notifier) *InvoiceService {
	return &InvoiceService{
		tax:      tax,
		notifier: notifier,
	}
}

// Process bills a single invoice. Exactly one notification is sent per
// successful call; a delivery failure is terminal, there are no retries.
func (s *InvoiceService) Process(inv domain.Invoice) (domain.Receipt, error) {
	if err := inv.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	tax := s.tax.CalculateTax(inv.Amount)
	total := inv.Amount + tax

	msg := "total bill: " + domain.FormatAmount(total)
	if err := s.notifier.Notify(inv.Customer, msg); err != nil {
		return domain.Receipt{}, fmt.Errorf("notifying %s: %w", inv.Customer, err)
	}

	return domain.Receipt{Invoice: inv, Tax: tax, Total: total}, nil
}
