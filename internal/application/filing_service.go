package application

import (
	"fmt"

	"github.com/billcraft/billcraft/internal/domain"
)

// FilingService writes invoices to their flat-file form and, when an
// archive is configured, records a historical copy of the same text.
type FilingService struct {
	store   domain.InvoiceStore
	archive domain.InvoiceArchive // nil disables archiving
}

func NewFilingService(store domain.InvoiceStore, archive domain.InvoiceArchive) *FilingService {
	return &FilingService{
		store:   store,
		archive: archive,
	}
}

// File persists one invoice and returns the path written. Store and archive
// failures are surfaced to the caller, never swallowed.
func (s *FilingService) File(inv domain.Invoice) (string, error) {
	if err := inv.Validate(); err != nil {
		return "", err
	}

	path, err := s.store.Save(inv)
	if err != nil {
		return "", fmt.Errorf("saving invoice: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Archive(inv, inv.Summary()); err != nil {
			return "", fmt.Errorf("archiving invoice: %w", err)
		}
	}
	return path, nil
}
