package domain

// TaxPolicy computes the tax owed on a base amount. Implementations must be
// pure and deterministic for any non-negative amount, so one jurisdiction
// can substitute for another without affecting the rest of the pipeline.
type TaxPolicy interface {
	CalculateTax(amount float64) float64
}

// Notifier delivers a billing message to a customer. Each channel keeps its
// own native delivery API and satisfies this port by delegation.
type Notifier interface {
	Notify(customer, message string) error
}

// InvoiceStore persists a rendered invoice and returns the path written.
type InvoiceStore interface {
	Save(inv Invoice) (string, error)
}

// InvoiceArchive keeps a historical copy of issued invoices.
type InvoiceArchive interface {
	Archive(inv Invoice, rendered string) error
}

// ConfigLoader reads billing configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (BillingConfig, error)
}
