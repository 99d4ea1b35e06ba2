package render_test

import (
	"testing"

	"github.com/billcraft/billcraft/internal/adapters/outbound/render"
	"github.com/billcraft/billcraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	inv := domain.Invoice{Customer: "Mystery", Amount: 5000}
	got := render.Text(inv)
	assert.Equal(t, "Invoice for: Mystery\nAmount due: 5000\n", got)
}

func TestInvoice_ContainsCustomerAndAmount(t *testing.T) {
	inv := domain.Invoice{Customer: "Mystery", Amount: 5000}
	got := render.Invoice(inv)
	assert.Contains(t, got, "Mystery")
	assert.Contains(t, got, "5000")
}

func TestReceipt_ContainsTotals(t *testing.T) {
	r := domain.Receipt{
		Invoice: domain.Invoice{Customer: "Mystery", Amount: 5000},
		Tax:     900,
		Total:   5900,
	}
	got := render.Receipt(r)
	assert.Contains(t, got, "Mystery")
	assert.Contains(t, got, "900")
	assert.Contains(t, got, "5900")
}
