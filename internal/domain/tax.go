package domain

import (
	"fmt"
	"strings"
)

// Supported tax jurisdictions.
const (
	JurisdictionIN = "IN"
	JurisdictionSG = "SG"
)

// IndiaGST applies India's 18% goods-and-services rate.
type IndiaGST struct{}

func (IndiaGST) CalculateTax(amount float64) float64 { return amount * 0.18 }

// SingaporeGST applies Singapore's 7% goods-and-services rate.
type SingaporeGST struct{}

func (SingaporeGST) CalculateTax(amount float64) float64 { return amount * 0.07 }

// PolicyFor returns the tax policy for a jurisdiction code (case-insensitive).
func PolicyFor(jurisdiction string) (TaxPolicy, error) {
	switch strings.ToUpper(jurisdiction) {
	case JurisdictionIN:
		return IndiaGST{}, nil
	case JurisdictionSG:
		return SingaporeGST{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, jurisdiction)
	}
}
