package domain

import "errors"

var (
	ErrEmptyCustomer       = errors.New("invoice customer is required")
	ErrNegativeAmount      = errors.New("invoice amount must be non-negative")
	ErrUnknownJurisdiction = errors.New("unknown tax jurisdiction")
	ErrUnknownChannel      = errors.New("unknown notification channel")
)
