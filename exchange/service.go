package exchange

import (
	"context"
	"fmt"
	"go-currency-checker"
	"go-currency-checker/xe"
)

// UnitRate the rate of a currency to itself
const UnitRate = "1.00"

// Service interface for converting from one currency to another.
// The request amount is ignored by ExchangeRate.
type Service interface {
	Convert(ctx context.Context, req checker.Request) (string, error)
	ExchangeRate(ctx context.Context, req checker.Request) (string, error)
}

// service answers conversions and rates, going to xe.com only when the currencies differ
type service struct {
	// xeService scrapes conversions and rates
	xeService xe.Service
}

// NewService constructs a valid Service
func NewService(s xe.Service) Service {
	return &service{
		xeService: s,
	}
}

// Convert computes a conversion from one currency to another.
// Converting a currency to itself returns the amount untouched.
func (s *service) Convert(ctx context.Context, req checker.Request) (string, error) {
	if req.SameCurrency() {
		return string(req.Amount), nil
	}

	from, to := req.Source.Normalize(), req.Target.Normalize()
	result, err := s.xeService.Convert(ctx, req.Amount, from, to)
	if err != nil {
		return "", fmt.Errorf("convert from [%v]: %w", from, err)
	}
	return result, nil
}

// ExchangeRate looks up the value of one unit of the source currency in the target.
// The rate of a currency to itself is UnitRate.
func (s *service) ExchangeRate(ctx context.Context, req checker.Request) (string, error) {
	if req.SameCurrency() {
		return UnitRate, nil
	}

	from, to := req.Source.Normalize(), req.Target.Normalize()
	rate, err := s.xeService.ExchangeRate(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("exchange rate from [%v]: %w", from, err)
	}
	return rate, nil
}
