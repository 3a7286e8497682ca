// Package validate checks command line arguments before any network call is made.
package validate

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"go-currency-checker"
	"regexp"
)

const (
	tagAmount       = "amount"
	tagCurrencyCode = "currency_code"
	tagISOCode      = "iso_code"
)

var (
	amountPattern       = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
	currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	isoNumberPattern    = regexp.MustCompile(`^[0-9]{3}$`)
)

// Validator validates arguments by position. It holds no per-call state and is safe to reuse.
type Validator struct {
	v *validator.Validate
}

// New constructs a Validator with the amount, currency code and ISO code rules registered.
func New() *Validator {
	v := validator.New()
	mustRegister(v, tagAmount, amountPattern.MatchString)
	mustRegister(v, tagCurrencyCode, currencyCodePattern.MatchString)
	mustRegister(v, tagISOCode, func(s string) bool {
		return currencyCodePattern.MatchString(s) || isoNumberPattern.MatchString(s)
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, match func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return match(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Amount accepts a decimal number such as 10, 10.5 or .5
func (val *Validator) Amount(s string) error {
	return val.check(s, tagAmount, "amount")
}

// CurrencyCode accepts a three letter code.
func (val *Validator) CurrencyCode(s string) error {
	return val.check(s, tagCurrencyCode, "currency code")
}

// ISOCode accepts a three letter code or a three digit number.
func (val *Validator) ISOCode(s string) error {
	return val.check(s, tagISOCode, "ISO 4217 code or number")
}

// ConvertArg validates argument i of a conversion: amount, source, target.
func (val *Validator) ConvertArg(i int, s string) error {
	switch i {
	case 0:
		return val.Amount(s)
	case 1, 2:
		return val.CurrencyCode(s)
	default:
		return fmt.Errorf("%w: unexpected argument %d %q", checker.ErrInvalidArgument, i+1, s)
	}
}

// RateArg validates argument i of an exchange rate lookup: source, target.
func (val *Validator) RateArg(i int, s string) error {
	if i > 1 {
		return fmt.Errorf("%w: unexpected argument %d %q", checker.ErrInvalidArgument, i+1, s)
	}
	return val.CurrencyCode(s)
}

// ISOArg validates the single argument of an ISO lookup.
func (val *Validator) ISOArg(i int, s string) error {
	if i > 0 {
		return fmt.Errorf("%w: unexpected argument %d %q", checker.ErrInvalidArgument, i+1, s)
	}
	return val.ISOCode(s)
}

// All applies an indexed rule to every argument and returns the first failure.
func All(args []string, rule func(i int, s string) error) error {
	for i, arg := range args {
		if err := rule(i, arg); err != nil {
			return err
		}
	}
	return nil
}

func (val *Validator) check(s, tag, what string) error {
	if err := val.v.Var(s, tag); err != nil {
		return fmt.Errorf("%w: %q is not a valid %s", checker.ErrInvalidArgument, s, what)
	}
	return nil
}
