package checker

import (
	"strings"
)

// Currency a currency code, either alphabetic (EUR) or numeric (978)
type Currency string

// Normalize returns the upper-cased, trimmed currency code
func (c Currency) Normalize() Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}

// Amount a monetary amount, kept exactly as the user typed it
type Amount string

// Request carries the parameters of a single lookup.
type Request struct {
	Amount  Amount
	Source  Currency
	Target  Currency
	Verbose bool
}

// SameCurrency reports whether source and target designate the same currency.
func (r Request) SameCurrency() bool {
	return r.Source.Normalize() == r.Target.Normalize()
}

// ISORecord an entry of the ISO 4217 currency list
type ISORecord struct {
	// Code alphabetic code, e.g. EUR
	Code Currency
	// Number numeric code, e.g. 978
	Number string
	// Name of the currency
	Name string
	// MinorUnits number of decimal places, "N.A." for some funds and metals
	MinorUnits string
	// Entities countries and territories using the currency, in list order
	Entities []string
}

// String renders the code/number pair.
func (r ISORecord) String() string {
	return string(r.Code) + " " + r.Number
}
