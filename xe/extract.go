package xe

import (
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"go-currency-checker"
	"io"
	"regexp"
	"strings"
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// extractConversion reads the converted amount, minus the faded trailing digits.
func extractConversion(r io.Reader, sel Selectors) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	fragment := doc.Find(sel.Conversion).First()
	if fragment.Length() == 0 {
		return "", fmt.Errorf("%w: no element matches %q", checker.ErrUnexpectedMarkup, sel.Conversion)
	}
	fragment.Find(sel.Faded).Remove()

	return numeric(fragment.Text())
}

// extractRate reads the right hand side of the "1 AAA = x BBB" line.
func extractRate(r io.Reader, sel Selectors) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	fragment := doc.Find(sel.Rate).First()
	if fragment.Length() == 0 {
		return "", fmt.Errorf("%w: no element matches %q", checker.ErrUnexpectedMarkup, sel.Rate)
	}

	_, rhs, ok := strings.Cut(fragment.Text(), "=")
	if !ok {
		return "", fmt.Errorf("%w: no '=' in %q", checker.ErrUnexpectedMarkup, fragment.Text())
	}

	return numeric(rhs)
}

// numeric strips everything but digits and dots, and checks a number is left.
func numeric(text string) (string, error) {
	result := nonNumeric.ReplaceAllString(text, "")
	if _, err := decimal.NewFromString(result); err != nil {
		return "", fmt.Errorf("%w: %q is not a number", checker.ErrUnexpectedMarkup, result)
	}
	return result, nil
}
