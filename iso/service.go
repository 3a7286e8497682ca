package iso

import (
	"context"
	"encoding/xml"
	"fmt"
	"go-currency-checker"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const ListURL = "https://www.six-group.com/dam/download/financial-information/data-center/iso-currrency/lists/list-one.xml"

var numberPattern = regexp.MustCompile(`^[0-9]{3}$`)

// Service looks up entries of the ISO 4217 currency list
type Service interface {
	// Lookup finds the currency by alphabetic code (EUR) or numeric code (978).
	Lookup(ctx context.Context, code checker.Currency) (checker.ISORecord, error)
}

// service reads the published ISO 4217 list
type service struct {
	// url of the list-one XML document
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid iso Service. An empty url selects ListURL.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ListURL
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// document mirrors the layout of list-one.xml
type document struct {
	XMLName   xml.Name `xml:"ISO_4217"`
	Published string   `xml:"Pblshd,attr"`
	Entries   []entry  `xml:"CcyTbl>CcyNtry"`
}

type entry struct {
	Country    string `xml:"CtryNm"`
	Name       string `xml:"CcyNm"`
	Code       string `xml:"Ccy"`
	Number     string `xml:"CcyNbr"`
	MinorUnits string `xml:"CcyMnrUnts"`
}

// Lookup fetches the list and returns the first entry matching code, along with
// every entity sharing that currency.
func (s *service) Lookup(ctx context.Context, code checker.Currency) (checker.ISORecord, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return checker.ISORecord{}, fmt.Errorf("iso lookup [%v]: %w", code, err)
	}

	record, ok := find(doc.Entries, code)
	if !ok {
		return checker.ISORecord{}, fmt.Errorf("iso lookup [%v]: %w", code, checker.ErrInvalidCurrencyCode)
	}
	return record, nil
}

func (s *service) fetch(ctx context.Context) (*document, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", checker.ErrRemoteRequestFailed, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading xml: %w", err)
	}

	var doc document
	err = xml.Unmarshal(bytes, &doc)
	if err != nil {
		return nil, fmt.Errorf("decoding xml: %w", err)
	}
	return &doc, nil
}

// find matches on the numeric code when code is three digits, on the alphabetic code otherwise.
func find(entries []entry, code checker.Currency) (checker.ISORecord, bool) {
	code = code.Normalize()
	byNumber := numberPattern.MatchString(string(code))

	match := -1
	for i, e := range entries {
		if e.Code == "" {
			continue
		}
		if (byNumber && strings.TrimSpace(e.Number) == string(code)) ||
			(!byNumber && strings.EqualFold(strings.TrimSpace(e.Code), string(code))) {
			match = i
			break
		}
	}
	if match < 0 {
		return checker.ISORecord{}, false
	}

	first := entries[match]
	record := checker.ISORecord{
		Code:       checker.Currency(strings.TrimSpace(first.Code)),
		Number:     strings.TrimSpace(first.Number),
		Name:       strings.TrimSpace(first.Name),
		MinorUnits: strings.TrimSpace(first.MinorUnits),
	}
	for _, e := range entries[match:] {
		if strings.TrimSpace(e.Code) == string(record.Code) {
			record.Entities = append(record.Entities, strings.TrimSpace(e.Country))
		}
	}
	return record, true
}
