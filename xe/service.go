package xe

import (
	"context"
	"fmt"
	"go-currency-checker"
	"io"
	"net/http"
	"net/url"
	"time"
)

const URLBase = "https://www.xe.com/currencyconverter/convert"

// Service wraps the xe.com currency converter page
type Service interface {
	// Convert returns the converted amount as a bare numeric string.
	Convert(ctx context.Context, amount checker.Amount, from checker.Currency, to checker.Currency) (string, error)
	// ExchangeRate returns the value of one unit of from, expressed in to.
	ExchangeRate(ctx context.Context, from checker.Currency, to checker.Currency) (string, error)
}

// Selectors locate the result fragments in the converter page.
// The page markup changes every now and then, so these are configuration.
type Selectors struct {
	// Conversion the element holding the converted amount
	Conversion string
	// Faded decorative trailing digits nested in the conversion element
	Faded string
	// Rate the element holding the "1 AAA = x BBB" line
	Rate string
}

// DefaultSelectors match the converter page markup at the time of writing.
var DefaultSelectors = Selectors{
	Conversion: ".iGrAod",
	Faded:      ".faded-digits",
	Rate:       ".dEqdnx p",
}

// service xe.com scraper
type service struct {
	// url converter page url, without query
	url string

	// userAgent sent with every request, xe.com rejects some default agents
	userAgent string

	selectors Selectors

	// client for HTTP requests
	client http.Client
}

// Option configures the Service.
type Option func(*service)

// WithURL overrides the converter page url.
func WithURL(u string) Option {
	return func(s *service) { s.url = u }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *service) { s.userAgent = ua }
}

// WithSelectors overrides the extraction selectors. Empty fields keep their default.
func WithSelectors(sel Selectors) Option {
	return func(s *service) {
		if sel.Conversion != "" {
			s.selectors.Conversion = sel.Conversion
		}
		if sel.Faded != "" {
			s.selectors.Faded = sel.Faded
		}
		if sel.Rate != "" {
			s.selectors.Rate = sel.Rate
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *service) { s.client.Timeout = d }
}

// NewService constructs a valid xe Service.
func NewService(opts ...Option) Service {
	s := &service{
		url:       URLBase,
		selectors: DefaultSelectors,
		client: http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert fetches the converter page for amount and extracts the converted amount.
func (s *service) Convert(ctx context.Context, amount checker.Amount, from checker.Currency, to checker.Currency) (string, error) {
	body, err := s.fetch(ctx, amount, from, to)
	if err != nil {
		return "", fmt.Errorf("convert [%v %v -> %v]: %w", amount, from, to, err)
	}
	defer body.Close()

	result, err := extractConversion(body, s.selectors)
	if err != nil {
		return "", fmt.Errorf("convert [%v %v -> %v]: %w", amount, from, to, err)
	}
	return result, nil
}

// ExchangeRate fetches the converter page for one unit and extracts the rate line.
func (s *service) ExchangeRate(ctx context.Context, from checker.Currency, to checker.Currency) (string, error) {
	body, err := s.fetch(ctx, "1", from, to)
	if err != nil {
		return "", fmt.Errorf("exchange rate [%v -> %v]: %w", from, to, err)
	}
	defer body.Close()

	result, err := extractRate(body, s.selectors)
	if err != nil {
		return "", fmt.Errorf("exchange rate [%v -> %v]: %w", from, to, err)
	}
	return result, nil
}

func (s *service) pageURL(amount checker.Amount, from checker.Currency, to checker.Currency) (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}
	q := u.Query()
	q.Set("Amount", string(amount))
	q.Set("From", string(from))
	q.Set("To", string(to))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fetch returns the body of a successful response. The caller closes it.
func (s *service) fetch(ctx context.Context, amount checker.Amount, from checker.Currency, to checker.Currency) (io.ReadCloser, error) {
	pageURL, err := s.pageURL(amount, from, to)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	if s.userAgent != "" {
		request.Header.Set("User-Agent", s.userAgent)
	}

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		httpResponse.Body.Close()
		return nil, fmt.Errorf("%w: status %d", checker.ErrRemoteRequestFailed, httpResponse.StatusCode)
	}
	return httpResponse.Body, nil
}
