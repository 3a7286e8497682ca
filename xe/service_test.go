package xe

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-checker"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const conversionPage = `<html><body>
<div class="unit-rates">
	<p>1 USD = 0.921508 EUR</p>
	<p>1 EUR = 1.08518 USD</p>
</div>
<p class="result__BigRate iGrAod">92.15<span class="faded-digits">08</span> Euros</p>
</body></html>`

const ratePage = `<html><body>
<div class="dEqdnx"><p>1 USD = 0.921508 EUR</p><p>1 EUR = 1.08518 USD</p></div>
</body></html>`

func TestNewService_Defaults(t *testing.T) {
	s := NewService().(*service)

	assert.Equal(t, URLBase, s.url)
	assert.Equal(t, DefaultSelectors, s.selectors)
	assert.Equal(t, 10*time.Second, s.client.Timeout)
}

func TestService_Convert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "100", req.URL.Query().Get("Amount"))
		assert.Equal(t, "USD", req.URL.Query().Get("From"))
		assert.Equal(t, "EUR", req.URL.Query().Get("To"))
		assert.Equal(t, "currencychecker-test", req.Header.Get("User-Agent"))
		_, _ = rw.Write([]byte(conversionPage))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL), WithUserAgent("currencychecker-test"))

	result, err := s.Convert(context.Background(), "100", "USD", "EUR")

	assert.Nil(t, err)
	assert.Equal(t, "92.15", result)
}

func TestService_ConvertWithoutFadedDigits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`<p class="iGrAod">1,234.56 Japanese Yen</p>`))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL))

	result, err := s.Convert(context.Background(), "10", "USD", "JPY")

	assert.Nil(t, err)
	assert.Equal(t, "1234.56", result)
}

func TestService_ExchangeRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "1", req.URL.Query().Get("Amount"))
		assert.Equal(t, "USD", req.URL.Query().Get("From"))
		assert.Equal(t, "EUR", req.URL.Query().Get("To"))
		_, _ = rw.Write([]byte(ratePage))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL))

	rate, err := s.ExchangeRate(context.Background(), "USD", "EUR")

	assert.Nil(t, err)
	assert.Equal(t, "0.921508", rate)
}

func TestService_CustomSelectors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`<div id="rate"><span>1 GBP = 1.17 EUR</span></div>`))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL), WithSelectors(Selectors{Rate: "#rate span"}))

	rate, err := s.ExchangeRate(context.Background(), "GBP", "EUR")

	assert.Nil(t, err)
	assert.Equal(t, "1.17", rate)
}

func TestService_RemoteRequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL))

	_, err := s.Convert(context.Background(), "10", "USD", "XYZ")
	assert.True(t, errors.Is(err, checker.ErrRemoteRequestFailed))

	_, err = s.ExchangeRate(context.Background(), "USD", "XYZ")
	assert.True(t, errors.Is(err, checker.ErrRemoteRequestFailed))
}

func TestService_UnexpectedMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`<html><body><p class="something-else">92.15</p></body></html>`))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL))

	_, err := s.Convert(context.Background(), "10", "USD", "EUR")
	assert.True(t, errors.Is(err, checker.ErrUnexpectedMarkup))

	_, err = s.ExchangeRate(context.Background(), "USD", "EUR")
	assert.True(t, errors.Is(err, checker.ErrUnexpectedMarkup))
}

func TestService_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(10 * time.Millisecond)
		_, _ = rw.Write([]byte(conversionPage))
	}))
	defer server.Close()

	s := NewService(WithURL(server.URL), WithTimeout(1*time.Millisecond))

	_, err := s.Convert(context.Background(), "10", "USD", "EUR")

	var netErr net.Error
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestExtractRate_NoEqualsSign(t *testing.T) {
	_, err := extractRate(strings.NewReader(`<div class="dEqdnx"><p>rates unavailable</p></div>`), DefaultSelectors)
	assert.True(t, errors.Is(err, checker.ErrUnexpectedMarkup))
}

func TestNumeric(t *testing.T) {
	got, err := numeric(" 0.92 EUR")
	require.Nil(t, err)
	assert.Equal(t, "0.92", got)

	_, err = numeric("Euros")
	assert.True(t, errors.Is(err, checker.ErrUnexpectedMarkup))
}

func TestLoggingService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(conversionPage))
	}))
	defer server.Close()

	var buf strings.Builder
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(WithURL(server.URL)))

	result, err := s.Convert(context.Background(), "100", "USD", "EUR")

	assert.Nil(t, err)
	assert.Equal(t, "92.15", result)
	assert.Contains(t, buf.String(), "method=convert")
	assert.Contains(t, buf.String(), "result=92.15")
}
