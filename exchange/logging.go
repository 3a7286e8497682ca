package exchange

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-checker"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, req checker.Request) (result string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", req.Amount,
			"from", req.Source,
			"to", req.Target,
			"converted_amount", result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, req)
}

func (s *loggingService) ExchangeRate(ctx context.Context, req checker.Request) (rate string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange_rate",
			"from", req.Source,
			"to", req.Target,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRate(ctx, req)
}
