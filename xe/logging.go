package xe

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-checker"
	"time"
)

// loggingService decorates a xe.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount checker.Amount, from checker.Currency, to checker.Currency) (result string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"result", result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *loggingService) ExchangeRate(ctx context.Context, from checker.Currency, to checker.Currency) (rate string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange_rate",
			"from", from,
			"to", to,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRate(ctx, from, to)
}
