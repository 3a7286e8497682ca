package iso

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-checker"
	"time"
)

// loggingService decorates an iso.Service with logging
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

func (s *loggingService) Lookup(ctx context.Context, code checker.Currency) (record checker.ISORecord, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "lookup",
			"code", code,
			"result", record,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lookup(ctx, code)
}
