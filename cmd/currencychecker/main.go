package main

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-checker/cli"
	"go-currency-checker/config"
	"go-currency-checker/exchange"
	"go-currency-checker/iso"
	"go-currency-checker/xe"
	"os"
)

func main() {
	c := cli.New(os.Stdout, os.Stderr, setup)
	os.Exit(c.Run(context.Background(), os.Args[1:]))
}

// setup wires config, the log file and the decorated services.
func setup(path string) (cli.Dependencies, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cli.Dependencies{}, err
	}

	w, err := cli.OpenLog(cfg.Log.File)
	if err != nil {
		return cli.Dependencies{}, err
	}
	logger, err := cli.NewLogger(w, cfg.Log.Level)
	if err != nil {
		w.Close()
		return cli.Dependencies{}, err
	}

	xeService := xe.NewService(
		xe.WithURL(cfg.XE.URL),
		xe.WithUserAgent(cfg.XE.UserAgent),
		xe.WithTimeout(cfg.XE.Timeout),
		xe.WithSelectors(xe.Selectors{
			Conversion: cfg.XE.ConversionSelector,
			Faded:      cfg.XE.FadedSelector,
			Rate:       cfg.XE.RateSelector,
		}),
	)
	xeService = xe.NewLoggingService(level.Debug(log.With(logger, "component", "xe_scraper")), xeService)

	exchangeService := exchange.NewService(xeService)
	exchangeService = exchange.NewLoggingService(level.Debug(log.With(logger, "component", "exchange")), exchangeService)

	isoService := iso.NewService(cfg.ISO.URL, cfg.ISO.Timeout)
	isoService = iso.NewLoggingService(level.Debug(log.With(logger, "component", "iso_list")), isoService)

	return cli.Dependencies{
		Exchange: exchangeService,
		ISO:      isoService,
		Logger:   logger,
		Close:    w.Close,
	}, nil
}
