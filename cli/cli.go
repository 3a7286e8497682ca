// Package cli implements the currencychecker command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"go-currency-checker"
	"go-currency-checker/exchange"
	"go-currency-checker/format"
	"go-currency-checker/iso"
	"go-currency-checker/validate"
	"io"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Dependencies the services a command needs.
type Dependencies struct {
	Exchange exchange.Service
	ISO      iso.Service
	Logger   log.Logger
	// Close releases whatever Setup acquired, e.g. the log file. May be nil.
	Close func() error
}

// Setup builds the Dependencies from the config file at path, "" meaning environment only.
// It runs at most once per Run: before the command executes, or after a rejected
// command line so the rejection still reaches the log. Services are never called
// for bad input.
type Setup func(path string) (Dependencies, error)

// CLI the currencychecker command tree
type CLI struct {
	out       io.Writer
	errOut    io.Writer
	setup     Setup
	validator *validate.Validator

	deps       Dependencies
	loaded     bool
	configPath string
	verbose    bool
}

// New constructs a CLI printing results to out and errors to errOut.
func New(out io.Writer, errOut io.Writer, setup Setup) *CLI {
	return &CLI{
		out:       out,
		errOut:    errOut,
		setup:     setup,
		validator: validate.New(),
		deps:      Dependencies{Logger: log.NewNopLogger()},
	}
}

// Run executes the command line args and returns the process exit status.
func (c *CLI) Run(ctx context.Context, args []string) int {
	root := c.command()
	root.SetArgs(args)

	code := ExitOK
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, checker.ErrInvalidArgument) {
			// the command line was rejected before the logger was built
			if lerr := c.load(root.Name()); lerr != nil {
				fmt.Fprintln(c.errOut, "Error:", lerr)
			}
		}
		level.Error(c.deps.Logger).Log("msg", "command failed", "err", err)
		code = c.report(err)
	}
	c.close()
	return code
}

func (c *CLI) close() {
	if c.deps.Close == nil {
		return
	}
	level.Info(c.deps.Logger).Log("msg", "STOP - CURRENCY CHECKER")
	if err := c.deps.Close(); err != nil {
		fmt.Fprintln(c.errOut, "Error: closing log:", err)
	}
}

// load runs setup once and logs the start of the invocation.
func (c *CLI) load(command string) error {
	if c.loaded {
		return nil
	}
	c.loaded = true

	deps, err := c.setup(c.configPath)
	if err != nil {
		return err
	}
	if deps.Logger == nil {
		deps.Logger = log.NewNopLogger()
	}
	c.deps = deps
	level.Info(c.deps.Logger).Log("msg", "START - CURRENCY CHECKER", "command", command)
	if c.verbose {
		level.Debug(c.deps.Logger).Log("msg", "set verbose on")
	}
	return nil
}

// report prints err for the user and maps it to an exit status.
func (c *CLI) report(err error) int {
	switch {
	case errors.Is(err, checker.ErrInvalidArgument):
		fmt.Fprintln(c.errOut, "Error:", err)
		fmt.Fprintln(c.errOut, "Run 'currencychecker --help' for usage.")
		return ExitUsage
	case errors.Is(err, checker.ErrRemoteRequestFailed):
		fmt.Fprintln(c.errOut, "Error: currency code invalid:", err)
		return ExitFailure
	default:
		fmt.Fprintln(c.errOut, "Error:", err)
		return ExitFailure
	}
}

func (c *CLI) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "currencychecker",
		Short:         "Currency Checker",
		Long:          "Currency Checker converts amounts, checks exchange rates and looks up ISO 4217 currency codes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd.Name())
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", checker.ErrInvalidArgument, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: missing valid command", checker.ErrInvalidArgument)
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", checker.ErrInvalidArgument, err)
	})
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Adds output verbosity")

	root.AddCommand(c.convertCommand(), c.rateCommand(), c.isoCommand())
	return root
}

func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert A S T",
		Aliases: []string{"x"},
		Short:   "Converts the amount A from source currency S to target currency T",
		Args:    positional(3, c.validator.ConvertArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			level.Info(c.deps.Logger).Log("msg", "currency conversion")
			req := checker.Request{
				Amount:  checker.Amount(args[0]),
				Source:  checker.Currency(args[1]).Normalize(),
				Target:  checker.Currency(args[2]).Normalize(),
				Verbose: c.verbose,
			}

			result, err := c.deps.Exchange.Convert(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.print(format.Conversion(req, result))
		},
	}
}

func (c *CLI) rateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rate S T",
		Aliases: []string{"r", "exchange-rate"},
		Short:   "Checks the exchange rate from source currency S to target currency T",
		Args:    positional(2, c.validator.RateArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			level.Info(c.deps.Logger).Log("msg", "currency exchange rate")
			req := checker.Request{
				Source:  checker.Currency(args[0]).Normalize(),
				Target:  checker.Currency(args[1]).Normalize(),
				Verbose: c.verbose,
			}

			rate, err := c.deps.Exchange.ExchangeRate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.print(format.Rate(req, rate))
		},
	}
}

func (c *CLI) isoCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "iso C",
		Aliases: []string{"i"},
		Short:   "Looks up the ISO 4217 entry of the alphabetic or numeric currency code C",
		Args:    positional(1, c.validator.ISOArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			level.Info(c.deps.Logger).Log("msg", "iso lookup")
			code := checker.Currency(args[0]).Normalize()

			record, err := c.deps.ISO.Lookup(cmd.Context(), code)
			if err != nil {
				return err
			}
			return c.print(format.ISO(code, record, c.verbose))
		},
	}
}

func (c *CLI) print(result string) error {
	level.Info(c.deps.Logger).Log("msg", "result", "value", result)
	_, err := fmt.Fprintln(c.out, result)
	return err
}

// positional checks the argument count, then each argument against its indexed rule.
func positional(n int, rule func(i int, s string) error) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d arguments, got %d", checker.ErrInvalidArgument, cmd.Name(), n, len(args))
		}
		return validate.All(args, rule)
	}
}
