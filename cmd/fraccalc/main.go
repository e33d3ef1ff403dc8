// Command fraccalc evaluates exact rational expressions.
//
//	fraccalc [flags] EXPR
//	fraccalc [flags]
//
// Without an expression it reads one expression per line, with an
// interactive prompt when standard input is a terminal.
//
// Every flag can also be set with a FRACCALC_ environment variable,
// e.g. FRACCALC_ROUNDING=down, or in a fraccalc.yaml file in the working
// directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/govalues/fraction"
)

func main() {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := pflag.NewFlagSet("fraccalc", pflag.ContinueOnError)
	fs.Int("sig", 6, "number of significant digits")
	fs.Int("fixed", -1, "number of digits after the decimal point, overrides --sig if not negative")
	fs.String("rounding", "half-up", "rounding mode: down, half-up or up")
	fs.String("group", "", "separator between groups of digits in the integer part")
	fs.BoolP("verbose", "v", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v, err := loadConfig(fs)
	if err != nil {
		return err
	}
	if v.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	calc, err := newCalculator(v, logger)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		out, err := calc.Eval(strings.Join(fs.Args(), " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	if f, ok := stdin.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		return interact(calc, f, stdout)
	}
	return loop(calc, newScanner(stdin), stdout)
}

// loadConfig layers the flags over FRACCALC_* environment variables and an
// optional fraccalc.yaml file.
func loadConfig(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("fraccalc")
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	v.SetConfigName("fraccalc")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

func newCalculator(v *viper.Viper, logger log.FieldLogger) (*Calculator, error) {
	rounding, err := fraction.ParseRounding(v.GetString("rounding"))
	if err != nil {
		return nil, err
	}
	calc := &Calculator{
		Digits:   v.GetInt("sig"),
		Places:   v.GetInt("fixed"),
		Rounding: rounding,
		Format:   fraction.NumberFormat{GroupSeparator: v.GetString("group")},
		Log:      logger,
	}
	logger.WithFields(log.Fields{
		"sig":      calc.Digits,
		"fixed":    calc.Places,
		"rounding": calc.Rounding,
		"group":    calc.Format.GroupSeparator,
	}).Debug("configured")
	return calc, nil
}
