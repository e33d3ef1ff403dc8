package main

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/fraction"
)

func newTestCalculator() *Calculator {
	logger, _ := test.NewNullLogger()
	return &Calculator{
		Digits:   6,
		Places:   -1,
		Rounding: fraction.RoundHalfUp,
		Log:      logger,
	}
}

func TestCalculator_Eval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			expr string
			want string
		}{
			{"1/3", "0.333333"},
			{"1.5e3", "1500"},
			{"NaN", "NaN"},
			{"-Infinity", "-Infinity"},
			{"1/3 + 1/6", "0.5"},
			{"1/10 - 1/3", "-0.233333"},
			{"2 * 3", "6"},
			{"1 / 0", "Infinity"},
			{"0 / 0", "NaN"},
			{"1/3 < 1/2", "true"},
			{"1/2 = 2/4", "true"},
			{"1 > 2", "false"},
			{"NaN = NaN", "true"},
			{"NaN < 1", "false"},
			{"50% = 1/2", "true"},
			{"12.5%", "12.5%"},
			{"12.5% + 1/8", "25%"},
			{"12.5% * 2", "25%"},
			{"USDC:1.5", "USDC 1.5"},
			{"USDC:100 * 12.5%", "USDC 12.5"},
			{"USDC:1.5 + USDC:2.25", "USDC 3.75"},
			{"usdc:3 - USDC:4.5", "USDC -1.5"},
			{"ETH:1 / 3", "ETH 0.333333"},
			{"sqrt 1000000", "1000"},
			{"sqrt 2", "1"},
			{"sqrt 0", "0"},
		}
		for _, tt := range tests {
			calc := newTestCalculator()
			got, err := calc.Eval(tt.expr)
			require.NoError(t, err, tt.expr)
			assert.Equal(t, tt.want, got, tt.expr)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			expr string
			want error
		}{
			{"", errSyntax},
			{"1 2 3 4", errSyntax},
			{"1 ^ 2", errSyntax},
			{"cos 1", errSyntax},
			{"abc", fraction.ErrParse},
			{"1 + x", fraction.ErrParse},
			{"%", fraction.ErrParse},
			{"BTC:1", errOperand},
			{"USDC:1 + 1", errOperand},
			{"USDC:1 + USDT:1", fraction.ErrCurrencyMismatch},
			{"sqrt 1.5", errOperand},
			{"sqrt NaN", errOperand},
			{"sqrt -4", fraction.ErrInvalidArgument},
		}
		for _, tt := range tests {
			calc := newTestCalculator()
			_, err := calc.Eval(tt.expr)
			assert.ErrorIs(t, err, tt.want, tt.expr)
		}
	})

	t.Run("fixed", func(t *testing.T) {
		calc := newTestCalculator()
		calc.Places = 2
		calc.Rounding = fraction.RoundDown
		calc.Format = fraction.NumberFormat{GroupSeparator: ","}

		got, err := calc.Eval("1234567 / 3")
		require.NoError(t, err)
		assert.Equal(t, "411,522.33", got)

		got, err = calc.Eval("12.3456%")
		require.NoError(t, err)
		assert.Equal(t, "12.34%", got)

		_, err = calc.Eval("XXX:1")
		assert.ErrorIs(t, err, fraction.ErrInvalidArgument)
	})

	t.Run("log", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(log.DebugLevel)
		calc := newTestCalculator()
		calc.Log = logger

		_, err := calc.Eval("1/4 + 1/4")
		require.NoError(t, err)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, "evaluated", hook.LastEntry().Message)
		assert.Equal(t, "0.5", hook.LastEntry().Data["result"])

		_, err = calc.Eval("1 +")
		require.Error(t, err)
		assert.Equal(t, "evaluation failed", hook.LastEntry().Message)
		assert.Len(t, hook.AllEntries(), 2)
	})
}

func TestRun(t *testing.T) {
	t.Run("expression", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer
		err := run([]string{"--sig", "4", "2/3"}, strings.NewReader(""), &out, logger)
		require.NoError(t, err)
		assert.Equal(t, "0.6667\n", out.String())
	})

	t.Run("words", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer
		err := run([]string{"--fixed", "3", "--group", " ", "1000000", "/", "7"}, strings.NewReader(""), &out, logger)
		require.NoError(t, err)
		assert.Equal(t, "142 857.143\n", out.String())
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("FRACCALC_ROUNDING", "down")
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer
		err := run([]string{"--sig", "4", "2/3"}, strings.NewReader(""), &out, logger)
		require.NoError(t, err)
		assert.Equal(t, "0.6666\n", out.String())
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("FRACCALC_ROUNDING", "down")
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer
		err := run([]string{"--rounding", "up", "--sig", "1", "1/8"}, strings.NewReader(""), &out, logger)
		require.NoError(t, err)
		assert.Equal(t, "0.2\n", out.String())
	})

	t.Run("lines", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer
		in := strings.NewReader("1/4\n\n1 / 0\nbad\nquit\n2\n")
		err := run(nil, in, &out, logger)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "0.25", lines[0])
		assert.Equal(t, "Infinity", lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "error: "), lines[2])
	})

	t.Run("verbose", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		var out bytes.Buffer
		err := run([]string{"-v", "1"}, strings.NewReader(""), &out, logger)
		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, logger.GetLevel())
		assert.NotEmpty(t, hook.AllEntries())
	})

	t.Run("error", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		var out bytes.Buffer

		err := run([]string{"--rounding", "even", "1"}, strings.NewReader(""), &out, logger)
		assert.ErrorIs(t, err, fraction.ErrParse)

		err = run([]string{"--unknown", "1"}, strings.NewReader(""), &out, logger)
		assert.Error(t, err)

		err = run([]string{"1 ^ 2"}, strings.NewReader(""), &out, logger)
		assert.ErrorIs(t, err, errSyntax)
		assert.Empty(t, out.String())
	})
}
