package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/govalues/fraction"
)

var (
	errSyntax  = errors.New("syntax error")
	errOperand = errors.New("invalid operand")
)

// formatter is implemented by fraction.Fraction, fraction.Percent and
// fraction.Amount.
type formatter interface {
	ToSignificant(digits int, rounding fraction.Rounding) (string, error)
	ToFixed(places int, rounding fraction.Rounding) (string, error)
}

// Calculator evaluates one expression per call:
//
//	x
//	x OP y    with OP one of + - * / < = >
//	sqrt x
//
// Operands are decimals ("1.5", "2e3"), fractions ("1/3"), the special
// values "NaN", "Infinity" and "-Infinity", percents ("12.5%") and token
// amounts ("USDC:1.5").
type Calculator struct {
	Digits   int // significant digits, used when Places is negative
	Places   int // digits after the decimal point
	Rounding fraction.Rounding
	Format   fraction.NumberFormat
	Log      log.FieldLogger
}

// Eval evaluates expr and renders the result.
func (c *Calculator) Eval(expr string) (string, error) {
	out, err := c.eval(strings.Fields(expr))
	if err != nil {
		c.logger().WithField("expr", expr).WithError(err).Debug("evaluation failed")
		return "", fmt.Errorf("evaluating %q: %w", expr, err)
	}
	c.logger().WithFields(log.Fields{"expr": expr, "result": out}).Debug("evaluated")
	return out, nil
}

func (c *Calculator) logger() log.FieldLogger {
	if c.Log == nil {
		return log.StandardLogger()
	}
	return c.Log
}

func (c *Calculator) eval(tokens []string) (string, error) {
	switch len(tokens) {
	case 1:
		x, err := parseOperand(tokens[0])
		if err != nil {
			return "", err
		}
		return c.render(x)
	case 2:
		if tokens[0] != "sqrt" {
			return "", fmt.Errorf("unknown function %q: %w", tokens[0], errSyntax)
		}
		x, err := parseOperand(tokens[1])
		if err != nil {
			return "", err
		}
		return c.sqrt(x)
	case 3:
		x, err := parseOperand(tokens[0])
		if err != nil {
			return "", err
		}
		y, err := parseOperand(tokens[2])
		if err != nil {
			return "", err
		}
		switch op := tokens[1]; op {
		case "<", "=", ">":
			return fmt.Sprint(compare(op, x, y)), nil
		default:
			z, err := apply(op, x, y)
			if err != nil {
				return "", err
			}
			return c.render(z)
		}
	}
	return "", fmt.Errorf("%v tokens: %w", len(tokens), errSyntax)
}

// parseOperand converts a single token to a fraction, a percent or an amount.
func parseOperand(s string) (fraction.Rational, error) {
	if sym, amt, ok := strings.Cut(s, ":"); ok {
		tok, err := fraction.ParseToken(sym)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errOperand, err)
		}
		return fraction.ParseAmount(tok, amt)
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		return fraction.ParsePercent(p)
	}
	return fraction.Coerce(s)
}

// apply keeps the type of the left operand, so a percent plus a fraction is
// a percent and an amount times a percent is an amount.
func apply(op string, x, y fraction.Rational) (fraction.Rational, error) {
	switch x := x.(type) {
	case fraction.Amount:
		switch op {
		case "+", "-":
			b, ok := y.(fraction.Amount)
			if !ok {
				return nil, fmt.Errorf("%v %v %v: %w", x, op, y, errOperand)
			}
			if op == "+" {
				return x.Add(b)
			}
			return x.Sub(b)
		case "*":
			return x.Mul(y), nil
		case "/":
			return x.Quo(y), nil
		}
	case fraction.Percent:
		switch op {
		case "+":
			return x.Add(y), nil
		case "-":
			return x.Sub(y), nil
		case "*":
			return x.Mul(y), nil
		case "/":
			return x.Quo(y), nil
		}
	default:
		f := x.Fraction()
		switch op {
		case "+":
			return f.Add(y), nil
		case "-":
			return f.Sub(y), nil
		case "*":
			return f.Mul(y), nil
		case "/":
			return f.Quo(y), nil
		}
	}
	return nil, fmt.Errorf("unknown operator %q: %w", op, errSyntax)
}

// compare compares raw values: amounts are compared in their smallest units.
func compare(op string, x, y fraction.Rational) bool {
	f := x.Fraction()
	switch op {
	case "<":
		return f.Less(y)
	case ">":
		return f.Greater(y)
	}
	return f.Equal(y)
}

func (c *Calculator) sqrt(x fraction.Rational) (string, error) {
	f := x.Fraction()
	q, ok := f.Quotient()
	if r, _ := f.Remainder(); !ok || !r.IsZero() {
		return "", fmt.Errorf("sqrt(%v): not an integer: %w", f, errOperand)
	}
	z, err := fraction.Sqrt(q)
	if err != nil {
		return "", err
	}
	return c.Format.Apply(z.String()), nil
}

func (c *Calculator) render(x fraction.Rational) (string, error) {
	var v formatter = x.Fraction()
	prefix, suffix := "", ""
	switch x := x.(type) {
	case fraction.Percent:
		v, suffix = x, "%"
	case fraction.Amount:
		v, prefix = x, fmt.Sprintf("%v ", x.Asset())
	}

	var s string
	var err error
	if c.Places >= 0 {
		s, err = v.ToFixed(c.Places, c.Rounding)
	} else {
		s, err = v.ToSignificant(c.Digits, c.Rounding)
	}
	if err != nil {
		return "", err
	}
	return prefix + c.Format.Apply(s) + suffix, nil
}
