package fraction

import (
	"fmt"
	"strings"
)

//go:generate go run scripts/token/codegen.go

// Asset is the identity of whatever an [Amount] counts: a token, a coin or
// any other unit with a fixed number of decimal places.
type Asset interface {
	// Decimals returns the number of digits after the decimal point of the
	// asset's human-readable representation. Raw amounts are expressed in
	// units of 10^-Decimals.
	Decimals() int
	// Equal reports whether both values identify the same asset.
	Equal(Asset) bool
	// Wrapped returns the canonical token form of the asset, for example
	// wrapped ether for ether. Assets that are already canonical return
	// themselves.
	Wrapped() Asset
}

// Token type represents a well-known asset and implements the [Asset] interface.
// The zero value is [XXX], which indicates an unknown asset with no decimals.
//
// Token is implemented as an integer index into an in-memory array that
// stores the symbol, name, number of decimals and wrapped counterpart.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Token value.
//
// When persisting a token value, use the symbol returned by the
// [Token.Symbol] method, rather than the integer index, as mapping between
// index and a particular token may change in future versions.
type Token uint8

var errInvalidToken = fmt.Errorf("invalid token: %w", ErrParse)

// ParseToken converts a string to a token.
// The symbol is matched case-insensitively:
//
//	USDC
//	usdc
//	Usdc
//
// ParseToken returns an error wrapping [ErrParse] if the string is not a
// known symbol.
func ParseToken(symbol string) (Token, error) {
	t, ok := tokenLookup[strings.ToUpper(symbol)]
	if !ok {
		return XXX, fmt.Errorf("parsing %q: %w", symbol, errInvalidToken)
	}
	return t, nil
}

// MustParseToken is like [ParseToken] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding tokens.
func MustParseToken(symbol string) Token {
	t, err := ParseToken(symbol)
	if err != nil {
		panic(fmt.Sprintf("ParseToken(%q) failed: %v", symbol, err))
	}
	return t
}

// Symbol returns the ticker symbol of the token, e.g. "USDC".
func (t Token) Symbol() string {
	return symbolLookup[t]
}

// Name returns the human-readable name of the token, e.g. "USD Coin".
func (t Token) Name() string {
	return nameLookup[t]
}

// Decimals implements the [Asset] interface.
// Stablecoins such as [USDC] use 6 decimals, [WBTC] uses 8 and most
// other tokens use 18.
func (t Token) Decimals() int {
	return int(decimalsLookup[t])
}

// IsNative returns true for the native coin of a chain, such as [ETH],
// which has a separate wrapped token.
func (t Token) IsNative() bool {
	return wrappedLookup[t] != t
}

// Wrapped implements the [Asset] interface.
// Native coins return their wrapped token, other tokens return themselves.
func (t Token) Wrapped() Asset {
	return wrappedLookup[t]
}

// Equal implements the [Asset] interface.
func (t Token) Equal(a Asset) bool {
	u, ok := a.(Token)
	return ok && t == u
}

// String implements the [fmt.Stringer] interface and returns the symbol.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Token) String() string {
	return t.Symbol()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description   |
//	| ---------- | ------- | ------------- |
//	| %c, %s, %v | USDC    | Symbol        |
//	| %q         | "USDC"  | Quoted symbol |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (t Token) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, t.Symbol())
	case 'q', 'Q':
		writePadded(state, `"`+t.Symbol()+`"`)
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(fraction.Token=%s)", verb, t.Symbol())
	}
}
