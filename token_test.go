package fraction

import (
	"errors"
	"fmt"
	"testing"
)

func TestToken_Interfaces(t *testing.T) {
	var i any = XXX
	_, ok := i.(Asset)
	if !ok {
		t.Errorf("%T does not implement Asset", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
}

func TestParseToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			symbol string
			want   Token
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"usdc", USDC},
			{"USDC", USDC},
			{"eth", ETH},
			{"ETH", ETH},
			{"wmatic", WMATIC},
			{"WMATIC", WMATIC},
			{"Usdc", USDC},
			{"wEtH", WETH},
		}
		for _, tt := range tests {
			got, err := ParseToken(tt.symbol)
			if err != nil {
				t.Errorf("ParseToken(%q) failed: %v", tt.symbol, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseToken(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "BTC", "$", "USD", "0", " USDC", "USDC ",
		}
		for _, tt := range tests {
			_, err := ParseToken(tt)
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseToken(%q) did not fail with ErrParse: %v", tt, err)
			}
		}
	})
}

func TestMustParseToken(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseToken(\"UUU\") did not panic")
			}
		}()
		MustParseToken("UUU")
	})
}

func TestToken_Decimals(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		{XXX, 0},
		{USDC, 6},
		{USDT, 6},
		{WBTC, 8},
		{ETH, 18},
		{DAI, 18},
		{WETH, 18},
	}
	for _, tt := range tests {
		got := tt.tok.Decimals()
		if got != tt.want {
			t.Errorf("%v.Decimals() = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestToken_Name(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{XXX, "Unknown Asset"},
		{USDC, "USD Coin"},
		{ETH, "Ether"},
		{WETH, "Wrapped Ether"},
	}
	for _, tt := range tests {
		got := tt.tok.Name()
		if got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestToken_Wrapped(t *testing.T) {
	tests := []struct {
		tok    Token
		want   Token
		native bool
	}{
		{XXX, XXX, false},
		{ETH, WETH, true},
		{BNB, WBNB, true},
		{MATIC, WMATIC, true},
		{WETH, WETH, false},
		{USDC, USDC, false},
	}
	for _, tt := range tests {
		got := tt.tok.Wrapped()
		if !got.Equal(tt.want) {
			t.Errorf("%v.Wrapped() = %v, want %v", tt.tok, got, tt.want)
		}
		if native := tt.tok.IsNative(); native != tt.native {
			t.Errorf("%v.IsNative() = %v, want %v", tt.tok, native, tt.native)
		}
	}
}

// otherAsset is an asset that is not a token.
type otherAsset struct{}

func (otherAsset) Decimals() int { return 6 }

func (otherAsset) Equal(a Asset) bool {
	_, ok := a.(otherAsset)
	return ok
}

func (a otherAsset) Wrapped() Asset { return a }

func (otherAsset) String() string { return "OTHER" }

func TestToken_Equal(t *testing.T) {
	tests := []struct {
		tok   Token
		other Asset
		want  bool
	}{
		{USDC, USDC, true},
		{USDC, USDT, false},
		{USDC, otherAsset{}, false},
		{XXX, XXX, true},
	}
	for _, tt := range tests {
		got := tt.tok.Equal(tt.other)
		if got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.tok, tt.other, got, tt.want)
		}
	}
}

func TestToken_Format(t *testing.T) {
	tests := []struct {
		tok          Token
		format, want string
	}{
		// %T verb
		{USDC, "%T", "fraction.Token"},
		// %q verb
		{USDC, "%q", "\"USDC\""},
		{USDC, "%7q", " \"USDC\""},
		{USDC, "%07q", " \"USDC\""}, // '0' is ignored
		{USDC, "%-8q", "\"USDC\"  "},
		// %s verb
		{ETH, "%s", "ETH"},
		{ETH, "%5s", "  ETH"},
		{ETH, "%+5s", "  ETH"}, // '+' is ignored
		{ETH, "%-5s", "ETH  "},
		// %v verb
		{WBTC, "%v", "WBTC"},
		{WBTC, "%6v", "  WBTC"},
		{WBTC, "%-6v", "WBTC  "},
		// %c verb
		{XXX, "%c", "XXX"},
		{DAI, "%#5c", "  DAI"}, // '#' is ignored
		// wrong verbs
		{USDC, "%b", "%!b(fraction.Token=USDC)"},
		{USDC, "%8d", "%!d(fraction.Token=USDC)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.tok)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.tok, got, tt.want)
		}
	}
}
