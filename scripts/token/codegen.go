package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"text/template"
)

type token struct {
	Name     string
	Symbol   string
	Decimals uint8
	Wrapped  string
}

// columns lists the header fields of token_data.csv in the order they are
// stored in token.
var columns = []string{"Name", "Symbol", "Decimals", "Wrapped"}

func main() {
	dir := filepath.Join("scripts", "token")
	if err := generate(
		filepath.Join(dir, "token_data.csv"),
		filepath.Join(dir, "token_data.tmpl"),
		"token_data.go",
	); err != nil {
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
}

// generate renders the token table in src through the template tmpl and
// writes the formatted Go source to dst.
func generate(src, tmpl, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	toks, err := decodeTokens(in)
	if err != nil {
		return fmt.Errorf("reading %v: %w", src, err)
	}

	t, err := template.ParseFiles(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, toks); err != nil {
		return fmt.Errorf("executing %v: %w", tmpl, err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %v: %w", dst, err)
	}
	return os.WriteFile(dst, code, 0o644)
}

// decodeTokens reads token records, checks them and orders them by symbol
// with the unknown asset XXX first, so that it becomes the zero Token.
func decodeTokens(r io.Reader) ([]token, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(columns)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, columns) {
		return nil, fmt.Errorf("header %q, want %q", header, columns)
	}

	var toks []token
	seen := map[string]bool{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		dec, err := strconv.ParseUint(rec[2], 10, 7)
		if err != nil {
			return nil, fmt.Errorf("token %v: invalid decimals %q", rec[1], rec[2])
		}
		if seen[rec[1]] {
			return nil, fmt.Errorf("token %v: duplicate symbol", rec[1])
		}
		seen[rec[1]] = true
		tok := token{Name: rec[0], Symbol: rec[1], Decimals: uint8(dec), Wrapped: rec[3]}
		if tok.Wrapped == "" {
			tok.Wrapped = tok.Symbol
		}
		toks = append(toks, tok)
	}

	for _, tok := range toks {
		if !seen[tok.Wrapped] {
			return nil, fmt.Errorf("token %v: unknown wrapped token %q", tok.Symbol, tok.Wrapped)
		}
	}
	if !seen["XXX"] {
		return nil, fmt.Errorf("missing unknown asset XXX")
	}
	slices.SortFunc(toks, func(a, b token) int {
		switch {
		case a.Symbol == b.Symbol:
			return 0
		case a.Symbol == "XXX":
			return -1
		case b.Symbol == "XXX":
			return 1
		case a.Symbol < b.Symbol:
			return -1
		}
		return 1
	})
	return toks, nil
}
