// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseSignals expands a signal declaration string into a Signal list.
// Declarations are comma separated names with an optional width in bits:
//
//	ParseSignals("reset, clk, data[32]")
//	// []Signal{{"reset", 1}, {"clk", 1}, {"data", 32}}
//
// Names start with a letter or underscore and continue with letters, digits
// or underscores. Widths must be between 1 and 64.
//
func ParseSignals(decl string) ([]Signal, error) {
	var out []Signal

	seen := make(map[string]bool)
	for _, field := range strings.Split(decl, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, errors.Errorf("in %q: empty signal declaration", decl)
		}
		sig := Signal{Name: field, Width: 1}
		if b := strings.IndexRune(field, '['); b >= 0 {
			if !strings.HasSuffix(field, "]") {
				return nil, errors.Errorf("in %q: missing close bracket after %q", decl, field)
			}
			sig.Name = field[:b]
			w := 0
			for _, r := range field[b+1 : len(field)-1] {
				if r < '0' || r > '9' {
					return nil, errors.Errorf("in %q: bad width in %q", decl, field)
				}
				w = w*10 + int(r-'0')
			}
			if w < 1 || w > 64 {
				return nil, errors.Errorf("in %q: width %d out of range", decl, w)
			}
			sig.Width = w
		}
		if !validName(sig.Name) {
			return nil, errors.Errorf("in %q: invalid signal name %q", decl, sig.Name)
		}
		if seen[sig.Name] {
			return nil, errors.Errorf("in %q: duplicate signal %q", decl, sig.Name)
		}
		seen[sig.Name] = true
		out = append(out, sig)
	}
	return out, nil
}

func validName(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
