// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestParseIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.String().Draw(t, "source")
		first := ParseString(source)
		second := ParseString(source)
		if !first.Equal(second) {
			t.Errorf("re-parsing %q produced a different result", source)
		}
		fromReader, err := Parse(strings.NewReader(source))
		if err != nil {
			t.Fatalf("Parse(%q): %v", source, err)
		}
		if !fromReader.Equal(first) {
			t.Errorf("Parse and ParseString disagree on %q: %v vs %v",
				source, fromReader.Keys(), first.Keys())
		}
	})
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.String(), 0, 20).Draw(t, "lines")
		// Garbage input yields a usable (possibly empty) result.
		p := ParseLines(lines)
		for _, k := range p.Keys() {
			if k != strings.ToLower(k) {
				t.Errorf("key %q is not lower-cased", k)
			}
		}
	})
}

func TestLookupIgnoresKeyCase(t *testing.T) {
	keyGen := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_.-]{0,15}`)
	valueGen := rapid.StringMatching(`[a-zA-Z0-9][a-zA-Z0-9 ]{0,15}`)
	rapid.Check(t, func(t *rapid.T) {
		key := keyGen.Draw(t, "key")
		value := valueGen.Draw(t, "value")
		p := ParseString(key + " = " + value + "\n")

		for _, query := range []string{key, strings.ToUpper(key), strings.ToLower(key)} {
			got, ok := p.Lookup(query)
			if !ok {
				t.Fatalf("Lookup(%q) reported absent", query)
			}
			want := strings.TrimSpace(value)
			if isReservedKey(strings.ToLower(key)) || isReservedValue(want) {
				want = strings.ToLower(want)
			}
			if got != want {
				t.Errorf("Lookup(%q) = %q; want %q", query, got, want)
			}
		}
	})
}

func TestCommentsAndBlanksYieldEmpty(t *testing.T) {
	lineGen := rapid.OneOf(
		rapid.StringMatching(`[ \t]*`),
		rapid.StringMatching(`[ \t]*[#;][ -~]*`),
	)
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 0, 30).Draw(t, "lines")
		if p := ParseLines(lines); !p.IsEmpty() {
			t.Errorf("ParseLines(%q) = %v; want empty", lines, p.Keys())
		}
	})
}
