// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLineSize is the longest source line Parse extracts a property
// from. Longer lines are skipped like any other pathological input;
// scanning continues on the next line.
const maxLineSize = 1 << 20

// Parse reads EditorConfig text from r and returns its properties.
// Malformed lines never cause an error; they are skipped. A non-nil
// error reflects a failure of the underlying reader, and the properties
// parsed up to that point are still returned.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*Properties, error) {
	br := bufio.NewReader(r)
	m := make(map[string]string)
	line := make([]byte, 0, 256)
	discard := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !discard {
			if len(line)+len(chunk) > maxLineSize {
				discard = true
			} else {
				line = append(line, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			// Line continues past the reader's buffer.
			continue
		}
		if err != nil && err != io.EOF {
			return &Properties{m: m}, fmt.Errorf("parse editorconfig: %w", err)
		}
		if !discard {
			if key, value, ok := parseLine(line); ok {
				// Last occurrence wins.
				m[key] = value
			}
		}
		line = line[:0]
		discard = false
		if err == io.EOF {
			return &Properties{m: m}, nil
		}
	}
}

// ParseString returns the properties of EditorConfig text held in
// memory. Lines are delimited by '\n', with an optional preceding '\r'.
// ParseString cannot fail.
func ParseString(text string) *Properties {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines returns the properties declared across the given source
// lines. Each element is treated as one line of an EditorConfig file.
func ParseLines(lines []string) *Properties {
	m := make(map[string]string)
	for _, line := range lines {
		key, value, ok := parseLine([]byte(line))
		if !ok {
			continue
		}
		m[key] = value
	}
	return &Properties{m: m}
}

// parseLine classifies one source line and, if it declares a property,
// extracts the normalized key and value. ok is false for blank lines,
// comments, and anything else that is not a property (section headers,
// malformed text). The scan is a single forward pass over the line.
func parseLine(line []byte) (key, value string, ok bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		// Blank.
		return "", "", false
	}
	if line[0] == '#' || line[0] == ';' {
		// Comment. Leading whitespace was already trimmed, so an
		// indented comment lands here too.
		return "", "", false
	}

	// Key: a run of word characters plus '.', '-', '_'.
	end := 0
	for end < len(line) {
		r, size := utf8.DecodeRune(line[end:])
		if !isKeyRune(r) {
			break
		}
		end += size
	}
	if end == 0 {
		return "", "", false
	}
	rawKey := line[:end]

	// Separator: '=' or ':', optionally preceded by whitespace.
	rest := bytes.TrimLeftFunc(line[end:], unicode.IsSpace)
	if len(rest) == 0 || (rest[0] != '=' && rest[0] != ':') {
		return "", "", false
	}

	// Value: everything after the separator up to a trailing comment.
	// An inline '#' or ';' always starts a comment, so neither byte can
	// appear inside a stored value.
	rawValue := rest[1:]
	if i := bytes.IndexAny(rawValue, "#;"); i != -1 {
		rawValue = rawValue[:i]
	}
	rawValue = bytes.TrimSpace(rawValue)

	return normalize(string(rawKey), string(rawValue))
}

// normalize applies the format's case rules: keys are always
// lower-cased; values are lower-cased only for keys defined by the
// format and for the "unset" sentinel. strings.ToLower performs
// Unicode simple case folding with no locale input, so the result does
// not depend on the ambient locale.
func normalize(key, value string) (string, string, bool) {
	key = strings.ToLower(key)
	if isReservedKey(key) || isReservedValue(value) {
		value = strings.ToLower(value)
	}
	return key, value, true
}

func isKeyRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_'
}
