// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import "strings"

// reservedKeys holds the property names defined by the EditorConfig
// format. Values of these properties are case-insensitive and stored
// lower-cased. The set only ever grows between versions.
var reservedKeys = map[string]struct{}{
	"root":                     {},
	"indent_style":             {},
	"indent_size":              {},
	"tab_width":                {},
	"end_of_line":              {},
	"charset":                  {},
	"trim_trailing_whitespace": {},
	"insert_final_newline":     {},
}

// unsetValue is the sentinel that removes a property from consideration
// in downstream tooling. It is case-insensitive for any key.
const unsetValue = "unset"

// isReservedKey reports whether key (already lower-cased) names a
// property defined by the EditorConfig format.
func isReservedKey(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// isReservedValue reports whether raw equals a reserved sentinel value,
// ignoring case.
func isReservedValue(raw string) bool {
	return strings.EqualFold(raw, unsetValue)
}
