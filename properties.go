// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"maps"
	"sort"
	"strings"
)

// Properties is a set of EditorConfig properties: a mapping from
// lower-cased keys to values. Properties are immutable once constructed
// and can be read by multiple concurrent goroutines. The zero value and
// nil are both empty.
type Properties struct {
	m map[string]string
}

// Empty is a Properties with no entries. It is returned by ParseFile
// when no file exists at the given path.
var Empty = new(Properties)

// Lookup returns the value associated with the given key and reports
// whether the key is present. The key may be given in any casing.
// A present key with an empty value yields ("", true).
func (p *Properties) Lookup(key string) (value string, ok bool) {
	if p == nil {
		return "", false
	}
	value, ok = p.m[strings.ToLower(key)]
	return value, ok
}

// Get returns the value associated with the given key, or the empty
// string if the key is not present. The key may be given in any casing.
func (p *Properties) Get(key string) string {
	value, _ := p.Lookup(key)
	return value
}

// Len returns the number of properties in the set.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.m)
}

// IsEmpty reports whether the set has no properties.
func (p *Properties) IsEmpty() bool {
	return p.Len() == 0
}

// Keys returns the lower-cased keys of the set in sorted order.
func (p *Properties) Keys() []string {
	if p.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two property sets contain the same keys with
// the same values. Nil and empty sets compare equal.
func (p *Properties) Equal(q *Properties) bool {
	if p.Len() != q.Len() {
		return false
	}
	if p == nil || q == nil {
		return true
	}
	return maps.Equal(p.m, q.m)
}
