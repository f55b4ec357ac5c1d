// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package editorconfig parses the property lines of EditorConfig files.
See https://editorconfig.org.

This package handles the key/value layer only: it turns the text of an
EditorConfig file (or any in-memory buffer) into an immutable,
case-insensitive set of properties. Section headers ("[*.go]") and glob
matching are deliberately out of scope; a line that looks like a section
header is skipped like any other non-property line, and selecting which
properties apply to which file path is left to the caller.

Syntax

An EditorConfig file is line-oriented text. Lines that are empty or
contain only whitespace are ignored. If the first non-whitespace
character of a line is a hash ('#') or a semicolon (';'), the whole line
is a comment and is ignored.

Any other line may declare a property: a key, a separator, and a value.
Keys are runs of Unicode letters or digits plus period ('.'), hyphen
('-'), and underscore ('_'). Either an equals sign ('=') or a colon
(':') separates the key from the value. A hash or semicolon after the
separator starts a trailing comment that runs to the end of the line;
consequently those characters can never appear inside a value.
Whitespace around the key, the separator, and the value is ignored:

	indent_style = tab
	indent_size: 4      # colon works too, comment is dropped
	charset =           ; empty value

Lines that do not fit any of these shapes are skipped silently. Parsing
is best effort and never fails on malformed content: EditorConfig files
are user-authored, and downstream tooling must tolerate them even when
partially invalid.

Case normalization

Keys are lower-cased, so lookups are case-insensitive. Values keep
their original casing except in two cases, where they are lower-cased
as well: the key is one of the properties defined by the EditorConfig
format (root, indent_style, indent_size, tab_width, end_of_line,
charset, trim_trailing_whitespace, insert_final_newline), or the value
is the special sentinel "unset" in any casing.

Repeated keys

A key may appear on multiple lines. The last occurrence wins.
*/
package editorconfig
