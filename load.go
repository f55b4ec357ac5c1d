// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// ParseFile reads the EditorConfig file at path and returns its
// properties. A missing file is not an error: ParseFile returns Empty,
// since a path with no configuration simply contributes nothing. Any
// other failure to read the file is returned to the caller, wrapped,
// along with whatever was parsed before the failure.
func ParseFile(ctx context.Context, path string) (*Properties, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Debugf(ctx, "editorconfig: %s does not exist; using empty properties", path)
		return Empty, nil
	}
	if err != nil {
		return Empty, fmt.Errorf("parse editorconfig file: %w", err)
	}
	p, err := Parse(f)
	f.Close() // Close errors irrelevant.
	if err != nil {
		return p, fmt.Errorf("parse editorconfig file: %s: %w", path, err)
	}
	return p, nil
}
