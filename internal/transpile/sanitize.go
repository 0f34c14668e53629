// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import "strings"

// Sanitize escapes LaTeX-reserved characters in a prose span. The escape
// table is applied in its fixed order, each entry once over the whole
// span. Sanitize is not idempotent: running it over already-escaped text
// double-escapes the inserted backslashes, so every raw span passes
// through here exactly once.
func Sanitize(text string) string {
	for _, r := range escapeTable {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}
