// Package shared provides common utility functions used across multiple
// packages in the tvm802-tools codebase.
package shared

import "strings"

// utf8BOM is the byte-order mark as it appears in decoded cell text. The raw
// three-byte encoding EF BB BF is the same Go string.
const utf8BOM = "\ufeff"

// StripBOM removes any leading UTF-8 byte-order mark from a CSV cell.
// Windows CAD exports frequently carry one on the first header cell.
func StripBOM(value string) string {
	for strings.HasPrefix(value, utf8BOM) {
		value = strings.TrimPrefix(value, utf8BOM)
	}
	return value
}

// NormalizeHeaderCell trims a header cell, strips any byte-order mark, and
// lowercases it for schema comparisons.
func NormalizeHeaderCell(value string) string {
	return strings.ToLower(StripBOM(strings.TrimSpace(value)))
}
