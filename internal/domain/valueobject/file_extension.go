package valueobject

import (
	"path/filepath"
	"slices"
	"strings"
)

// AllowedExtensions lists the document types accepted at intake.
var AllowedExtensions = []string{".csv", ".txt", ".pdf", ".xlsx", ".xls"}

// ExtensionOf returns the lower-cased extension of name including the leading
// dot, or "" when name has none.
func ExtensionOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsAllowedExtension reports whether ext (as returned by ExtensionOf) is on
// the allow-list.
func IsAllowedExtension(ext string) bool {
	return slices.Contains(AllowedExtensions, ext)
}
