package pdf2dxf

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem found while converting a page
type Warning struct {
	// Page is the 1-based page index, 0 for document-level warnings
	Page    int
	Message string
}

// String formats the warning with its page
func (w Warning) String() string {
	if w.Page == 0 {
		return w.Message
	}
	return fmt.Sprintf("page %d: %s", w.Page, w.Message)
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
