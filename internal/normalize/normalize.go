package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name canonicalizes a player or squad name for lookups: trimmed,
// Unicode case-folded.
func Name(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
