package archive

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"qrarchive/internal/constants"
)

var (
	unsafeRunesRe    = regexp.MustCompile(`[^\w\s\-]`)
	whitespaceRunsRe = regexp.MustCompile(`\s+`)
)

// SanitizeLabel maps a human label onto a safe path component: runes
// outside [\w\s-] are dropped, the result is capped at 50 runes, runs of
// whitespace collapse to single dashes, and everything is lowercased. A
// label with nothing left after cleaning becomes "qr-code".
func SanitizeLabel(label string) string {
	safe := unsafeRunesRe.ReplaceAllString(label, "")
	if runes := []rune(safe); len(runes) > constants.MaxLabelRunes {
		safe = string(runes[:constants.MaxLabelRunes])
	}
	safe = strings.TrimSpace(safe)
	safe = whitespaceRunsRe.ReplaceAllString(safe, "-")
	safe = strings.ToLower(safe)
	if safe == "" {
		return constants.FallbackLabel
	}
	return safe
}

// BaseName builds the suffix-less archive filename for a label generated
// on the given day: {sanitized-label}_{YYYY-MM-DD}.
func BaseName(label string, day time.Time) string {
	return fmt.Sprintf("%s_%s", SanitizeLabel(label), day.Format(constants.DateLayout))
}

// ResolveBase returns the first variant of base whose .png and .pdf names
// are both free. taken reports whether a filename already exists in the
// archive; it is injected so collision behavior is testable without a real
// directory. Suffixes run -2, -3, ... and existing files are never reused.
func ResolveBase(base string, taken func(name string) bool) string {
	candidate := base
	for counter := 2; taken(candidate+".png") || taken(candidate+".pdf"); counter++ {
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return candidate
}
