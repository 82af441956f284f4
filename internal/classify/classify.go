package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Type tags the kind of content a QR code carries. It determines which
// scheme prefix normalization applies before encoding.
type Type string

const (
	TypeURL   Type = "url"
	TypeText  Type = "text"
	TypeEmail Type = "email"
	TypePhone Type = "phone"
	TypeWiFi  Type = "wifi"
	TypeOther Type = "other"
)

// ParseType validates an explicitly requested type from the CLI.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeURL, TypeText, TypeEmail, TypePhone, TypeWiFi, TypeOther:
		return t, nil
	default:
		return "", fmt.Errorf("unknown content type %q (expected url, text, email, phone, wifi or other)", s)
	}
}

var (
	urlSchemeRe  = regexp.MustCompile(`(?i)^https?://`)
	wwwPrefixRe  = regexp.MustCompile(`(?i)^www\.`)
	mailtoRe     = regexp.MustCompile(`(?i)^mailto:`)
	emailShapeRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	telRe        = regexp.MustCompile(`(?i)^tel:`)
	phoneShapeRe = regexp.MustCompile(`^\+?[\d\s\-\(\)]{7,}$`)

	// A dotted hostname with an optional path, no scheme. Kept permissive
	// on the TLD so scheme-less URLs like example.com/page still match.
	bareDomainRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)+(/\S*)?$`)
)

// Detect infers the content type from its shape. The rule order is load
// bearing and pinned by tests: WIFI: prefix, explicit http(s) scheme,
// www. prefix, mailto:, bare email shape, tel:, phone shape, any other
// scheme or bare domain, and finally plain text. Detect never fails.
func Detect(content string) Type {
	c := strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(strings.ToUpper(c), "WIFI:"):
		return TypeWiFi
	case urlSchemeRe.MatchString(c):
		return TypeURL
	case wwwPrefixRe.MatchString(c):
		return TypeURL
	case mailtoRe.MatchString(c):
		return TypeEmail
	case emailShapeRe.MatchString(c):
		return TypeEmail
	case telRe.MatchString(c):
		return TypePhone
	case phoneShapeRe.MatchString(c):
		return TypePhone
	case strings.Contains(c, "://"):
		return TypeURL
	case bareDomainRe.MatchString(c):
		return TypeURL
	default:
		return TypeText
	}
}

// Normalize produces the string actually encoded: URLs without a scheme
// get https://, emails get mailto:, phone numbers get tel:. WiFi strings
// and plain text pass through untouched apart from whitespace trimming.
func Normalize(content string, t Type) string {
	c := strings.TrimSpace(content)

	switch t {
	case TypeURL:
		if strings.Contains(c, "://") {
			return c
		}
		return "https://" + c
	case TypeEmail:
		if mailtoRe.MatchString(c) {
			return c
		}
		return "mailto:" + c
	case TypePhone:
		if telRe.MatchString(c) {
			return c
		}
		return "tel:" + c
	default:
		return c
	}
}
