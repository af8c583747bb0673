package validation

import "regexp"

// Validation rule patterns
var (
	// Email validation pattern - deliberately loose, local@domain.tld
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidPercentile reports whether p lies in the inclusive [0,100] range.
// NaN compares false on both bounds and is therefore rejected.
func IsValidPercentile(p float64) bool {
	return p >= 0 && p <= 100
}

// IsValidYear bounds admission years to a sane window.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}
