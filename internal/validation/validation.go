package validation

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultName is used when a request carries no name.
const DefaultName = "No Name"

// ErrEmptyName is returned when an empty name is normalized.
var ErrEmptyName = errors.New("name is empty")

// NameOrDefault returns name, or DefaultName if name is empty.
func NameOrDefault(name string) string {
	if name == "" {
		return DefaultName
	}
	return name
}

// NormalizeName upper-cases the first character and lower-cases the rest,
// so "aLiCe" and "ALICE" both count as "Alice". The input is not trimmed.
func NormalizeName(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:]), nil
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
