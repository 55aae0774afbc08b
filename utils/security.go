package utils

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex    = regexp.MustCompile(`^\d{10}$`)
	usnRegex      = regexp.MustCompile(`^1[a-zA-Z]{2}2[1-5][a-zA-Z]{2}\d{3}$`)
	linkedinRegex = regexp.MustCompile(`(?i)^(https?://)?([a-z0-9-]+\.)*linkedin\.com/`)
	githubRegex   = regexp.MustCompile(`(?i)^(https?://)?([a-z0-9-]+\.)*github\.com/`)
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	controlChars  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
)

// SanitizeString trims the input and strips null bytes and control characters
// (newlines and tabs survive, descriptions need them).
func SanitizeString(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, "\x00", "")
	return controlChars.ReplaceAllString(s, "")
}

// Truncate caps s at max bytes without splitting a multibyte rune
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// IsValidEmail validates email shape and the 254-byte length cap
func IsValidEmail(email string) bool {
	return len(email) <= 254 && emailRegex.MatchString(email)
}

// IsValidPhone requires exactly 10 digits
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidUSN validates the college ID pattern: 1 + 2 letters + batch year
// 21-25 + 2 letters + 3 digits
func IsValidUSN(usn string) bool {
	return usnRegex.MatchString(usn)
}

// IsLinkedInURL requires a linkedin.com URL
func IsLinkedInURL(u string) bool {
	return linkedinRegex.MatchString(u)
}

// IsGitHubURL requires a github.com URL
func IsGitHubURL(u string) bool {
	return githubRegex.MatchString(u)
}

// IsValidURL accepts absolute http/https URLs only
func IsValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsValidObjectID validates MongoDB ObjectId hex format
func IsValidObjectID(id string) bool {
	return objectIDRegex.MatchString(id)
}
