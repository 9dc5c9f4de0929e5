package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// EscapeHTML escapes HTML special characters to prevent XSS attacks.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripTags removes every HTML element from s and returns plain text.
// Entities produced by the policy are unescaped so callers can escape once
// at render time.
func StripTags(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	cleaned := textPolicy().Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
