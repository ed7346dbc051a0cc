package secret

import (
	"strings"

	"github.com/colima-services/reference-api/internal/vault"
)

// Masked replaces sensitive values in API responses. Raw secret values
// never leave the process.
const Masked = "***"

var sensitiveMarkers = []string{"password", "secret", "token", "key"}

// Mask returns a copy of the bundle with sensitive field values
// replaced. The original bundle is untouched.
func Mask(bundle vault.Bundle) map[string]any {
	safe := make(map[string]any, len(bundle))
	for name, value := range bundle {
		if Sensitive(name) {
			safe[name] = Masked
		} else {
			safe[name] = value
		}
	}
	return safe
}

// MaskField masks a single field value when its name is sensitive.
func MaskField(name, value string) string {
	if Sensitive(name) {
		return Masked
	}
	return value
}

// Sensitive reports whether a field name suggests credential material.
func Sensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range sensitiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
