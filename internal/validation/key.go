package validation

import (
	"strings"

	"shortlink/internal/domain"
)

// ValidatePublicKey accepts a single non-empty alphanumeric segment.
func ValidatePublicKey(key string) error {
	if !isSegment(key) {
		return ErrInvalidKey
	}
	return nil
}

// ValidateSecretKey accepts "<segment>_<segment>".
func ValidateSecretKey(key string) error {
	public, private, ok := strings.Cut(key, domain.KeySeparator)
	if !ok || !isSegment(public) || !isSegment(private) {
		return ErrInvalidKey
	}
	return nil
}

func isSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
