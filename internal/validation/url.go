package validation

import (
	"net/url"
	"strings"
)

// schemeErrors maps a lowercased scheme to the error it triggers. Schemes
// absent from the map are malformed for a redirect target.
var schemeErrors = map[string]error{
	"http":       nil,
	"https":      nil,
	"javascript": ErrUnsafeProtocol,
	"data":       ErrUnsafeProtocol,
	"file":       ErrUnsafeProtocol,
	"vbscript":   ErrUnsafeProtocol,
	"about":      ErrUnsafeProtocol,
	"blob":       ErrUnsafeProtocol,
}

// URLValidator checks redirect targets submitted for shortening.
type URLValidator struct {
	maxLength       int
	allowPrivateIPs bool
}

func NewURLValidator(maxLength int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		allowPrivateIPs: allowPrivateIPs,
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}
	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	schemeErr, known := schemeErrors[strings.ToLower(parsed.Scheme)]
	switch {
	case !known:
		return ErrInvalidURLFormat
	case schemeErr != nil:
		return schemeErr
	case parsed.Host == "":
		return ErrInvalidURLFormat
	}

	if v.allowPrivateIPs {
		return nil
	}
	return ValidateHost(parsed.Host)
}
