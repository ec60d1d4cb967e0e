package validation

import "shortlink/internal/config"

// Validator bundles the request validators used by the HTTP layer.
type Validator struct {
	*URLValidator
	*UserValidator
}

func New(cfg *config.ValidationConfig) *Validator {
	return &Validator{
		URLValidator:  NewURLValidator(cfg.MaxURLLength, cfg.AllowPrivateIPs),
		UserValidator: NewUserValidator(cfg.MaxUsernameLength),
	}
}
