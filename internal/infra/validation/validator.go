// Package validation implements the domain's field validation rules on top
// of go-playground/validator, with length and character-class policies
// driven by configuration.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
)

const (
	defaultNicknameMaxLength = 30
	defaultPasswordMinLength = 8
	defaultPasswordMaxLength = 72 // bcrypt input limit
)

type fieldValidator struct {
	validate *validator.Validate
	cfg      *config.Config
}

// New builds the FieldValidator used by the account service.
func New(cfg *config.Config) service.FieldValidator {
	return &fieldValidator{
		validate: validator.New(),
		cfg:      cfg,
	}
}

// ValidateEmail checks RFC-style email format.
func (v *fieldValidator) ValidateEmail(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return domainerrors.ErrInvalidEmail.WithDetails("email format is invalid")
	}

	return nil
}

// ValidateNickname enforces the configured length bound and rejects control
// characters. Leading/trailing whitespace-only names are rejected as well.
func (v *fieldValidator) ValidateNickname(nickname string) error {
	maxLen := defaultNicknameMaxLength
	if v.cfg != nil && v.cfg.Nickname != nil && v.cfg.Nickname.MaxLength > 0 {
		maxLen = v.cfg.Nickname.MaxLength
	}

	if strings.TrimSpace(nickname) == "" {
		return domainerrors.ErrInvalidNickname.WithDetails("nickname must contain visible characters")
	}
	if len([]rune(nickname)) > maxLen {
		return domainerrors.ErrInvalidNickname.WithDetails("nickname is too long")
	}
	for _, r := range nickname {
		if unicode.IsControl(r) {
			return domainerrors.ErrInvalidNickname.WithDetails("nickname contains disallowed characters")
		}
	}

	return nil
}

// ValidatePassword enforces the configured strength policy: length bounds
// plus required character classes.
func (v *fieldValidator) ValidatePassword(password string) error {
	policy := v.passwordPolicy()

	if len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		case unicode.IsControl(r):
			return domainerrors.ErrPasswordStrength.WithDetails("password contains disallowed characters")
		}
	}

	switch {
	case policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs an uppercase letter")
	case policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a lowercase letter")
	case policy.RequireNumbers && !hasDigit:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a digit")
	case policy.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a special character")
	}

	return nil
}

func (v *fieldValidator) passwordPolicy() config.PasswordStrengthConfig {
	policy := config.PasswordStrengthConfig{
		MinLength: defaultPasswordMinLength,
		MaxLength: defaultPasswordMaxLength,
	}
	if v.cfg != nil && v.cfg.PasswordStrength != nil {
		policy = *v.cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultPasswordMinLength
		}
		if policy.MaxLength <= 0 {
			policy.MaxLength = defaultPasswordMaxLength
		}
	}

	return policy
}
