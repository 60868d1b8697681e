package form

import (
	"net/url"
	"strings"

	"github.com/Apollo297/newsnote/internal/apperror"
)

// LoginForm is the username/password login submission.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// ParseLoginForm binds submitted values. The password is deliberately
// not trimmed — leading or trailing spaces in a password are legal.
func ParseLoginForm(values url.Values) *LoginForm {
	return &LoginForm{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
	}
}

func (f *LoginForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fieldError(err, map[string]string{"Username": "username", "Password": "password"})
	}
	return nil
}

// MinPasswordLength is the signup password floor.
const MinPasswordLength = 8

// SignupForm is the account registration submission.
type SignupForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func ParseSignupForm(values url.Values) *SignupForm {
	return &SignupForm{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
	}
}

func (f *SignupForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fieldError(err, map[string]string{"Username": "username", "Password": "password"})
	}
	if len(f.Password) < MinPasswordLength {
		return apperror.ValidationFailed("password", "Пароль слишком короткий.")
	}
	return nil
}
