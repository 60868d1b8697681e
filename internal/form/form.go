// Package form binds and validates submitted form data.
//
// Each page form is a struct with validator tags; Parse* constructors
// bind url.Values from the request body and Validate methods turn rule
// violations into field-scoped apperror values. Handlers re-render the
// page with the message next to the offending field — a failed
// validation is a 200 with an error, never a redirect, and never touches
// the store.
//
// User-facing messages are fixed Russian literals: this is a
// Russian-market product and the texts are part of the contract the
// tests pin down.
package form

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/Apollo297/newsnote/internal/apperror"
)

// validate is the shared validator instance. It is safe for concurrent
// use; per go-playground/validator docs it caches struct metadata, so a
// single instance is the intended usage.
var validate = validator.New()

// RequiredMessage is shown for any missing required field.
const RequiredMessage = "Обязательное поле."

// fieldError converts the first validator violation into a field-scoped
// application error. Forms here are small enough that reporting one
// problem at a time is fine.
func fieldError(err error, fields map[string]string) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("form: validating: %w", err)
	}

	v := verrs[0]
	field, ok := fields[v.Field()]
	if !ok {
		field = strings.ToLower(v.Field())
	}

	switch v.Tag() {
	case "required":
		return apperror.ValidationFailed(field, RequiredMessage)
	default:
		return apperror.ValidationFailed(field, fmt.Sprintf("Недопустимое значение поля %s.", field))
	}
}
