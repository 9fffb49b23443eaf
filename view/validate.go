package view

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var fieldMessages = map[string]string{
	"required": "O campo '%s' é obrigatório.",
	"email":    "O campo '%s' deve ser um email válido.",
	"min":      "O campo '%s' deve ter pelo menos %s caracteres.",
	"max":      "O campo '%s' deve ter no máximo %s caracteres.",
	"uuid":     "O campo '%s' deve ser um identificador válido.",
	"oneof":    "O campo '%s' deve ser um de: %s.",
}

// FormError lists the invalid fields of a form, keyed by the field's JSON name.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, " ")
}

// LoginForm is the login page form.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm is the sign-up page form. Only new passwords have a minimum length.
type RegisterForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// DetailsForm changes the profile name and email.
type DetailsForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// PasswordForm changes the password.
type PasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func parseMessage(field string, e validator.FieldError) string {
	if msg, ok := fieldMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("O campo '%s' é inválido: %s", field, e.Tag())
}

// validateForm checks a pointer to a form struct and returns *FormError when it is invalid.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	structType := reflect.TypeOf(form).Elem()
	out := &FormError{Fields: make(map[string]string, len(fieldErrs))}
	for _, e := range fieldErrs {
		name := e.StructField()
		if field, ok := structType.FieldByName(e.StructField()); ok {
			if tag := field.Tag.Get("json"); tag != "" {
				name = strings.Split(tag, ",")[0]
			}
		}
		out.Fields[name] = parseMessage(name, e)
	}
	return out
}
