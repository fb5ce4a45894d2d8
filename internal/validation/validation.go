// Package validation decodes untrusted JSON payloads into the insertable and
// partial shapes declared in package models and checks them against their
// `validate` tags.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes one offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload does not conform to its shape.
// It never implies that any state was changed.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Validator wraps a configured go-playground validator and its English
// translator. It is safe for concurrent use.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

// New builds a Validator reporting JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("validation: register translations: %v", err))
	}
	overrides := map[string]string{
		"datetime": "{0} must be a date formatted as YYYY-MM-DD",
		"eqfield":  "{0} must match {1}",
	}
	for tag, text := range overrides {
		err := v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(fe.Tag(), fe.Field(), lowerFirst(fe.Param()))
				return msg
			})
		if err != nil {
			panic(fmt.Sprintf("validation: register %s translation: %v", tag, err))
		}
	}
	return &Validator{v: v, trans: trans}
}

// Struct validates an already decoded value.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldPath(fe),
			Message: fe.Translate(val.trans),
		})
	}
	return out
}

// Decode reads one JSON object from r into dst and validates it. Unknown
// fields are ignored. Malformed bodies and type mismatches are reported as
// *ValidationError like any other schema violation.
func (val *Validator) Decode(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return decodeError(err)
	}
	return val.Struct(dst)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Errors: []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s must be of type %s", field, kindName(typeErr.Type)),
		}}}
	case errors.Is(err, io.EOF):
		return &ValidationError{Errors: []FieldError{{Field: "body", Message: "request body is required"}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Errors: []FieldError{{Field: "body", Message: "request body must be valid JSON"}}}
	default:
		return &ValidationError{Errors: []FieldError{{Field: "body", Message: err.Error()}}}
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.String()
}

// fieldPath drops the top-level struct name from the namespace so nested
// fields read as "tags[0]" rather than "ProjectInput.tags[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
