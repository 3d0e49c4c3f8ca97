package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate is shared; validator caches struct metadata per instance.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names, bukan nama field Go
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError carries per-field failures, rendered as 422.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, tags := range e.Fields {
		parts = append(parts, f+":"+strings.Join(tags, "|"))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ValidateStruct runs the validate tags of s.
func ValidateStruct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewInvalid(err.Error())
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		fields[fe.Field()] = append(fields[fe.Field()], tag)
	}
	return &ValidationError{Fields: fields}
}

type normalizer interface {
	Normalize()
}

// BindAndValidate parses the JSON body into dst, normalizes it when it knows
// how, then validates it.
func BindAndValidate(c *fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return NewInvalid("Invalid request body")
		}
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(dst)
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return Validate.Var(s, "required,email") == nil
}
