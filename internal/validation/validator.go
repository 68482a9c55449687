package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	siteerrors "github.com/build50/build50/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Rejects whitespace-only input that "required" would otherwise accept.
	notBlankPattern = regexp.MustCompile(`\S`)
)

// Instance returns the shared validator configured with the project's custom
// tags. Field names are reported using the yaml (or json) tag when present.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"yaml", "json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return strings.ToLower(field.Name)
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return notBlankPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts failures into FieldErrors, one per field.
func Struct(s any) error {
	err := Instance().Struct(s)
	if err == nil {
		return nil
	}
	return Convert(err)
}

// Convert translates validator output into siteerrors.FieldErrors. Errors that
// did not originate from the validator are wrapped in a single entry.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return siteerrors.FieldErrors{{Field: "", Message: err.Error(), Err: err}}
	}

	out := make(siteerrors.FieldErrors, 0, len(ves))
	seen := make(map[string]struct{}, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, &siteerrors.ValidationError{
			Field:   field,
			Message: describe(fe),
			Err:     fe,
		})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank", "required_unless", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
