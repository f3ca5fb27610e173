package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	sonoraerrors "github.com/alexisbeaulieu97/sonora/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColorPattern = regexp.MustCompile(`^rgba?\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*(?:,\s*(?:\d*\.)?\d+%?\s*)?\)$`)
	hslColorPattern = regexp.MustCompile(`^hsla?\(\s*(?:\d*\.)?\d+(?:deg)?\s*,\s*(?:\d*\.)?\d+%\s*,\s*(?:\d*\.)?\d+%\s*(?:,\s*(?:\d*\.)?\d+%?\s*)?\)$`)
)

// Instance returns the shared validator. Field names in reported errors use
// the yaml key, and the css_color tag accepts hex, rgb(a) and hsl(a) values.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsColor reports whether value is a CSS colour literal the style surface
// understands.
func IsColor(value string) bool {
	value = strings.TrimSpace(value)
	return hexColorPattern.MatchString(value) ||
		rgbColorPattern.MatchString(value) ||
		hslColorPattern.MatchString(value)
}

// Issue is one failed constraint.
type Issue struct {
	Field   string
	Message string
	Value   interface{}
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Check validates any struct and lists every failed constraint. A nil
// result means the value is valid.
func Check(v interface{}) ([]Issue, error) {
	err := Instance().Struct(v)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
			Value:   fe.Value(),
		})
	}
	return issues, nil
}

// Struct validates v and converts the first failure into a ValidationError.
func Struct(v interface{}) error {
	issues, err := Check(v)
	if err != nil {
		return sonoraerrors.NewValidationError("", "invalid value", err)
	}
	if len(issues) == 0 {
		return nil
	}

	first := issues[0]
	message := first.Message
	if extra := len(issues) - 1; extra > 0 {
		message = fmt.Sprintf("%s (and %d more)", message, extra)
	}
	return sonoraerrors.NewValidationError(first.Field, message, nil)
}

// ThemeValidator checks complete theme values. It satisfies
// ports.ThemeValidator.
type ThemeValidator struct{}

// NewThemeValidator returns a validator for theme values.
func NewThemeValidator() ThemeValidator {
	return ThemeValidator{}
}

// ValidateTheme returns a *errors.ValidationError describing the first
// failed constraint.
func (ThemeValidator) ValidateTheme(cfg domain.ThemeConfig) error {
	return Struct(&cfg)
}

// Issues lists every failed constraint of cfg.
func (ThemeValidator) Issues(cfg domain.ThemeConfig) []Issue {
	issues, err := Check(&cfg)
	if err != nil {
		return []Issue{{Field: cfg.Name, Message: err.Error()}}
	}
	return issues
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	param := fe.Param()
	isList := fe.Kind() == reflect.Slice
	switch fe.Tag() {
	case "required":
		return "is required"
	case "css_color":
		return fmt.Sprintf("%q is not a valid colour", fe.Value())
	case "gte":
		return "must be at least " + param
	case "lte":
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "min":
		if isList {
			return fmt.Sprintf("must contain at least %s entries", param)
		}
		return "must be at least " + param
	case "max":
		if isList {
			return fmt.Sprintf("must contain at most %s entries", param)
		}
		return "must be at most " + param
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
