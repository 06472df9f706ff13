package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violations maps a field name to an error code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error codes.
const (
	CodeRequired = "required"
	CodeTooLong  = "too_long"
	CodeInvalid  = "invalid"
)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = CodeRequired
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report fields by their json name
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct checks `validate` tags on s and merges the failures into v.
// A field already present in v keeps its first code.
func Struct(s any, v Violations) {
	err := engine().Struct(s)
	if err == nil {
		return
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		v["_"] = CodeInvalid
		return
	}
	for _, fe := range errs {
		field := fe.Field()
		if _, seen := v[field]; seen {
			continue
		}
		v[field] = codeFor(fe.Tag())
	}
}

func codeFor(tag string) string {
	switch tag {
	case "required", "required_without", "required_with":
		return CodeRequired
	case "max", "lte":
		return CodeTooLong
	default:
		return CodeInvalid
	}
}
