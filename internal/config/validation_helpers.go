package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	gradienterrors "github.com/alexisbeaulieu97/gradients/pkg/errors"
)

// convertValidationErrors normalizes validator errors into dataset validation errors.
func convertValidationErrors(err error) []*gradienterrors.ValidationError {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []*gradienterrors.ValidationError{{Field: "document", Message: err.Error(), Err: err}}
	}

	out := make([]*gradienterrors.ValidationError, 0, len(ves))
	for _, fe := range ves {
		field := documentFieldName(fe)
		out = append(out, &gradienterrors.ValidationError{
			Field:   field,
			Message: describeFieldError(fe),
			Err:     fe,
		})
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "rgbhex":
		return fmt.Sprintf("%q is not a #RGB or #RRGGBB colour", fe.Value())
	case "tag":
		return fmt.Sprintf("tag %q must be non-empty without surrounding whitespace", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// documentFieldName drops the root type name so fields read like YAML paths.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func yamlFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func fieldForGradient(index int, field string) string {
	return fmt.Sprintf("gradients[%d].%s", index, field)
}
