package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gradienterrors "github.com/alexisbeaulieu97/gradients/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	rgbHexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(yamlFieldName)

		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return rgbHexPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value != "" && strings.TrimSpace(value) == value
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-record validation on a dataset
// document and reports every problem it finds.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return gradienterrors.NewValidationError("document", "document is nil", nil)
	}

	var problems gradienterrors.ValidationErrors

	if err := validatorInstance().Struct(doc); err != nil {
		problems = append(problems, convertValidationErrors(err)...)
	}

	seen := make(map[string]int, len(doc.Gradients))
	for i, entry := range doc.Gradients {
		if entry.Name == "" {
			continue
		}
		if first, exists := seen[entry.Name]; exists {
			problems = append(problems, &gradienterrors.ValidationError{
				Field:   fieldForGradient(i, "name"),
				Message: fmt.Sprintf("duplicate gradient name %q (first defined at gradients[%d])", entry.Name, first),
			})
			continue
		}
		seen[entry.Name] = i
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}
