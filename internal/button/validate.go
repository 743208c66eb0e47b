package button

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	presserrors "github.com/soverel/pressable/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for configuration checks.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate performs the opt-in production checks on a configuration: label
// presence, non-negative numeric fields, a positive font size, and a usable
// gradient list when one is supplied for the gradient-loading variant.
//
// Render never calls Validate; the render path stays total and accepts any
// configuration as pass-through presentation data. Callers that want a
// configuration failure instead of a degenerate render invoke this first.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Label) == "" {
		return presserrors.NewValidationError("label", "label is required", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Variant == VariantGradientLoading && cfg.GradientColors != nil && len(cfg.GradientColors) < 2 {
		return presserrors.NewValidationError(
			"gradient_colors",
			fmt.Sprintf("gradient-loading needs at least two colors, got %d", len(cfg.GradientColors)),
			nil,
		)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return presserrors.NewValidationError("config", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.ToLower(first.Field())
	return presserrors.NewValidationError(
		field,
		fmt.Sprintf("failed %q constraint", first.Tag()),
		err,
	)
}
