package form

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("notblank", validators.NotBlank)

	// A price is valid when the decimal string parses to a number above zero.
	validate.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		v, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && v > 0
	})

	// The operating window compares lexicographically; both ends are
	// zero-padded 24h "HH:MM" strings, so string order is time order.
	// validator's ltfield compares string lengths, hence the struct rule.
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(FormFields)
		if f.OperatingStartTime >= f.OperatingEndTime {
			sl.ReportError(f.OperatingStartTime, "operatingStartTime", "OperatingStartTime", "timerange", "")
		}
	}, FormFields{})
}

// Validate checks the listing rules in order (name, phone, location, price,
// operating window) and returns the first violation. nil means the fields
// are fit to submit. No side effects; the caller surfaces the error and
// aborts submission.
func Validate(f FormFields) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	return ruleError(verrs[0])
}

func ruleError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Name":
		return ErrEmptyName
	case "Phone":
		return ErrPhoneTooShort
	case "Location":
		return ErrEmptyLocation
	case "PricePerSlot":
		return ErrInvalidPrice
	default:
		return ErrInvalidTimeRange
	}
}
