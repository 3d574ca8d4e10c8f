package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/luffy2025/rcli/internal/domain/textsign"
)

// SignFormatTag is the struct tag name under which SignFormatValidation is registered.
const SignFormatTag = "signFormat"

// SignFormatValidation accepts the text signing format tags in any letter case.
func SignFormatValidation(fl validator.FieldLevel) bool {
	return textsign.Format(fl.Field().String()).IsValid()
}

// KeyTypeValidation checks the key type against the sibling Format field.
func KeyTypeValidation(fl validator.FieldLevel) bool {
	format := textsign.Format(fl.Parent().FieldByName("Format").String())
	keyType := fl.Field().String()

	for _, t := range format.KeyTypes() {
		if t == keyType {
			return true
		}
	}
	return false
}

// KeyTypeTag is the struct tag name under which KeyTypeValidation is registered.
const KeyTypeTag = "keyType"

// New returns a validator with the text signing tags registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails for empty tags or nil funcs
	_ = validate.RegisterValidation(SignFormatTag, SignFormatValidation)
	_ = validate.RegisterValidation(KeyTypeTag, KeyTypeValidation)
	return validate
}
