package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/pkg/enums"
)

const (
	tagPostalCode    = "ca_postal"
	tagProvince      = "province"
	tagPaymentMethod = "payment_method"
	tagCardNumber    = "card_number"
	tagCardExpiry    = "card_expiry"
	tagCategory      = "filter_category"
	tagHowHeard      = "how_heard"
)

var (
	postalCodePattern = regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z][ -]?[0-9][A-Za-z][0-9]$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

func registerStorefrontRules(v *validator.Validate) {
	_ = v.RegisterValidation(tagPostalCode, func(fl validator.FieldLevel) bool {
		return IsPostalCode(fl.Field().String())
	})
	_ = v.RegisterValidation(tagProvince, func(fl validator.FieldLevel) bool {
		_, err := enums.ParseProvince(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(tagPaymentMethod, func(fl validator.FieldLevel) bool {
		return enums.PaymentMethod(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation(tagCardNumber, func(fl validator.FieldLevel) bool {
		digits := CardDigits(fl.Field().String())
		return len(digits) >= 12 && len(digits) <= 19
	})
	_ = v.RegisterValidation(tagCardExpiry, func(fl validator.FieldLevel) bool {
		return cardExpiryPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation(tagCategory, func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseCategory(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(tagHowHeard, func(fl validator.FieldLevel) bool {
		return enums.HowHeard(fl.Field().String()).IsValid()
	})
}

// IsPostalCode accepts A1A 1A1 with an optional space or hyphen.
func IsPostalCode(value string) bool {
	return postalCodePattern.MatchString(strings.TrimSpace(value))
}

// NormalizePostalCode upper-cases the code and puts a single space in the middle.
func NormalizePostalCode(value string) string {
	compact := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(value)))
	if len(compact) != 6 {
		return strings.TrimSpace(value)
	}
	return compact[:3] + " " + compact[3:]
}

// CardDigits strips the separators people type into card numbers.
func CardDigits(value string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(value))
}
