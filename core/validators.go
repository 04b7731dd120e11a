package core

import (
	"database/sql/driver"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/volatiletech/null/v8"
)

var (
	// custom validation tags & texts
	maxDecimalPlacesTag  = "maxdp"
	maxDecimalPlacesText = "{0} must have at most {1} decimal places"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// validate nullable columns by their underlying value
	validate.RegisterCustomTypeFunc(nullTypeValuer, null.String{}, null.Int64{}, null.Float64{}, null.Time{})

	// register custom validators
	_ = validate.RegisterValidation(maxDecimalPlacesTag, maxDecimalPlacesValidation)
	RegisterCustomTranslation(validate, translator, maxDecimalPlacesTag, maxDecimalPlacesText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
// `text` may reference the field name as {0} and the tag parameter as {1}.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// TranslateErrors maps validation errors to their translated messages, keyed by JSON field name.
func TranslateErrors(errs validator.ValidationErrors, translator ut.Translator) map[string]string {
	fldErrs := make(map[string]string, len(errs))
	for _, vErr := range errs {
		fldErrs[vErr.Field()] = vErr.Translate(translator)
	}
	return fldErrs
}

func nullTypeValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		if val, err := valuer.Value(); err == nil {
			return val
		}
	}
	return nil
}

// Custom Global Validators

// maxDecimalPlacesValidation checks that a float has at most `param` fractional digits.
func maxDecimalPlacesValidation(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return HasMaxDecimalPlaces(fl.Field().Float(), places)
	}
	return false
}
