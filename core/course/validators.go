package course

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/lmsadmin/core"
)

var (
	slugTag   = "slug"
	slugText  = "{0} may only contain url-safe characters"
	slugRegex = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(slugTag, slugValidation)
	core.RegisterCustomTranslation(validate, translator, slugTag, slugText)
	validate.RegisterStructValidation(courseStructValidation, NewCourse{})
}

// slugValidation only allows unreserved url characters, e.g. "Intro_101" or "intro-to-go-2".
func slugValidation(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// courseStructValidation does struct level validation on NewCourse.
// A present duration of 0 unwraps to the zero value, which `omitempty` skips.
func courseStructValidation(sl validator.StructLevel) {
	nc, ok := sl.Current().Interface().(NewCourse)
	if !ok {
		return
	}
	if nc.DurationHours.Valid && nc.DurationHours.Float64 <= 0 {
		sl.ReportError(nc.DurationHours.Float64, "duration_hours", "DurationHours", "gt", "0")
	}
}
