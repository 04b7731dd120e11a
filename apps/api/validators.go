package main

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/user"
)

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	return validate, translator
}
