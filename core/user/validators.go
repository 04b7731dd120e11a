package user

import (
	"fmt"
	"strings"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/lmsadmin/core"
)

var (
	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	// bcrypt only accepts up to 72 bytes
	pwdMaxLen     = 72
	pwdMaxLenTag  = "pwdmaxlen"
	pwdMaxLenText = fmt.Sprintf("password must contain at most %d bytes", pwdMaxLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to user attributes"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(userStructValidation, NewUser{})
	core.RegisterCustomTranslation(validate, translator, pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(validate, translator, pwdMaxLenTag, pwdMaxLenText)
	core.RegisterCustomTranslation(validate, translator, pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(validate, translator, pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(validate, translator, pwdAttrSimTag, pwdAttrSimText)
}

// userStructValidation does struct level validation on NewUser.
func userStructValidation(sl validator.StructLevel) {
	if usr, ok := sl.Current().Interface().(NewUser); ok && usr.Password != "" {
		validatePassword(usr.Password, usr.Name, usr.Email, sl)
	}
}

// validatePassword applies the password policy to provided password:
// - minLen: 8
// - maxLen: 72 bytes
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd, name, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	chars := []rune(pwd)
	if len(chars) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	if len(pwd) > pwdMaxLen {
		reportErr(pwdMaxLenTag)
		return
	}

	var digitCount int
	for _, char := range chars {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == len(chars) {
		reportErr(pwdNotAllNumTag)
		return
	}

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(
			strings.Split(strings.ToLower(pass), ""),
			strings.Split(strings.ToLower(usrAttr), ""),
		).QuickRatio()
	}
	localPart := strings.SplitN(email, "@", 2)[0]
	if getRatio(pwd, name) >= pwdMaxSim || getRatio(pwd, localPart) >= pwdMaxSim || getRatio(pwd, email) >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
	}
}
