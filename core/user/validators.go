package user

import (
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/techcomputer/portal/core"
)

var (
	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = "password must contain at least 8 characters"

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to your name or email"
)

func init() {
	core.Validate.RegisterStructValidation(registerStructValidation, Register{})

	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// registerStructValidation applies the password policy to new registrations
// before they ever reach the network.
func registerStructValidation(sl validator.StructLevel) {
	if reg, ok := sl.Current().Interface().(Register); ok {
		validatePassword(reg.Password, reg.Name, reg.Email, sl)
	}
}

// validatePassword applies the password policy to provided password:
// - minLen: 8
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd, name, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	if len(pwd) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == len(pwd) {
		reportErr(pwdNotAllNumTag)
		return
	}

	for _, attr := range []string{name, email} {
		if attr == "" {
			continue
		}
		matcher := difflib.NewMatcher(splitChars(core.CleanString(pwd, true)), splitChars(core.CleanString(attr, true)))
		if matcher.Ratio() > pwdMaxSim {
			reportErr(pwdAttrSimTag)
			return
		}
	}
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, c := range s {
		chars = append(chars, string(c))
	}
	return chars
}
