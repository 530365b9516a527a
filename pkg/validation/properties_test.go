package validation_test

import (
	"regexp"
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

var referenceEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

func TestProperty_EmailErrorIffShapeMismatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		email := rapid.StringMatching(`[a-z .@]{0,12}`).Draw(t, "email")

		errs := validation.Login().Validate(form.FormState{"email": email, "password": "pw"})

		if referenceEmail.MatchString(email) && errs.Has("email") {
			t.Fatalf("email %q matches the shape but was rejected: %#v", email, errs)
		}
		if !referenceEmail.MatchString(email) && !errs.Has("email") {
			t.Fatalf("email %q does not match the shape but was accepted", email)
		}
	})
}

func TestProperty_PhoneErrorIffDigitCountIsNotTen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phone := rapid.StringMatching(`[0-9() +-]{1,18}`).Draw(t, "phone")

		values := validSignup()
		values["phone"] = phone
		errs := validation.Signup().Validate(values)

		digits := 0
		for _, r := range phone {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if (digits != 10) != errs.Has("phone") {
			t.Fatalf("phone %q with %d digits: unexpected errors %#v", phone, digits, errs)
		}
	})
}

func TestProperty_AgeErrorOutsideRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		age := rapid.IntRange(-500, 500).Draw(t, "age")

		values := validSignup()
		values["age"] = strconv.Itoa(age)
		errs := validation.Signup().Validate(values)

		inRange := age >= 13 && age <= 120
		if inRange == errs.Has("age") {
			t.Fatalf("age %d: in range %v but errors %#v", age, inRange, errs)
		}
	})
}

func TestProperty_ConfirmPasswordErrorIffDifferent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		password := rapid.StringN(1, 20, -1).Draw(t, "password")
		confirm := rapid.OneOf(rapid.Just(password), rapid.StringN(1, 20, -1)).Draw(t, "confirm")

		values := validSignup()
		values["password"] = password
		values["confirmPassword"] = confirm
		errs := validation.Signup().Validate(values)

		if (password != confirm) != errs.Has("confirmPassword") {
			t.Fatalf("password %q confirm %q: unexpected errors %#v", password, confirm, errs)
		}
	})
}

func TestProperty_ErrorKeysAreDeclaredFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := validation.Signup()
		values := form.NewState(v.Fields()...)
		for _, field := range v.Fields() {
			values[field] = rapid.String().Draw(t, field)
		}

		for field := range v.Validate(values) {
			if !values.Has(field) {
				t.Fatalf("error reported for undeclared field %q", field)
			}
		}
	})
}
