package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-fitm8/pkg/form"
)

const (
	FormLogin  = "login"
	FormSignup = "signup"
)

// Field names shared by the validators and the form models.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldGender          = "gender"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// GenderOptions are the selectable values offered by the signup form.
var GenderOptions = []string{"male", "female", "non-binary", "other", "prefer-not-to-say"}

// FormValidator evaluates an ordered rule list. Every rule runs on each
// submit so the resulting map lists all violations, not just the first.
type FormValidator struct {
	name   string
	fields []string
	rules  []fieldRule
}

var _ form.Validator = (*FormValidator)(nil)

// Name returns the form identifier.
func (v *FormValidator) Name() string {
	return v.name
}

// Fields returns the declared field names in display order.
func (v *FormValidator) Fields() []string {
	out := make([]string, len(v.fields))
	copy(out, v.fields)
	return out
}

// Validate runs every rule against values.
func (v *FormValidator) Validate(values form.FormState) form.ErrorMap {
	errs := form.ErrorMap{}
	for _, rule := range v.rules {
		if msg, ok := rule.check(values); !ok {
			errs[rule.field] = msg
		}
	}
	return errs
}

// Login validates {email, password}. The password has no length rule on
// sign in.
func Login() *FormValidator {
	return &FormValidator{
		name:   FormLogin,
		fields: []string{FieldEmail, FieldPassword},
		rules: []fieldRule{
			{FieldEmail, required(FieldEmail, "Email is required",
				emailShape(FieldEmail, "Email is invalid"))},
			{FieldPassword, required(FieldPassword, "Password is required")},
		},
	}
}

// Signup validates the account creation form.
func Signup() *FormValidator {
	return &FormValidator{
		name: FormSignup,
		fields: []string{
			FieldName, FieldEmail, FieldPhone, FieldAge,
			FieldGender, FieldPassword, FieldConfirmPassword,
		},
		rules: []fieldRule{
			{FieldName, notBlank(FieldName, "Name is required")},
			{FieldEmail, required(FieldEmail, "Email is required",
				emailShape(FieldEmail, "Email is invalid"))},
			{FieldPhone, required(FieldPhone, "Phone number is required",
				phoneDigits(FieldPhone, "Phone number must be 10 digits"))},
			{FieldAge, required(FieldAge, "Age is required",
				ageRange(FieldAge, fmt.Sprintf("Age must be between %d and %d", MinAge, MaxAge)))},
			{FieldGender, required(FieldGender, "Gender is required")},
			{FieldPassword, required(FieldPassword, "Password is required",
				minLength(FieldPassword, MinPasswordLength, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)))},
			{FieldConfirmPassword, required(FieldConfirmPassword, "Please confirm your password",
				matches(FieldConfirmPassword, FieldPassword, "Passwords do not match"))},
		},
	}
}

// ByName resolves a validator by form identifier.
func ByName(name string) (*FormValidator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormLogin:
		return Login(), nil
	case FormSignup:
		return Signup(), nil
	default:
		return nil, fmt.Errorf("validation: unknown form %q", name)
	}
}

// Names lists the supported form identifiers.
func Names() []string {
	return []string{FormLogin, FormSignup}
}
