package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-fitm8/pkg/validation"
)

const passwordMask = "••••••••"

// Login describes the sign-in card.
func Login() Form {
	return Form{
		ID:          validation.FormLogin,
		Title:       "Welcome back",
		Description: "Sign in to your FitM8 account",
		Action:      "/login",
		Method:      "post",
		Submit:      "Sign In",
		Prompt:      "Don't have an account?",
		Footer:      Link{Label: "Sign up", Href: "/signup"},
		Fields: []Field{
			{
				Name:         validation.FieldEmail,
				Label:        "Email",
				Type:         InputEmail,
				Placeholder:  "you@example.com",
				Icon:         "mail",
				Autocomplete: "email",
			},
			{
				Name:         validation.FieldPassword,
				Label:        "Password",
				Type:         InputPassword,
				Placeholder:  passwordMask,
				Icon:         "lock",
				Autocomplete: "current-password",
				Reveal:       true,
				Secret:       true,
				Aside:        &Link{Label: "Forgot password?", Href: "/forgot-password"},
			},
		},
	}
}

// Signup describes the account creation card.
func Signup() Form {
	options := make([]Option, len(validation.GenderOptions))
	for i, value := range validation.GenderOptions {
		options[i] = Option{Value: value, Label: genderLabel(value)}
	}

	return Form{
		ID:          validation.FormSignup,
		Title:       "Create an account",
		Description: "Enter your information to get started with FitM8",
		Action:      "/signup",
		Method:      "post",
		Submit:      "Create Account",
		Prompt:      "Already have an account?",
		Footer:      Link{Label: "Sign in", Href: "/login"},
		Fields: []Field{
			{
				Name:         validation.FieldName,
				Label:        "Full Name",
				Type:         InputText,
				Placeholder:  "John Doe",
				Icon:         "user",
				Autocomplete: "name",
			},
			{
				Name:         validation.FieldEmail,
				Label:        "Email",
				Type:         InputEmail,
				Placeholder:  "you@example.com",
				Icon:         "mail",
				Autocomplete: "email",
			},
			{
				Name:         validation.FieldPhone,
				Label:        "Phone Number",
				Type:         InputTel,
				Placeholder:  "1234567890",
				Icon:         "phone",
				Autocomplete: "tel",
				Metadata:     map[string]string{"layout": "half"},
			},
			{
				Name:        validation.FieldAge,
				Label:       "Age",
				Type:        InputNumber,
				Placeholder: "25",
				Icon:        "calendar",
				Min:         strconv.Itoa(validation.MinAge),
				Max:         strconv.Itoa(validation.MaxAge),
				Metadata:    map[string]string{"layout": "half"},
			},
			{
				Name:        validation.FieldGender,
				Label:       "Gender",
				Type:        InputSelect,
				Placeholder: "Select gender",
				Icon:        "users",
				Options:     options,
			},
			{
				Name:         validation.FieldPassword,
				Label:        "Password",
				Type:         InputPassword,
				Placeholder:  passwordMask,
				Icon:         "lock",
				Autocomplete: "new-password",
				Reveal:       true,
				Secret:       true,
			},
			{
				Name:         validation.FieldConfirmPassword,
				Label:        "Confirm Password",
				Type:         InputPassword,
				Placeholder:  passwordMask,
				Icon:         "lock",
				Autocomplete: "new-password",
				Reveal:       true,
				Secret:       true,
			},
		},
	}
}

// ByName resolves a form description by identifier.
func ByName(name string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case validation.FormLogin:
		return Login(), nil
	case validation.FormSignup:
		return Signup(), nil
	default:
		return Form{}, fmt.Errorf("model: unknown form %q", name)
	}
}

var genderLabels = map[string]string{
	"male":              "Male",
	"female":            "Female",
	"non-binary":        "Non-binary",
	"other":             "Other",
	"prefer-not-to-say": "Prefer not to say",
}

func genderLabel(value string) string {
	if label, ok := genderLabels[value]; ok {
		return label
	}
	return value
}
