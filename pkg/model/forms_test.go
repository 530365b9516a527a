package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

func TestFormsMatchValidators(t *testing.T) {
	cases := []struct {
		form      model.Form
		validator *validation.FormValidator
	}{
		{model.Login(), validation.Login()},
		{model.Signup(), validation.Signup()},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.validator.Fields(), tc.form.FieldNames()); diff != "" {
			t.Fatalf("%s fields mismatch (-want +got):\n%s", tc.form.ID, diff)
		}
		if tc.form.ID != tc.validator.Name() {
			t.Fatalf("form id %q does not match validator %q", tc.form.ID, tc.validator.Name())
		}
	}
}

func TestSignupGenderOptions(t *testing.T) {
	field, ok := model.Signup().Field(validation.FieldGender)
	if !ok {
		t.Fatalf("gender field missing")
	}
	want := []model.Option{
		{Value: "male", Label: "Male"},
		{Value: "female", Label: "Female"},
		{Value: "non-binary", Label: "Non-binary"},
		{Value: "other", Label: "Other"},
		{Value: "prefer-not-to-say", Label: "Prefer not to say"},
	}
	if diff := cmp.Diff(want, field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestSecretFields(t *testing.T) {
	if diff := cmp.Diff([]string{"password"}, model.Login().SecretFields()); diff != "" {
		t.Fatalf("login secrets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"password", "confirmPassword"}, model.Signup().SecretFields()); diff != "" {
		t.Fatalf("signup secrets mismatch (-want +got):\n%s", diff)
	}
}

func TestAgeBounds(t *testing.T) {
	field, _ := model.Signup().Field(validation.FieldAge)
	if field.Min != "13" || field.Max != "120" || field.Type != model.InputNumber {
		t.Fatalf("unexpected age field %+v", field)
	}
}

func TestApplyActionPrefix(t *testing.T) {
	form, err := model.Apply(model.Login(), model.WithActionPrefix("/app"), nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if form.Action != "/app/login" || form.Footer.Href != "/app/signup" {
		t.Fatalf("unexpected prefixed form %q %q", form.Action, form.Footer.Href)
	}
}

func TestByName(t *testing.T) {
	if form, err := model.ByName(" Signup "); err != nil || form.ID != "signup" {
		t.Fatalf("unexpected result %q %v", form.ID, err)
	}
	if _, err := model.ByName("reset"); err == nil {
		t.Fatalf("expected unknown form error")
	}
}
