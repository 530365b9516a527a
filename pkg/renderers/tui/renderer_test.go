package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	selects   []int
	inputErr  error

	inputPos    int
	passwordPos int
	selectPos   int

	messages []string
	defaults []string
	infos    []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	s.defaults = append(s.defaults, cfg.Default)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("stub: no scripted input")
	}
	value := s.inputs[s.inputPos]
	s.inputPos++
	return value, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.passwordPos >= len(s.passwords) {
		return "", errors.New("stub: no scripted password")
	}
	value := s.passwords[s.passwordPos]
	s.passwordPos++
	return value, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.selectPos >= len(s.selects) {
		return 0, errors.New("stub: no scripted select")
	}
	value := s.selects[s.selectPos]
	s.selectPos++
	return value, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestCollect_RepromptsOnlyFailedFields(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"bad", "sarah@fitm8.app"},
		passwords: []string{"pw"},
	}
	r := New(WithPromptDriver(driver))

	state, err := r.Collect(context.Background(), model.Login(), validation.Login())
	require.NoError(t, err)
	require.True(t, state.Submitted)
	require.Equal(t, 2, state.Attempts)
	require.Equal(t, "sarah@fitm8.app", state.Values["email"])
	require.Equal(t, "pw", state.Values["password"])

	require.Equal(t, []string{"Email", "Password", "Email (Email is invalid)"}, driver.messages)
	require.Equal(t, []string{"", "bad"}, driver.defaults)
	require.Equal(t, []string{"Please fix 1 field"}, driver.infos)
}

func TestCollect_TooManyAttempts(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"x", "y"},
		passwords: []string{"", ""},
	}
	r := New(WithPromptDriver(driver), WithMaxAttempts(2))

	state, err := r.Collect(context.Background(), model.Login(), validation.Login())
	require.ErrorIs(t, err, ErrTooManyAttempts)
	require.Equal(t, 2, state.Attempts)
	require.Equal(t, "Email is invalid", state.Errors["email"])
	require.Equal(t, "Password is required", state.Errors["password"])
}

func TestCollect_Aborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	r := New(WithPromptDriver(driver))

	_, err := r.Collect(context.Background(), model.Login(), validation.Login())
	require.ErrorIs(t, err, ErrAborted)
}

func TestCollect_SignupSelectMapsOptionValue(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Alex Johnson", "alex@example.com", "555-123-4567", "29"},
		selects:   []int{2},
		passwords: []string{"marathon42", "marathon42"},
	}
	r := New(WithPromptDriver(driver))

	state, err := r.Collect(context.Background(), model.Signup(), validation.Signup())
	require.NoError(t, err)
	require.Equal(t, "non-binary", state.Values["gender"])
	require.Equal(t, 1, state.Attempts)
	require.Empty(t, driver.infos)
}

func TestSurveyErrTranslation(t *testing.T) {
	require.Equal(t, ErrAborted, translateSurveyErr(terminal.InterruptErr))
	other := errors.New("boom")
	require.Equal(t, other, translateSurveyErr(other))
}

func loginPage() render.Page {
	return render.Page{Name: render.PageLogin, Data: model.Login()}
}

func TestRender_PrettyMasksSecrets(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}), WithTheme(Theme{ErrorPrefix: "! "}))
	require.Equal(t, "tui", r.Name())
	require.Equal(t, "text/plain; charset=utf-8", r.ContentType())

	out, err := r.Render(context.Background(), loginPage(), render.RenderOptions{
		Values: form.FormState{"email": "bad", "password": "hunter22"},
		Errors: form.ErrorMap{"email": "Email is invalid"},
	})
	require.NoError(t, err)

	text := string(out)
	require.True(t, strings.HasPrefix(text, "! Welcome back: 1 error\n"), text)
	require.Contains(t, text, "  Email: bad\n    ! Email is invalid\n")
	require.Contains(t, text, "  Password: (hidden)\n")
	require.NotContains(t, text, "hunter22")
}

func TestRender_PrettySelectLabel(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}))
	out, err := r.Render(context.Background(), render.Page{Name: render.PageSignup, Data: model.Signup()}, render.RenderOptions{
		Values: form.FormState{"gender": "prefer-not-to-say"},
	})
	require.NoError(t, err)
	require.Contains(t, string(out), "  Gender: Prefer not to say\n")
	require.Contains(t, string(out), "  Full Name: -\n")
}

func TestRender_JSON(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}), WithOutputFormat(OutputFormatJSON))
	require.Equal(t, "application/json", r.ContentType())

	out, err := r.Render(context.Background(), loginPage(), render.RenderOptions{
		Values: form.FormState{"email": "sarah@fitm8.app", "password": "secret"},
	})
	require.NoError(t, err)

	var payload submission
	require.NoError(t, json.Unmarshal(out, &payload))
	require.Equal(t, "login", payload.Form)
	require.True(t, payload.Valid)
	require.Equal(t, map[string]string{"email": "sarah@fitm8.app"}, payload.Values)
	require.Empty(t, payload.Errors)
}

func TestRender_FormEncoded(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}), WithOutputFormat(OutputFormatFormURLEncoded))
	out, err := r.Render(context.Background(), loginPage(), render.RenderOptions{
		Values: form.FormState{"email": "a@b.co", "password": "secret"},
	})
	require.NoError(t, err)
	require.Equal(t, "email=a%40b.co", string(out))
}

func TestRender_Errors(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}))

	_, err := r.Render(context.Background(), render.Page{Name: render.PageLanding}, render.RenderOptions{})
	require.ErrorContains(t, err, "not a form")

	_, err = r.Render(context.Background(), render.Page{Name: render.PageLogin, Data: "nope"}, render.RenderOptions{})
	require.ErrorContains(t, err, "expects model.Form")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, loginPage(), render.RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
