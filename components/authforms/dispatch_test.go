package authforms

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/testsupport"
)

func dispatchMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	_, err := RegisterRoutes(mux, "")
	require.NoError(t, err)
	return mux
}

func dispatch(t *testing.T, mux http.Handler, formID string, req DispatchRequest) form.State {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	rec := testsupport.Do(t, mux, testsupport.PostJSON("/api/forms/"+formID+"/dispatch", string(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var next form.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &next))
	return next
}

func TestDispatch_ChangeThenSubmitKeepsClientSecrets(t *testing.T) {
	mux := dispatchMux(t)
	secrets := map[string]string{}

	state := dispatch(t, mux, "login", DispatchRequest{
		Action: ActionPayload{Type: "change", Field: "email", Value: "a@b.co"},
	})
	require.Equal(t, "a@b.co", state.Values["email"])

	secrets["password"] = "hunter22"
	state = dispatch(t, mux, "login", DispatchRequest{
		State:   &state,
		Secrets: secrets,
		Action:  ActionPayload{Type: "change", Field: "password", Value: "hunter22"},
	})
	require.Empty(t, state.Values["password"])

	state = dispatch(t, mux, "login", DispatchRequest{
		State:   &state,
		Secrets: secrets,
		Action:  ActionPayload{Type: "submit"},
	})
	require.True(t, state.Errors.Valid(), "errors: %#v", state.Errors)
	require.True(t, state.Submitted)
	require.Equal(t, 1, state.Attempts)
	require.Empty(t, state.Values["password"])
}

func TestDispatch_SubmitWithoutSecretsReportsThem(t *testing.T) {
	state := dispatch(t, dispatchMux(t), "login", DispatchRequest{
		State: &form.State{Values: form.FormState{"email": "a@b.co", "password": "ignored-on-the-wire"}},
		Secrets: map[string]string{
			"email": "not-a-secret@x.io",
		},
		Action: ActionPayload{Type: "submit"},
	})
	require.Equal(t, form.ErrorMap{"password": "Password is required"}, state.Errors)
	require.Equal(t, "a@b.co", state.Values["email"])
}

func TestDispatch_NormalizesUndeclaredFields(t *testing.T) {
	state := dispatch(t, dispatchMux(t), "login", DispatchRequest{
		State: &form.State{
			Values: form.FormState{"email": "a@b.co", "stray": "x"},
			Errors: form.ErrorMap{"email": "Email is invalid", "ghost": "boo"},
		},
		Action: ActionPayload{Type: "change", Field: "stray", Value: "y"},
	})
	require.Equal(t, form.FormState{"email": "a@b.co", "password": ""}, state.Values)
	require.Equal(t, form.ErrorMap{"email": "Email is invalid"}, state.Errors)
	for field := range state.Errors {
		require.True(t, state.Values.Has(field), "error for undeclared field %q", field)
	}
}

func TestDispatch_Errors(t *testing.T) {
	mux := dispatchMux(t)

	rec := testsupport.Do(t, mux, testsupport.PostJSON("/api/forms/login/dispatch", `{"action":{"type":"explode"}}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown action")

	rec = testsupport.Do(t, mux, testsupport.PostJSON("/api/forms/profile/dispatch", `{"action":{"type":"submit"}}`))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = testsupport.Do(t, mux, testsupport.PostJSON("/api/forms/login/dispatch", `{"action":`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	huge := `{"action":{"type":"change","field":"email","value":"` + strings.Repeat("a", MaxDispatchBody) + `"}}`
	rec = testsupport.Do(t, mux, testsupport.PostJSON("/api/forms/login/dispatch", huge))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
