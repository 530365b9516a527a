// Package httpx holds the net/http plumbing shared by the site components.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// StatusError carries the HTTP status a handler failure maps to.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Errorf builds a StatusError with a formatted message.
func Errorf(code int, format string, args ...any) error {
	return StatusError{Code: code, Err: fmt.Errorf(format, args...)}
}

// StatusOf returns the status carried by err, 500 otherwise.
func StatusOf(err error) int {
	var status StatusError
	if errors.As(err, &status) {
		return status.StatusCode()
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError writes err as a JSON error body. Internal failures are reported
// with the generic status text.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	msg := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	WriteJSON(w, status, errorResponse{Error: msg})
}

// AllowMethods replies 405 and returns false unless r uses one of methods.
// GET implies HEAD.
func AllowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
			return true
		}
	}
	allow := append([]string{}, methods...)
	for _, method := range methods {
		if method == http.MethodGet {
			allow = append(allow, http.MethodHead)
			break
		}
	}
	w.Header().Set("Allow", strings.Join(allow, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

// WantsJSON reports whether the client asked for JSON through Accept, or
// sent a JSON body without an Accept preference.
func WantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
			return true
		}
	}
	if r.Header.Get("Accept") == "" {
		return IsJSONBody(r)
	}
	return false
}

// IsJSONBody reports whether the request body is declared as JSON.
func IsJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// SafeRedirect returns target when it is a same-origin absolute path, the
// path of referer when that is usable, and fallback otherwise.
func SafeRedirect(target, referer, fallback string) string {
	if local, ok := localPath(target); ok {
		return local
	}
	if referer != "" {
		if u, err := url.Parse(referer); err == nil {
			ref := u.EscapedPath()
			if u.RawQuery != "" {
				ref += "?" + u.RawQuery
			}
			if local, ok := localPath(ref); ok {
				return local
			}
		}
	}
	return fallback
}

func localPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	return raw, true
}

// MountPath joins basePath and routePath into a mux pattern.
func MountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
