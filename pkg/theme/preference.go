package theme

import "strings"

// Preference is the colour scheme applied to the whole document.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// StorageKey is the key under which the preference is persisted.
const StorageKey = "theme"

// ParsePreference accepts only the literal "light" or "dark", ignoring case
// and surrounding whitespace.
func ParsePreference(raw string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(raw))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// IsDark reports whether the preference is dark. The zero value is light.
func (p Preference) IsDark() bool {
	return p == Dark
}

// Toggle returns the opposite preference.
func (p Preference) Toggle() Preference {
	if p.IsDark() {
		return Light
	}
	return Dark
}

// ClassName is the document class for the preference: "dark" or empty.
func (p Preference) ClassName() string {
	if p.IsDark() {
		return "dark"
	}
	return ""
}

func (p Preference) String() string {
	if p.IsDark() {
		return string(Dark)
	}
	return string(Light)
}
