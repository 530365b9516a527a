package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EmailPattern is the loose local@domain.tld shape accepted by both forms.
// It is intentionally unanchored: any run of non-space characters around an
// "@" and a later "." matches.
var EmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	PhoneDigits       = 10
	MinAge            = 13
	MaxAge            = 120
	MinPasswordLength = 8
)

// Rule inspects one field of the submitted values and returns a message when
// the field is invalid.
type Rule func(values map[string]string) (string, bool)

// fieldRule binds a rule to the field whose error it reports.
type fieldRule struct {
	field string
	check Rule
}

func required(field, message string, next ...Rule) Rule {
	return func(values map[string]string) (string, bool) {
		if values[field] == "" {
			return message, false
		}
		for _, rule := range next {
			if msg, ok := rule(values); !ok {
				return msg, false
			}
		}
		return "", true
	}
}

func notBlank(field, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if strings.TrimSpace(values[field]) == "" {
			return message, false
		}
		return "", true
	}
}

func emailShape(field, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if !ValidEmail(values[field]) {
			return message, false
		}
		return "", true
	}
}

func phoneDigits(field, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if !ValidPhone(values[field]) {
			return message, false
		}
		return "", true
	}
}

func ageRange(field, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if !ValidAge(values[field]) {
			return message, false
		}
		return "", true
	}
}

func minLength(field string, length int, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if utf8.RuneCountInString(values[field]) < length {
			return message, false
		}
		return "", true
	}
}

func matches(field, other, message string) Rule {
	return func(values map[string]string) (string, bool) {
		if values[field] != values[other] {
			return message, false
		}
		return "", true
	}
}

// ValidEmail reports whether raw has the local@domain.tld shape.
func ValidEmail(raw string) bool {
	return EmailPattern.MatchString(raw)
}

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether raw carries exactly ten digits once separators
// and other non-digit characters are removed.
func ValidPhone(raw string) bool {
	return len(StripNonDigits(raw)) == PhoneDigits
}

// ParseAge parses a base-10 integer age, tolerating surrounding whitespace
// and a leading sign. Decimals ("13.5"), exponents and hex ("0x20") are
// rejected rather than truncated.
func ParseAge(raw string) (int, bool) {
	trimmed := strings.TrimFunc(raw, unicode.IsSpace)
	if trimmed == "" {
		return 0, false
	}
	age, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return age, true
}

// ValidAge reports whether raw is an integer within [MinAge, MaxAge].
func ValidAge(raw string) bool {
	age, ok := ParseAge(raw)
	if !ok {
		return false
	}
	return age >= MinAge && age <= MaxAge
}
