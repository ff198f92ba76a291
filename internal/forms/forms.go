// Package forms validates form input and maps failures onto input styles.
package forms

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opencode-ai/themekit/internal/styles"
)

// Field names used by ValidateLogin.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a field name to its first validation message.
type FieldErrors map[string]string

// OK reports whether no field failed.
func (e FieldErrors) OK() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// State returns base with the error flag set when field failed.
func (e FieldErrors) State(field string, base styles.State) styles.State {
	if _, failed := e[field]; failed {
		base.Error = true
	}
	return base
}

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// ValidateLogin checks a login form. Each field reports at most one message.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}

	switch {
	case email == "":
		errs[FieldEmail] = "Email is required."
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Email is invalid."
	}

	switch {
	case password == "":
		errs[FieldPassword] = "Password is required."
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs[FieldPassword] = "Password must be at least 6 characters."
	}

	return errs
}
