package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/themekit/internal/styles"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     FieldErrors
	}{
		{"valid", "ada@example.com", "secret1", FieldErrors{}},
		{"empty", "", "", FieldErrors{
			FieldEmail:    "Email is required.",
			FieldPassword: "Password is required.",
		}},
		{"invalid email", "ada@example", "secret1", FieldErrors{FieldEmail: "Email is invalid."}},
		{"short password", "ada@example.com", "abc", FieldErrors{FieldPassword: "Password must be at least 6 characters."}},
		{"exactly six", "a@b.c", "abcdef", FieldErrors{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLogin(tt.email, tt.password)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.OK())
		})
	}
}

func TestFieldErrorsState(t *testing.T) {
	errs := ValidateLogin("", "longenough")
	base := styles.State{Focused: true}

	email := errs.State(FieldEmail, base)
	assert.True(t, email.Error)
	assert.True(t, email.Focused)

	assert.False(t, errs.State(FieldPassword, base).Error)
	assert.Equal(t, []string{FieldEmail}, errs.Fields())
	assert.Equal(t, "email: Email is required.", errs.Error())
}
