package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", `Please provide a value for "title"`},
		{"whitespace only", "   \t", `Please provide a value for "title"`},
		{"present", "Go 101", ""},
		{"present with padding", "  Go 101  ", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Required("title")(tt.value))
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain address", "a@b.com", true},
		{"subdomain", "joe@mail.example.org", true},
		{"empty", "", false},
		{"no at sign", "not-an-email", false},
		{"display name form rejected", "Joe <joe@example.com>", false},
		{"trailing space", "joe@example.com ", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := Email()(tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, "Please provide a valid email address", msg)
			}
		})
	}
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	check := MinLength("password", 8)
	assert.Equal(t, `"password" must be at least 8 characters`, check("short"))
	assert.Empty(t, check("secret123"))
	assert.Empty(t, check("12345678"))
}

func TestRunOrdering(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{Field: "firstName", Checks: []Check{Required("firstName")}},
		{Field: "lastName", Checks: []Check{Required("lastName")}},
		{Field: "emailAddress", Checks: []Check{Required("emailAddress"), Email()}},
		{Field: "password", Checks: []Check{Required("password"), MinLength("password", 8)}},
	}

	msgs := Run(map[string]string{}, rules)

	// One message per violated check, in declaration order.  An empty
	// email violates both its checks, as does an empty password.
	assert.Equal(t, []string{
		`Please provide a value for "firstName"`,
		`Please provide a value for "lastName"`,
		`Please provide a value for "emailAddress"`,
		"Please provide a valid email address",
		`Please provide a value for "password"`,
		`"password" must be at least 8 characters`,
	}, msgs)
}

func TestRunValidPayload(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{Field: "title", Checks: []Check{Required("title")}},
		{Field: "description", Checks: []Check{Required("description")}},
	}
	msgs := Run(map[string]string{
		"title":       "Intro to Go",
		"description": "Interfaces and goroutines",
	}, rules)
	assert.Nil(t, msgs)
}
