package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentityValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain address", input: "a@b.com", want: true},
		{name: "subdomain", input: "user@mail.example.org", want: true},
		{name: "dots in local part", input: "first.last@example.com", want: true},
		{name: "empty", input: "", want: false},
		{name: "no at sign", input: "abc.example.com", want: false},
		{name: "two at signs", input: "a@b@c.com", want: false},
		{name: "missing local part", input: "@b.com", want: false},
		{name: "missing domain", input: "a@", want: false},
		{name: "domain without dot", input: "a@bcom", want: false},
		{name: "dot but empty tld", input: "a@b.", want: false},
		{name: "whitespace in local part", input: "a b@c.com", want: false},
		{name: "whitespace in domain", input: "a@b c.com", want: false},
		{name: "leading whitespace", input: " a@b.com", want: false},
		{name: "trailing whitespace", input: "a@b.com ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIdentityValid(tt.input), "input=%q", tt.input)
		})
	}
}

func TestIsSecretValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "all classes present", input: "Abcdef1!", want: true},
		{name: "longer valid secret", input: "Str0ng&Secret", want: true},
		{name: "every allowed symbol works", input: "Aa1!@#$%^&*", want: true},
		{name: "too short", input: "Ab1!xyz", want: false},
		{name: "no digit", input: "Abcdefg!", want: false},
		{name: "no lowercase", input: "ABCDEF1!", want: false},
		{name: "no uppercase", input: "abcdef1!", want: false},
		{name: "no symbol", input: "Abcdefg1", want: false},
		{name: "symbol outside the set", input: "Abcdef1?", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSecretValid(tt.input), "input=%q", tt.input)
		})
	}
}
