package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co", true},
		{"a@b.c", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@example", false},
		{"user@@example.com", false},
		{"user@example.", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidEmail(tc.email))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	testCases := []struct {
		description string
		password    string
		strong      bool
	}{
		{"Meets all rules", "Passw0rd", true},
		{"Longer with specials", "Str0ng!Password", true},
		{"Too short", "Pw1addd", false},
		{"No uppercase", "password1", false},
		{"No lowercase", "PASSWORD1", false},
		{"No digit", "Password", false},
		{"Empty", "", false},
		{"Digits only", "12345678", false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.strong, IsStrongPassword(tc.password))
		})
	}
}
