package entity

import (
	"testing"

	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{"  25.00  ", 2500},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Accepts smallest positive amount", func(t *testing.T) {
		cents, err := ParsePositiveAmount("0.01")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), cents)
	})

	t.Run("Propagates parse errors", func(t *testing.T) {
		_, err := ParsePositiveAmount("-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{150, "1.50"},
		{123456789, "1234567.89"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// string -> cents -> string
	testCases := []string{
		"0.00",
		"0.01",
		"1.00",
		"10.50",
		"1234.56",
		"9999999.99",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			cents, err := ParseAmount(tc)
			assert.NoError(t, err)
			assert.Equal(t, tc, CentsToString(cents))
		})
	}
}

func TestProjectedReturnCents(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		expected int64
	}{
		{"Zero", 0, 0},
		{"Round hundred", 10000, 10500},
		{"Single cent truncates", 1, 1},
		{"Truncation below half cent", 33, 34},
		{"Large amount", 100000000, 105000000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ProjectedReturnCents(tc.cents))
		})
	}
}
