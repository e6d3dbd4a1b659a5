package intl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberToE164(t *testing.T) {
	tests := []struct {
		number   string
		iso      string
		expected string
	}{
		{"(650) 253-0000", "US", "+16502530000"},
		{"650-253-0000", "us", "+16502530000"},
		{"+1 650 253 0000", "GB", "+16502530000"},
		{"020 7031 3000", "GB", "+442070313000"},
		{"03-6384-9000", "JP", "+81363849000"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got, err := FormatNumberToE164(tt.number, tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatNumberToE164Invalid(t *testing.T) {
	for _, number := range []string{"", "12", "abc"} {
		_, err := FormatNumberToE164(number, "US")
		assert.ErrorIs(t, err, ErrUnparsable, number)
	}
}

func TestFormatNumberToRFC3966(t *testing.T) {
	got, err := FormatNumberToRFC3966("6502530000", "US")
	require.NoError(t, err)
	assert.Equal(t, "tel:+1-650-253-0000", got)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		iso      string
		expected string
	}{
		{"national digits", "6502530000", "US", "(650) 253-0000"},
		{"plus keeps international", "+16502530000", "US", "+1 650-253-0000"},
		{"mmi star", "*21#", "US", "*21#"},
		{"mmi hash", "#31#6502530000", "US", "#31#6502530000"},
		{"japan own plus", "+81363849000", "JP", "03-6384-9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatNumber(tt.number, tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := FormatNumber("abc", "US")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestFormatJapanese(t *testing.T) {
	assert.Equal(t, "03-6384-9000", FormatJapanese("0363849000"))
	assert.Equal(t, "03-6384-9000", FormatJapanese("+81363849000"))
	assert.Equal(t, "123", FormatJapanese("123"))
	assert.Equal(t, "+16502530000", FormatJapanese("+16502530000"))
}

func TestIsInternationalNumber(t *testing.T) {
	assert.True(t, IsInternationalNumber("+442070313000", "US"))
	assert.True(t, IsInternationalNumber("011 44 20 7031 3000", "US"))
	assert.False(t, IsInternationalNumber("6502530000", "US"))
	assert.False(t, IsInternationalNumber("+16502530000", "us"))
	assert.False(t, IsInternationalNumber("*21#", "US"))
	assert.False(t, IsInternationalNumber("", "US"))
}

func TestAreSamePhoneNumber(t *testing.T) {
	assert.True(t, AreSamePhoneNumber("+16502530000", "650-253-0000", "us"))
	assert.True(t, AreSamePhoneNumber("+442070313000", "020 7031 3000", "GB"))
	assert.False(t, AreSamePhoneNumber("6502530000", "6502530001", "US"))
	assert.False(t, AreSamePhoneNumber("abc", "6502530000", "US"))
	assert.False(t, AreSamePhoneNumber("6502530000", "abc", "US"))
}

func TestCountryCodeForRegion(t *testing.T) {
	assert.Equal(t, 1, CountryCodeForRegion("us"))
	assert.Equal(t, 81, CountryCodeForRegion("JP"))
	assert.Equal(t, 0, CountryCodeForRegion("ZZ"))
}
