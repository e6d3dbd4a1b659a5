package portion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNetworkPortion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"digits only", "6505551212", "6505551212"},
		{"separators", "(650) 555-1212", "6505551212"},
		{"leading plus", "+1 650 555 1212", "+16505551212"},
		{"plus not first", "1+6505551212", "16505551212"},
		{"pause stops", "6505551212,1234", "6505551212"},
		{"wait stops", "6505551212;1234", "6505551212"},
		{"star and hash", "*21*1234#", "*21*1234#"},
		{"wild kept", "650555NNNN", "650555NNNN"},
		{"letters dropped", "1-800-FLOWERS", "1800"},
		{"clir on plus", "*31#+16505551212", "*31#+16505551212"},
		{"clir off plus", "#31#+16505551212", "#31#+16505551212"},
		{"other mmi plus dropped", "*21#+16505551212", "*21#16505551212"},
		{"fullwidth digits", "６５０５５５１２１２", "6505551212"},
		{"arabic-indic digits", "٠١٢٣٤٥٦٧٨٩", "0123456789"},
		{"only controls", ",;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractNetworkPortion(tt.input))
		})
	}
}

func TestExtractNetworkPortionIdempotent(t *testing.T) {
	inputs := []string{
		"", "+1 (650) 555-1212,,123", "*31#+1650", "１２３+456", "N1-2;3", "abc+def",
	}
	for _, in := range inputs {
		once := ExtractNetworkPortion(in)
		assert.Equal(t, once, ExtractNetworkPortion(once), "input %q", in)
	}
}

func TestExtractNetworkPortionAlt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"leading plus", "+1 650 555 1212", "+16505551212"},
		{"plus anywhere once", "1+650+555", "1+650555"},
		{"mmi plus kept", "*21#+16505551212", "*21#+16505551212"},
		{"pause stops", "+1650,123", "+1650"},
		{"unicode digits dropped", "６５0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractNetworkPortionAlt(tt.input))
		})
	}
}

func TestExtractPostDialPortion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no post dial", "6505551212", ""},
		{"pause", "6505551212,1234", ",1234"},
		{"wait", "6505551212;1234", ";1234"},
		{"earliest control wins", "650;555,1212", ";555,1212"},
		{"separators removed", "650,12-34 #", ",1234#"},
		{"letters removed", "650,1a2", ",12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPostDialPortion(tt.input))
		})
	}
}

func TestIndexOfLastNetworkChar(t *testing.T) {
	assert.Equal(t, -1, IndexOfLastNetworkChar(""))
	assert.Equal(t, 3, IndexOfLastNetworkChar("1234"))
	assert.Equal(t, 1, IndexOfLastNetworkChar("12,34"))
	assert.Equal(t, 0, IndexOfLastNetworkChar("1;2,34"))
	assert.Equal(t, -1, IndexOfLastNetworkChar(",12"))
}

func TestStripSeparators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"(650) 555-1212", "6505551212"},
		{"+1 650,555;1212", "+1650,555;1212"},
		{"1-800-FLOWERS", "1800"},
		{"１２３", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripSeparators(tt.input))
		})
	}
}

func TestConvertKeypadLettersToDigits(t *testing.T) {
	assert.Equal(t, "1-800-3569377", ConvertKeypadLettersToDigits("1-800-FLOWERS"))
	assert.Equal(t, "22233344455566677778889999", ConvertKeypadLettersToDigits("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "+1 (650)", ConvertKeypadLettersToDigits("+1 (650)"))
	assert.Equal(t, "18003569377", ConvertAndStrip("1-800-flowers"))
}

func TestConvertPreDial(t *testing.T) {
	assert.Equal(t, "650,123;4", ConvertPreDial("650p123w4"))
	assert.Equal(t, "650,123;4", ConvertPreDial("650P123W4"))
	assert.Equal(t, "", ConvertPreDial(""))
}

func TestReplaceUnicodeDigits(t *testing.T) {
	assert.Equal(t, "+1 650", ReplaceUnicodeDigits("+１ ６５０"))
	assert.Equal(t, "abc", ReplaceUnicodeDigits("abc"))
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"formatted", "+1 (650) 555-1212", "+16505551212"},
		{"plus only leading", "1+650", "1650"},
		{"keypad letters", "1-800-GOOG-411", "18004664411"},
		{"unicode digits", "+８１ ３", "+813"},
		{"post dial dropped", "650,123", "650123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNumber(tt.input))
		})
	}
}

func TestCallerIDMinMatch(t *testing.T) {
	assert.Equal(t, "2121555", ToCallerIDMinMatch("+1 (650) 555-1212"))
	assert.Equal(t, "2121555", ToCallerIDMinMatch("555-1212"))
	assert.Equal(t, "321", ToCallerIDMinMatch("123"))
	assert.Equal(t, "", ToCallerIDMinMatch(""))
	assert.Equal(t, "2121555056+", GetStrippedReversed("+650-555-1212,99"))
}

func TestURINumbers(t *testing.T) {
	assert.True(t, IsURINumber("alice@example.com"))
	assert.True(t, IsURINumber("alice%40example.com"))
	assert.False(t, IsURINumber("6505551212"))

	assert.Equal(t, "alice", UsernameFromURINumber("alice@example.com"))
	assert.Equal(t, "bob", UsernameFromURINumber("bob%40example.com"))
	assert.Equal(t, "6505551212", UsernameFromURINumber("6505551212"))
}

func TestIsWellFormedSMSAddress(t *testing.T) {
	assert.True(t, IsWellFormedSMSAddress("+1 650 555 1212"))
	assert.True(t, IsWellFormedSMSAddress("12345"))
	assert.False(t, IsWellFormedSMSAddress("+"))
	assert.False(t, IsWellFormedSMSAddress(""))
	assert.False(t, IsWellFormedSMSAddress("abc"))
}

func TestIsGlobalPhoneNumber(t *testing.T) {
	assert.True(t, IsGlobalPhoneNumber("+16505551212"))
	assert.True(t, IsGlobalPhoneNumber("650.555-1212"))
	assert.False(t, IsGlobalPhoneNumber("+"))
	assert.False(t, IsGlobalPhoneNumber(""))
	assert.False(t, IsGlobalPhoneNumber("650 555"))
	assert.False(t, IsGlobalPhoneNumber("++1650"))
}

func BenchmarkExtractNetworkPortion(b *testing.B) {
	inputs := []string{
		"+1 (650) 555-1212",
		"*31#+16505551212",
		"6505551212,,1234#",
		"٠١٢٣٤٥٦٧٨٩",
	}

	b.ResetTimer()
	for b.Loop() {
		for _, input := range inputs {
			ExtractNetworkPortion(input)
		}
	}
}
