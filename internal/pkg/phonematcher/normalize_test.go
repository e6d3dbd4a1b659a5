package phonematcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+1 650-555-1212", "2121555"},
		{"sip:+16505551212@example.com;user=phone", "2121555"},
		{"tel:555-1212", "2121555"},
		{"1212", "2121"},
		{"6505551212,123", "2121555"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.input))
		})
	}
}

func TestExtractUserPart(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"sip:alice@domain.com", "alice"},
		{"sips:+49123456789@domain.com;tag=xyz", "+49123456789"},
		{"tel:+49123456789", "+49123456789"},
		{"tel:+49123456789;ext=12", "+49123456789"},
		{"alice@domain.com", "alice"},
		{"6505551212%40gw.example.com", "6505551212"},
		{"6505551212;123", "6505551212;123"},
		{"6505551212", "6505551212"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractUserPart(tt.input))
		})
	}
}

func BenchmarkKey(b *testing.B) {
	for b.Loop() {
		Key("sip:+16505551212@gateway.example.com;user=phone")
	}
}
