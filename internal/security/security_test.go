package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "  Ann  ", expected: "Ann"},
		{input: "<b>Ann</b>", expected: "Ann"},
		{input: "<script>alert(1)</script>Bob", expected: "Bob"},
		{input: "Ann\x00", expected: "Ann"},
		{input: "O'Brien & Sons", expected: "O'Brien & Sons"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}

func TestSanitizeOptional(t *testing.T) {
	assert.Nil(t, SanitizeOptional(nil))

	value := " <i>lee</i> "
	assert.Equal(t, "lee", *SanitizeOptional(&value))
}

func TestServiceToken(t *testing.T) {
	token, err := GenerateServiceToken("tictactoe_bot", "secret", time.Now())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "tictactoe_bot", claims.Service)

	_, err = ValidateToken(token, "other")
	assert.Error(t, err)
}

func TestServiceToken_Expired(t *testing.T) {
	token, err := GenerateServiceToken("tictactoe_bot", "secret", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.Error(t, err)
}
