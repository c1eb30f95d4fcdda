package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+251-911-22-33-44", "251911223344"},
		{"0911223344", "911223344"},
		{"911223344", "911223344"},
		{" 09 11 22 33 44 ", "911223344"},
		{"000", ""},
		{"", ""},
		{"abc", ""},
		{"(0)911.22.33.44", "911223344"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "input %q", tt.in)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("0911223344", "911223344"))
	assert.True(t, Matches("0911-223-344", "+0911 223 344"))
	assert.False(t, Matches("0911223344", "0911223345"))
	assert.False(t, Matches("251911223344", "0911223344"), "no partial matching")
}

func TestValidate(t *testing.T) {
	got, err := Validate("0911223344")
	require.NoError(t, err)
	assert.Equal(t, "911223344", got)

	got, err = Validate("1234567")
	require.NoError(t, err)
	assert.Equal(t, "1234567", got)

	for _, in := range []string{"", "hello", "0000000123456", "123456", "0123456"} {
		_, err := Validate(in)
		assert.ErrorIs(t, err, ErrInvalidPhone, "input %q", in)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*****3344", Mask("911223344"))
	assert.Equal(t, "***", Mask("123"))
	assert.Equal(t, "", Mask(""))
}
