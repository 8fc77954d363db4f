package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"already valid", "Prop", "Prop", false},
		{"underscores kept", "my_prop_", "my_prop_", false},
		{"spaces removed", "my prop", "myprop", false},
		{"punctuation removed", "a-b.c!d", "abcd", false},
		{"leading digit prefixed", "3Leg", "_3Leg", false},
		{"leading digit after strip", "-7up", "_7up", false},
		{"all digits prefixed", "123", "_123", false},
		{"leading underscore kept", "_x", "_x", false},
		{"non-ascii removed", "café", "caf", false},
		{"non-ascii digit removed", "٣a", "a", false},
		{"empty", "", "", true},
		{"nothing usable", "!!! ...", "", true},
		{"only non-ascii", "日本", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidName)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitize_IdempotentAndSafe(t *testing.T) {
	inputs := []string{
		"Prop", "my prop", "3Leg", "123", "_1", "__", "a b c 1 2 3",
		"pCube1|pCubeShape1", "Obj:ns", "tab\there", "x\x00y", "9", "_",
	}
	for _, in := range inputs {
		once, err := Sanitize(in)
		require.NoError(t, err, in)
		assert.True(t, IsValidName(once), "Sanitize(%q) = %q is not a valid name", in, once)

		twice, err := Sanitize(once)
		require.NoError(t, err, in)
		assert.Equal(t, once, twice, "Sanitize not idempotent for %q", in)
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Prop_001", true},
		{"_1", true},
		{"_", true},
		{"a", true},
		{"", false},
		{"1a", false},
		{"a-b", false},
		{"a b", false},
		{"é", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.in))
		})
	}
}
