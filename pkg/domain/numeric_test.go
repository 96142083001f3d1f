package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"45", 45},
		{"45.50", 45.5},
		{"$45.00 deposit", 45},
		{"  -12.5 ", -12.5},
		{"1,200", 1200},
		{"abc", 0},
		{"", 0},
		{"1.2.3", 1.2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceNumber(tc.in), "input %q", tc.in)
	}
}

func TestParsesFinite(t *testing.T) {
	assert.True(t, ParsesFinite("99.95"))
	assert.True(t, ParsesFinite("$45.00 deposit"))
	assert.True(t, ParsesFinite("-3"))
	assert.False(t, ParsesFinite("abc"))
	assert.False(t, ParsesFinite(""))
	assert.False(t, ParsesFinite("---"))
}
