package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShape(t *testing.T) {
	id := New("c")
	parts := strings.Split(id, "_")
	assert.Len(t, parts, 3)
	assert.Equal(t, "c", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 6)
}

func TestNewEmptyPrefixDefaults(t *testing.T) {
	assert.True(t, strings.HasPrefix(New(""), "id_"))
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New("s")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
