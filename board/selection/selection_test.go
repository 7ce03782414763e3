package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	var s Selection
	assert.Equal(t, Empty, s.State())

	s.Toggle("a")
	assert.Equal(t, Single, s.State())
	s.Toggle("b")
	assert.Equal(t, Multiple, s.State())
	s.Toggle("a")
	assert.Equal(t, Single, s.State())
	assert.Equal(t, []string{"b"}, s.IDs())
	s.Toggle("b")
	assert.Equal(t, Empty, s.State())
}

func TestClickReplaces(t *testing.T) {
	var s Selection
	s.Select("a", true)
	s.Select("b", true)
	s.Select("c", false)
	assert.Equal(t, Single, s.State())
	assert.Equal(t, []string{"c"}, s.IDs())
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("a"))
}

func TestClearAndRetain(t *testing.T) {
	var s Selection
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")
	s.Retain(func(id string) bool { return id != "b" })
	assert.Equal(t, []string{"a", "c"}, s.IDs())

	ids := s.IDs()
	ids[0] = "z"
	assert.True(t, s.Contains("a"))

	s.Clear()
	assert.Equal(t, Empty, s.State())
	assert.Zero(t, s.Len())
	assert.Equal(t, "empty", s.State().String())
}
