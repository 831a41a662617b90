package fstx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterStackIsNonDestructive(t *testing.T) {
	base := NewCounterStack(4)
	bumped := base.Add("S")

	assert.Equal(t, 0, base.Get("S"))
	assert.Equal(t, 1, bumped.Get("S"))
}

func TestCounterStackIndependentBranches(t *testing.T) {
	base := NewCounterStack(4)
	branch1 := base.Add("S")
	branch2 := base.Add("S").Add("S")

	assert.Equal(t, 1, branch1.Get("S"))
	assert.Equal(t, 2, branch2.Get("S"))
}

func TestCounterStackExceedsMax(t *testing.T) {
	stack := NewCounterStack(2)
	assert.False(t, stack.ExceedsMax("S"))

	stack = stack.Add("S").Add("S")
	assert.True(t, stack.ExceedsMax("S"))
}

func TestCounterStackTracksNamesIndependently(t *testing.T) {
	stack := NewCounterStack(4).Add("S")
	assert.Equal(t, 1, stack.Get("S"))
	assert.Equal(t, 0, stack.Get("T"))
}
