package booster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintMapDefaults(t *testing.T) {
	m := ConstraintMap{0: NonDecreasing, 3: NonIncreasing}

	assert.Equal(t, NonDecreasing, m.Get(0))
	assert.Equal(t, NonIncreasing, m.Get(3))
	assert.Equal(t, Unconstrained, m.Get(1))

	var empty ConstraintMap
	assert.Equal(t, Unconstrained, empty.Get(0))
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "unconstrained", Unconstrained.String())
	assert.Equal(t, "non_decreasing", NonDecreasing.String())
	assert.Equal(t, "non_increasing", NonIncreasing.String())
}
