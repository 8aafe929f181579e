package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(5.5, Max(5.5, -1.0))
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(1.5, Abs(-1.5))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Clamp(-10, 0, 100))
	assert.Equal(100, Clamp(250, 0, 100))
	assert.Equal(42, Clamp(42, 0, 100))
}
