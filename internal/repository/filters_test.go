package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsYearMonth(t *testing.T) {
	assert.True(t, IsYearMonth("2025-03"))
	assert.True(t, IsYearMonth("1999-12"))

	assert.False(t, IsYearMonth("2025-03-05"))
	assert.False(t, IsYearMonth("2025"))
	assert.False(t, IsYearMonth("2025-3"))
	assert.False(t, IsYearMonth(""))
	assert.False(t, IsYearMonth("march"))
}
