package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAgeBirthdayBoundary(t *testing.T) {
	today := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

	before := time.Date(2000, time.March, 11, 0, 0, 0, 0, time.UTC)
	age := CalculateAge(&before, today)
	require.NotNil(t, age)
	assert.Equal(t, 23, *age)

	on := time.Date(2000, time.March, 10, 0, 0, 0, 0, time.UTC)
	age = CalculateAge(&on, today)
	require.NotNil(t, age)
	assert.Equal(t, 24, *age)
}

func TestCalculateAgeMissingDate(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, CalculateAge(nil, today))

	var zero time.Time
	assert.Nil(t, CalculateAge(&zero, today))
}
