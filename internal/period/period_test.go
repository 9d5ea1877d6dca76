package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"budgetscope/internal/period"
)

func TestOf(t *testing.T) {
	p := period.Of(time.Date(2024, 6, 17, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, period.Period{Month: 6, Year: 2024}, p)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, period.Period{Month: 1, Year: 2024}.Validate())
	assert.NoError(t, period.Period{Month: 12, Year: 1}.Validate())
	assert.Error(t, period.Period{Month: 0, Year: 2024}.Validate())
	assert.Error(t, period.Period{Month: 13, Year: 2024}.Validate())
	assert.Error(t, period.Period{Month: 6, Year: 0}.Validate())
}

func TestBounds(t *testing.T) {
	start, end := period.Period{Month: 6, Year: 2024}.Bounds()
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls over into the next year.
	start, end = period.Period{Month: 12, Year: 2023}.Bounds()
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestContains(t *testing.T) {
	p := period.Period{Month: 6, Year: 2024}

	assert.True(t, p.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))
}
