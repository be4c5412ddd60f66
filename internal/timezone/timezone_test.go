package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	_, offset := time.Date(2025, 1, 1, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestStartOfDay(t *testing.T) {
	loc := Location(DefaultTimezone)
	ts := time.Date(2025, 10, 20, 17, 45, 12, 99, loc)

	got := StartOfDay(ts)

	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, loc), got)
}
