package kst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2025-03-14")
	require.True(t, ok)
	assert.Equal(t, "2025-03-14", FormatDate(parsed))
	assert.Equal(t, Location, parsed.Location())

	for _, bad := range []string{"", "2025-3-14", "14/03/2025", "2025-03-14T10:00", "not a date"} {
		_, ok := ParseDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseDateTime(t *testing.T) {
	parsed, ok := ParseDateTime("2025-03-14T09:30")
	require.True(t, ok)
	assert.Equal(t, "2025-03-14T09:30", FormatDateTime(parsed))

	// space separator is tolerated
	spaced, ok := ParseDateTime("2025-03-14 09:30")
	require.True(t, ok)
	assert.True(t, parsed.Equal(spaced))

	for _, bad := range []string{"", "2025-03-14", "2025-03-14T9:30", "garbage"} {
		_, ok := ParseDateTime(bad)
		assert.False(t, ok, bad)
	}
}

func TestMidnight(t *testing.T) {
	// 23:30 UTC is already past midnight the next day in KST
	utc := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", FormatDate(Midnight(utc)))

	kstNoon := time.Date(2025, 3, 14, 12, 0, 0, 0, Location)
	midnight := Midnight(kstNoon)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, "2025-03-14", FormatDate(midnight))
}
