package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePickedDate(t *testing.T) {
	t.Run("valid date parses to UTC midnight", func(t *testing.T) {
		picked, err := ParsePickedDate("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), picked)
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		invalid := []string{"", "10/03/2025", "2025-13-01", "March 10", "2025-03-10T12:00:00Z"}
		for _, value := range invalid {
			_, err := ParsePickedDate(value)
			assert.ErrorIs(t, err, ErrUnparseableDate, "value %q", value)
		}
	})
}

func TestStorageDateShift(t *testing.T) {
	picked := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	stored := ToStorageDate(picked)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), stored)

	t.Run("round-trips to the picked day", func(t *testing.T) {
		assert.Equal(t, picked, FromStorageDate(stored))
	})

	t.Run("round-trips across month and year boundaries", func(t *testing.T) {
		days := []time.Time{
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), // leap February behind it
		}
		for _, day := range days {
			assert.Equal(t, day, FromStorageDate(ToStorageDate(day)), "day %s", day)
		}
	})
}

func TestUTCMidnightUsesUTCComponents(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC of the same day; the UTC day must win.
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2025, time.March, 5, 23, 30, 0, 0, plusTwo)

	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), UTCMidnight(local))

	// 01:00 in UTC+2 is the previous UTC day.
	earlyMorning := time.Date(2025, time.March, 5, 1, 0, 0, 0, plusTwo)
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), UTCMidnight(earlyMorning))
}

func TestSameUTCDay(t *testing.T) {
	lastSecond := time.Date(2025, time.March, 4, 23, 59, 59, 0, time.UTC)

	assert.True(t, SameUTCDay(lastSecond, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameUTCDay(lastSecond, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
}
