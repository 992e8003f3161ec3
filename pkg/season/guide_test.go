package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGuideEvents(t *testing.T) {
	t.Run("March 5 carries the Ash Wednesday entry", func(t *testing.T) {
		events := LookupGuideEvents(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))

		require.Len(t, events, 1)
		assert.Equal(t, "Ash Wednesday", events[0].Title)
		assert.Equal(t, "March 5", events[0].MonthDay)
	})

	t.Run("entries recur every year", func(t *testing.T) {
		events := LookupGuideEvents(time.Date(2031, time.March, 5, 0, 0, 0, 0, time.UTC))

		require.Len(t, events, 1)
		assert.Equal(t, "Ash Wednesday", events[0].Title)
	})

	t.Run("a date with no configured entry returns an empty sequence", func(t *testing.T) {
		events := LookupGuideEvents(time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC))

		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("matches on UTC month and day", func(t *testing.T) {
		// 22:00 UTC-4 on April 17 is already April 18 in UTC.
		minusFour := time.FixedZone("UTC-4", -4*60*60)
		events := LookupGuideEvents(time.Date(2025, time.April, 17, 22, 0, 0, 0, minusFour))

		require.Len(t, events, 1)
		assert.Equal(t, "Good Friday", events[0].Title)
	})
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		label   string
		wantKey guideKey
		wantOk  bool
	}{
		{"March 5", guideKey{time.March, 5}, true},
		{"April 20", guideKey{time.April, 20}, true},
		{"march 5", guideKey{}, false},
		{"March", guideKey{}, false},
		{"March 5, 2025", guideKey{}, false},
		{"Smarch 5", guideKey{}, false},
		{"March 42", guideKey{}, false},
	}

	for _, tt := range tests {
		key, ok := parseMonthDay(tt.label)
		assert.Equal(t, tt.wantOk, ok, "label %q", tt.label)
		if tt.wantOk {
			assert.Equal(t, tt.wantKey, key, "label %q", tt.label)
		}
	}
}
