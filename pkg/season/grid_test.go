package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_WideMode(t *testing.T) {
	tests := []struct {
		name       string
		month      time.Month
		year       int
		wantOffset int // weekday of the 1st, 0 = Sunday
		wantDays   int
	}{
		{"March 2025 starts on Saturday", time.March, 2025, 6, 31},
		{"April 2025 starts on Tuesday", time.April, 2025, 2, 30},
		{"February 2025 is a plain February", time.February, 2025, 6, 28},
		{"February 2024 is a leap February", time.February, 2024, 4, 29},
		{"June 2025 starts on Sunday, no padding", time.June, 2025, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildGrid(tt.month, tt.year, ViewportWide)
			require.Len(t, cells, tt.wantOffset+tt.wantDays)

			for i := 0; i < tt.wantOffset; i++ {
				assert.True(t, cells[i].Empty, "cell %d should be padding", i)
			}
			for day := 1; day <= tt.wantDays; day++ {
				cell := cells[tt.wantOffset+day-1]
				assert.False(t, cell.Empty)
				assert.Equal(t, time.Date(tt.year, tt.month, day, 0, 0, 0, 0, time.UTC), cell.Date)
			}
		})
	}
}

func TestBuildGrid_NarrowModeHasNoPadding(t *testing.T) {
	cells := BuildGrid(time.March, 2025, ViewportNarrow)

	require.Len(t, cells, 31)
	for day := 1; day <= 31; day++ {
		assert.False(t, cells[day-1].Empty)
		assert.Equal(t, time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC), cells[day-1].Date)
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	first := BuildGrid(time.April, 2025, ViewportWide)
	second := BuildGrid(time.April, 2025, ViewportWide)

	assert.Equal(t, first, second)
}

func TestViewportColumns(t *testing.T) {
	assert.Equal(t, 7, ViewportWide.Columns())
	assert.Equal(t, 2, ViewportNarrow.Columns())
}
