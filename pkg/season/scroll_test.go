package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanScroll(t *testing.T) {
	const cellHeight = 120.0
	const rowMargin = 8.0
	rowHeight := cellHeight*1.5 + rowMargin

	t.Run("today outside the displayed month yields no target", func(t *testing.T) {
		cells := BuildGrid(time.March, 2025, ViewportWide)

		_, ok := PlanScroll(cells, time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), 7, cellHeight, rowMargin)
		assert.False(t, ok)

		_, ok = PlanScroll(cells, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 7, cellHeight, rowMargin)
		assert.False(t, ok, "same month of another year is not displayed")
	})

	t.Run("computes row offset in wide mode", func(t *testing.T) {
		// March 2025: 6 padding cells, so March 10 sits at index 15, row 2.
		cells := BuildGrid(time.March, 2025, ViewportWide)

		offset, ok := PlanScroll(cells, time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC), 7, cellHeight, rowMargin)

		require.True(t, ok)
		assert.Equal(t, 2*rowHeight, offset)
	})

	t.Run("first row scrolls to zero", func(t *testing.T) {
		cells := BuildGrid(time.June, 2025, ViewportWide)

		offset, ok := PlanScroll(cells, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), 7, cellHeight, rowMargin)

		require.True(t, ok)
		assert.Equal(t, 0.0, offset)
	})

	t.Run("narrow mode uses two columns per row", func(t *testing.T) {
		// No padding in narrow mode: March 10 is at index 9, row 4 of a 2-column flow.
		cells := BuildGrid(time.March, 2025, ViewportNarrow)

		offset, ok := PlanScroll(cells, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), 2, cellHeight, rowMargin)

		require.True(t, ok)
		assert.Equal(t, 4*rowHeight, offset)
	})

	t.Run("non-positive column count yields no target", func(t *testing.T) {
		cells := BuildGrid(time.March, 2025, ViewportWide)

		_, ok := PlanScroll(cells, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), 0, cellHeight, rowMargin)
		assert.False(t, ok)
	})
}
