package season

import "time"

// PlanScroll computes an approximate vertical offset that brings today's row
// into view. It returns ok=false when today is not part of the displayed
// grid (a different month or year): the calendar never auto-scrolls across
// months.
//
// The target is intentionally rough: row index times one-and-a-half cell
// heights plus the row margin is close enough for the renderer to land the
// row on screen.
func PlanScroll(cells []GridCell, today time.Time, columnsPerRow int, cellHeight float64, rowMargin float64) (float64, bool) {
	if columnsPerRow <= 0 {
		return 0, false
	}

	todayKey := DayKeyOf(today)
	for index, cell := range cells {
		if cell.Empty {
			continue
		}
		if DayKeyOf(cell.Date) == todayKey {
			row := index / columnsPerRow
			return float64(row) * (cellHeight*1.5 + rowMargin), true
		}
	}
	return 0, false
}
