package season

import "time"

// ViewportClass is the display-width classification decided by the caller.
// Keeping it an explicit input (instead of reading a live viewport width)
// keeps grid construction pure.
type ViewportClass string

const (
	ViewportWide   ViewportClass = "wide"
	ViewportNarrow ViewportClass = "narrow"
)

const (
	WideColumns   = 7
	NarrowColumns = 2
)

// GridCell is one slot of the calendar grid: either leading padding (Empty)
// or a concrete UTC-midnight date.
type GridCell struct {
	Empty bool
	Date  time.Time
}

// Columns returns how many cells the renderer lays out per row.
func (v ViewportClass) Columns() int {
	if v == ViewportNarrow {
		return NarrowColumns
	}
	return WideColumns
}

// BuildGrid enumerates every day of (month, year) as UTC-midnight cells.
//
// Wide mode prepends weekday(first-of-month) empty cells (0 = Sunday) so the
// columns line up under a 7-column weekday header; there is no trailing
// padding. Narrow mode emits no padding at all: the cells flow into a fixed
// 2-column layout and weekday alignment is deliberately given up for
// legibility on small screens.
func BuildGrid(month time.Month, year int, viewport ViewportClass) []GridCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	offset := 0
	if viewport != ViewportNarrow {
		offset = int(firstOfMonth.Weekday())
	}

	cells := make([]GridCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, GridCell{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, GridCell{
			Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		})
	}
	return cells
}
