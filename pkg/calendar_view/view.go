package calendar_view

import (
	"time"

	"github.com/koinonia/koinonia/pkg/season"
	"github.com/koinonia/koinonia/pkg/task"
)

// Mode selects which renderer consumes the view model. The two modes share
// the aggregated task lists; only grid mode carries cells and a scroll
// target.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// PeerTask pairs a connection's task with its contributor color. Own tasks
// are never colored.
type PeerTask struct {
	Task  task.Task
	Color string
}

// DayCell is one renderable slot of the month grid.
type DayCell struct {
	Empty       bool
	Date        time.Time
	IsToday     bool
	OwnTasks    []task.Task
	PeerTasks   []PeerTask
	GuideEvents []season.GuideEvent
}

// ViewModel is everything a renderer needs for one pass, grid or flat list.
type ViewModel struct {
	Mode         Mode
	Columns      int
	Cells        []DayCell
	OwnTasks     []task.Task
	PeerTasks    []PeerTask
	ScrollTarget *float64
}

// Geometry describes the renderer's cell dimensions, used only to plan the
// initial scroll offset.
type Geometry struct {
	CellHeight float64
	RowMargin  float64
}

// Render composes grid construction, task aggregation, guide lookup, color
// assignment and scroll planning into a single renderable model. It is a
// pure function of its inputs: same month, tasks and today always produce
// the same model, which is what makes it testable without a rendering
// surface.
func Render(month time.Month, year int, viewport season.ViewportClass, mode Mode,
	currentUserId string, visibleTasks []task.Task, today time.Time, geometry Geometry) ViewModel {

	aggregation := task.Aggregate(currentUserId, visibleTasks)
	colors := season.AssignColors(aggregation.Contributors())

	peerTasks := make([]PeerTask, 0, len(aggregation.PeerTasks))
	for _, t := range aggregation.PeerTasks {
		peerTasks = append(peerTasks, PeerTask{Task: t, Color: colors[t.OwnerUid]})
	}

	model := ViewModel{
		Mode:      mode,
		OwnTasks:  aggregation.OwnTasks,
		PeerTasks: peerTasks,
	}
	if mode == ModeList {
		// Flat list bypasses the grid and scroll planning entirely.
		return model
	}

	grid := season.BuildGrid(month, year, viewport)
	columns := viewport.Columns()

	cells := make([]DayCell, 0, len(grid))
	for _, gridCell := range grid {
		if gridCell.Empty {
			cells = append(cells, DayCell{Empty: true})
			continue
		}

		cell := DayCell{
			Date:        gridCell.Date,
			IsToday:     season.SameUTCDay(gridCell.Date, today),
			OwnTasks:    make([]task.Task, 0),
			PeerTasks:   make([]PeerTask, 0),
			GuideEvents: season.LookupGuideEvents(gridCell.Date),
		}

		// Stored instants sit one day behind the displayed date, so the
		// day lookup re-applies the storage shift before comparing.
		for _, t := range aggregation.TasksForDay(season.ToStorageDate(gridCell.Date)) {
			if t.OwnerUid == currentUserId {
				cell.OwnTasks = append(cell.OwnTasks, t)
			} else {
				cell.PeerTasks = append(cell.PeerTasks, PeerTask{Task: t, Color: colors[t.OwnerUid]})
			}
		}
		cells = append(cells, cell)
	}

	model.Mode = ModeGrid
	model.Columns = columns
	model.Cells = cells

	if offset, ok := season.PlanScroll(grid, today, columns, geometry.CellHeight, geometry.RowMargin); ok {
		model.ScrollTarget = &offset
	}
	return model
}
