package season

// Palette is the fixed set of colors used to tell peer contributors apart on
// the calendar. The own-task rendering is uncolored, so the palette only ever
// covers peers.
var Palette = [...]string{
	"#7c3aed", // violet
	"#0891b2", // cyan
	"#ca8a04", // amber
	"#dc2626", // red
	"#16a34a", // green
	"#db2777", // pink
	"#4f46e5", // indigo
}

// AssignColors maps each identity to a palette color by its position in the
// given sequence, cycling modulo the palette size: the 8th identity reuses
// the 1st color. The result is deterministic for a fixed input order; callers
// that need render-to-render stability must feed a stable order.
func AssignColors(identities []string) map[string]string {
	colors := make(map[string]string, len(identities))
	next := 0
	for _, identity := range identities {
		if _, seen := colors[identity]; seen {
			continue
		}
		colors[identity] = Palette[next%len(Palette)]
		next++
	}
	return colors
}
