package wrapped

// Heatmap dimensions: one year of weeks, seven days each.
const (
	HeatmapWeeks = 52
	HeatmapDays  = 7
	HeatmapCells = HeatmapWeeks * HeatmapDays
)

// Level buckets a day's count for display.
type Level int

const (
	LevelEmpty Level = iota // 0
	LevelLow                // 1-9
	LevelMed                // 10-19
	LevelHigh               // 20+
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMed:
		return "med"
	case LevelHigh:
		return "high"
	default:
		return "empty"
	}
}

// LevelOf returns the display bucket for count.
func LevelOf(count int) Level {
	switch {
	case count <= 0:
		return LevelEmpty
	case count < 10:
		return LevelLow
	case count < 20:
		return LevelMed
	default:
		return LevelHigh
	}
}

// HeatmapCell is one day of the grid. Day runs 0..363 in week-major order.
type HeatmapCell struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// Level returns the display bucket for the cell.
func (c HeatmapCell) Level() Level { return LevelOf(c.Count) }

// Heatmap is a 52x7 grid of daily counts plus the headline total.
type Heatmap struct {
	Weeks [HeatmapWeeks][HeatmapDays]HeatmapCell `json:"weeks"`
	Total int                                    `json:"total"`
}

// NewHeatmap builds a grid from counts in day order. Missing days are zero
// and extra values are ignored.
func NewHeatmap(counts []int, total int) Heatmap {
	var h Heatmap
	for day := range HeatmapCells {
		c := HeatmapCell{Day: day}
		if day < len(counts) {
			c.Count = max(counts[day], 0)
		}
		h.Weeks[day/HeatmapDays][day%HeatmapDays] = c
	}
	h.Total = total
	return h
}

// Cell returns the cell for day, or a zero cell when day is out of range.
func (h *Heatmap) Cell(day int) HeatmapCell {
	if day < 0 || day >= HeatmapCells {
		return HeatmapCell{Day: day}
	}
	return h.Weeks[day/HeatmapDays][day%HeatmapDays]
}

// Sum adds up every cell.
func (h *Heatmap) Sum() int {
	n := 0
	for w := range h.Weeks {
		for d := range h.Weeks[w] {
			n += h.Weeks[w][d].Count
		}
	}
	return n
}
