package wrapped

import "testing"

func TestLevelOf(t *testing.T) {
	tests := []struct {
		count int
		want  Level
	}{
		{0, LevelEmpty},
		{-1, LevelEmpty},
		{1, LevelLow},
		{9, LevelLow},
		{10, LevelMed},
		{19, LevelMed},
		{20, LevelHigh},
		{24, LevelHigh},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.count); got != tt.want {
			t.Errorf("LevelOf(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestNewHeatmap(t *testing.T) {
	counts := make([]int, HeatmapCells+10)
	for i := range counts {
		counts[i] = i % 5
	}
	counts[8] = -3

	h := NewHeatmap(counts, 99)
	if h.Total != 99 {
		t.Errorf("Total = %d", h.Total)
	}
	if c := h.Cell(8); c.Count != 0 || c.Day != 8 {
		t.Errorf("negative count not clamped: %+v", c)
	}
	if c := h.Weeks[1][2]; c.Day != 9 || c.Count != 4 {
		t.Errorf("Weeks[1][2] = %+v, want day 9", c)
	}
	if c := h.Cell(HeatmapCells - 1); c.Day != 363 {
		t.Errorf("last cell = %+v", c)
	}
	if c := h.Cell(HeatmapCells); c.Count != 0 {
		t.Errorf("out of range cell = %+v", c)
	}
}

func TestHeatmapSum(t *testing.T) {
	h := NewHeatmap([]int{1, 2, 3}, 0)
	if got := h.Sum(); got != 6 {
		t.Errorf("Sum() = %d, want 6", got)
	}
}

func TestLevelString(t *testing.T) {
	if LevelMed.String() != "med" || LevelEmpty.String() != "empty" {
		t.Error("unexpected level names")
	}
}
