package stats

import "testing"

func TestPercentile(t *testing.T) {
	values := []float64{5, 1, 3, 2, 4}

	tests := []struct {
		p    int
		want float64
	}{
		{0, 1},
		{50, 3},
		{90, 5},
		{100, 5},
	}
	for _, tt := range tests {
		if got := Percentile(values, tt.p); got != tt.want {
			t.Errorf("Percentile(%d) = %v, want %v", tt.p, got, tt.want)
		}
	}

	// Input must not be reordered.
	if values[0] != 5 || values[4] != 4 {
		t.Errorf("Percentile modified its input: %v", values)
	}

	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil) = %v, want 0", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max([]float64{2, 9, 4}); got != 9 {
		t.Errorf("Max = %v, want 9", got)
	}
	if got := Max(nil); got != 0 {
		t.Errorf("Max(nil) = %v, want 0", got)
	}
}
