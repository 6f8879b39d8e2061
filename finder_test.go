package bigmath

import "testing"

func TestAdaptiveIntegerFinderBasic(t *testing.T) {
	tests := []struct {
		name      string
		threshold int64
		min       int64
	}{
		{"small threshold", 3, 0},
		{"zero threshold", 0, 0},
		{"threshold at min", 5, 5},
		{"large threshold", 10000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &AdaptiveIntegerFinder{
				MinIndex: tt.min,
				Predicate: func(n int64) (bool, error) {
					return n >= tt.threshold, nil
				},
			}
			got, err := f.Find("test")
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			want := tt.threshold
			if want < tt.min {
				want = tt.min
			}
			if got != want {
				t.Errorf("Find() = %d, want %d", got, want)
			}
		})
	}
}

func TestAdaptiveIntegerFinderPropagatesError(t *testing.T) {
	sentinel := newOverflowError("test", "boom")
	f := &AdaptiveIntegerFinder{
		MinIndex: 0,
		Predicate: func(n int64) (bool, error) {
			if n > 2 {
				return false, sentinel
			}
			return false, nil
		},
	}
	_, err := f.Find("test")
	if err == nil {
		t.Fatal("Find: expected error, got nil")
	}
}
