package gamemath

import "testing"

func TestRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 100; i++ {
		if x, y := a.IntBetween(-200, 200), b.IntBetween(-200, 200); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
		if x, y := a.FloatBetween(0.4, 0.8), b.FloatBetween(0.4, 0.8); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(1)
	sawMin, sawMax := false, false
	for i := 0; i < 5000; i++ {
		n := r.IntBetween(0, 4)
		if n < 0 || n > 4 {
			t.Fatalf("IntBetween(0, 4) = %d", n)
		}
		sawMin = sawMin || n == 0
		sawMax = sawMax || n == 4
		f := r.FloatBetween(0.4, 0.8)
		if f < 0.4 || f > 0.8 {
			t.Fatalf("FloatBetween(0.4, 0.8) = %v", f)
		}
	}
	if !sawMin || !sawMax {
		t.Errorf("IntBetween should reach both ends, min=%v max=%v", sawMin, sawMax)
	}
	if n := r.IntBetween(7, 7); n != 7 {
		t.Errorf("IntBetween(7, 7) = %d", n)
	}
	if n := r.IntBetween(10, 5); n < 5 || n > 10 {
		t.Errorf("IntBetween(10, 5) = %d, want swapped range", n)
	}
}

func TestOverlapAndTouch(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name     string
		b        Rect
		overlaps bool
		touches  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true, true},
		{"shared edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false, true},
		{"shared corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false, true},
		{"apart", Rect{X: 11, Y: 0, W: 5, H: 5}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b); got != tt.overlaps {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlaps)
			}
			if got := Touches(a, tt.b); got != tt.touches {
				t.Errorf("Touches = %v, want %v", got, tt.touches)
			}
		})
	}
}

func TestRebound(t *testing.T) {
	if got := Rebound(100, 0.5, 5); got != -50 {
		t.Errorf("Rebound(100, 0.5) = %v, want -50", got)
	}
	if got := Rebound(-20, 1, 5); got != 20 {
		t.Errorf("Rebound(-20, 1) = %v, want 20", got)
	}
	if got := Rebound(5, 0.2, 5); got != 0 {
		t.Errorf("slow rebound should settle, got %v", got)
	}
}
