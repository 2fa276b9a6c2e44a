package math2d

import "testing"

func TestFuzzyEqZero(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		want bool
	}{
		{"exact zero", 0, true},
		{"below tolerance", 1e-9, true},
		{"negative below tolerance", -1e-9, true},
		{"above tolerance", 1e-7, false},
		{"negative above tolerance", -1e-7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyEqZero(tt.a); got != tt.want {
				t.Errorf("FuzzyEqZero(%v) = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestFuzzyEq(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal", 1.5, 1.5, true},
		{"within tolerance", 1.5, 1.5 + 1e-9, true},
		{"outside tolerance", 1.5, 1.5 + 1e-7, false},
		{"far apart", 1.0, 2.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyEq(tt.a, tt.b); got != tt.want {
				t.Errorf("FuzzyEq(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFuzzyLtGt(t *testing.T) {
	// near-equal values satisfy both orderings
	if !FuzzyLt(2.0, 2.0) {
		t.Error("FuzzyLt(2, 2) = false, want true")
	}
	if !FuzzyGt(2.0, 2.0) {
		t.Error("FuzzyGt(2, 2) = false, want true")
	}
	if !FuzzyLt(2.0, 2.0+1e-9) {
		t.Error("FuzzyLt(2, 2+1e-9) = false, want true")
	}
	if !FuzzyLt(2.0+1e-9, 2.0) {
		t.Error("FuzzyLt(2+1e-9, 2) = false, want true")
	}
	if FuzzyLt(2.0+1e-7, 2.0) {
		t.Error("FuzzyLt(2+1e-7, 2) = true, want false")
	}
	if FuzzyGt(2.0-1e-7, 2.0) {
		t.Error("FuzzyGt(2-1e-7, 2) = true, want false")
	}
	if !FuzzyGt(2.0-1e-9, 2.0) {
		t.Error("FuzzyGt(2-1e-9, 2) = false, want true")
	}
}

func TestEpsPerType(t *testing.T) {
	if got := Eps[float64](); got != Epsilon64 {
		t.Errorf("Eps[float64]() = %v, want %v", got, Epsilon64)
	}
	if got := Eps[float32](); got != Epsilon32 {
		t.Errorf("Eps[float32]() = %v, want %v", got, Epsilon32)
	}
	// float32 tolerance is looser than float64
	if !FuzzyEq(float32(1.0), float32(1.0+1e-6)) {
		t.Error("FuzzyEq(float32 1, 1+1e-6) = false, want true")
	}
	if FuzzyEq(1.0, 1.0+1e-6) {
		t.Error("FuzzyEq(float64 1, 1+1e-6) = true, want false")
	}
}

func TestAbsSqrt(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v, want 3.5", got)
	}
	if got := Abs(3.5); got != 3.5 {
		t.Errorf("Abs(3.5) = %v, want 3.5", got)
	}
	if got := Sqrt(9.0); got != 3.0 {
		t.Errorf("Sqrt(9) = %v, want 3", got)
	}
}
