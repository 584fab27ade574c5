package window

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeBlackman, TypeTukey, TypeWelch} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 33, 0.5)
			if len(w) != 33 {
				t.Fatalf("len = %d, want 33", len(w))
			}
			for i := range w {
				if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
					t.Fatalf("w[%d]=%g != w[%d]=%g", i, w[i], len(w)-1-i, w[len(w)-1-i])
				}
				if w[i] < -1e-12 || w[i] > 1+1e-12 {
					t.Fatalf("w[%d]=%g outside [0,1]", i, w[i])
				}
			}
			if !almostEqual(w[16], 1, 1e-12) {
				t.Fatalf("center = %g, want 1", w[16])
			}
		})
	}
}

func TestGenerateEdges(t *testing.T) {
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeBlackman, 0},
		{TypeTukey, 0},
		{TypeWelch, 0},
	}

	for _, tt := range tests {
		w := Generate(tt.typ, 9, 0)
		if !almostEqual(w[0], tt.edge, 1e-12) || !almostEqual(w[8], tt.edge, 1e-12) {
			t.Errorf("%s edges = %g, %g, want %g", tt.typ, w[0], w[8], tt.edge)
		}
	}
}

func TestTukeyFlatTop(t *testing.T) {
	w := Generate(TypeTukey, 101, 0.2)
	for i := 10; i <= 90; i++ {
		if w[i] != 1 {
			t.Fatalf("w[%d] = %g, want 1 inside the flat section", i, w[i])
		}
	}
	if w[5] >= 1 || w[95] >= 1 {
		t.Fatalf("taper missing: w[5]=%g w[95]=%g", w[5], w[95])
	}

	hann := Generate(TypeHann, 11, 0)
	full := Generate(TypeTukey, 11, 1)
	for i := range hann {
		if !almostEqual(hann[i], full[i], 1e-12) {
			t.Fatalf("tukey(1)[%d] = %g, want hann %g", i, full[i], hann[i])
		}
	}
}

func TestGenerateShort(t *testing.T) {
	if w := Generate(TypeHann, 0, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1, 0); len(w) != 1 || !almostEqual(w[0], 1, 1e-12) {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf, 0)
	want := []float64{0, 1, 2, 1, 0}
	for i := range want {
		if !almostEqual(buf[i], want[i], 1e-12) {
			t.Fatalf("buf[%d] = %g, want %g", i, buf[i], want[i])
		}
	}

	buf = []float64{3, 4}
	Apply(TypeRectangular, buf, 0)
	if buf[0] != 3 || buf[1] != 4 {
		t.Fatalf("rectangular changed buf: %v", buf)
	}
}

func TestParse(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeBlackman, TypeTukey, TypeWelch} {
		got, err := Parse(" " + typ.String() + " ")
		if err != nil || got != typ {
			t.Errorf("Parse(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if got, err := Parse(""); err != nil || got != TypeRectangular {
		t.Errorf("Parse(\"\") = %v, %v", got, err)
	}
	if got, err := Parse("None"); err != nil || got != TypeRectangular {
		t.Errorf("Parse(\"None\") = %v, %v", got, err)
	}
	if _, err := Parse("kaiser"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Parse(kaiser) error = %v, want ErrUnknownType", err)
	}
}
