package ascent

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if Norm(Sub(Cross(i, j), k)) > 1e-12 {
		t.Fatal("i x j != k")
	}
	if Norm(Sub(Cross(j, k), i)) > 1e-12 {
		t.Fatal("j x k != i")
	}
}

func TestUnit(t *testing.T) {
	if Norm(Unit([]float64{5, 0, 0})) != 1 {
		t.Fatal("unit of non-zero vector should have unit norm")
	}
	nilVec := []float64{0, 0, 0}
	u := Unit(nilVec)
	for i := range u {
		if u[i] != nilVec[i] {
			t.Fatalf("unit of nil vector should be unchanged, got %+v", u)
		}
	}
}

func TestDeg2radRoundTrip(t *testing.T) {
	for d := -350.0; d <= 350; d += 12.5 {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(d)), d, 1e-9) {
			t.Fatalf("round trip failed for %f deg", d)
		}
	}
}

// TestNavballFrameOrthonormal exercises invariant 1 of §8: each row unit
// norm, pairwise orthogonal, for a generic non-degenerate (r,v).
func TestNavballFrameOrthonormal(t *testing.T) {
	r := []float64{Earth.Radius + 200000, 10000, 50000}
	v := []float64{100, 7500, 120}
	f := NavballFrame(r, v)
	assertOrthonormal(t, f)
	if Dot(f.Row3, Unit(v)) < 0 {
		t.Fatalf("expected east roughly aligned with prograde motion for this geometry")
	}
}

func TestCircumFrameOrthonormal(t *testing.T) {
	r := []float64{Earth.Radius + 300000, 0, 0}
	v := []float64{0, 7700, 300}
	f := CircumFrame(r, v)
	assertOrthonormal(t, f)
}

// TestNavballFramePolarTieBreak covers the DegenerateFrame open question:
// a purely vertical launch at the pole has r_xy×v_xy = 0, and this must
// not produce a NaN frame.
func TestNavballFramePolarTieBreak(t *testing.T) {
	r := []float64{0, 0, Earth.Radius}
	v := []float64{0, 0, 50}
	f := NavballFrame(r, v)
	assertOrthonormal(t, f)
	for _, row := range [][]float64{f.Row1, f.Row2, f.Row3} {
		for _, c := range row {
			if math.IsNaN(c) {
				t.Fatalf("polar navball frame produced NaN: %+v", f)
			}
		}
	}
}

func TestMakeVectorPitchYawConvention(t *testing.T) {
	f := Frame{Row1: []float64{1, 0, 0}, Row2: []float64{0, 1, 0}, Row3: []float64{0, 0, 1}}
	up := MakeVector(f, 0, 0)
	if Norm(Sub(up, f.Row1)) > 1e-9 {
		t.Fatalf("pitch=0 should point along row1, got %+v", up)
	}
	east := MakeVector(f, 90, 0)
	if Norm(Sub(east, f.Row3)) > 1e-9 {
		t.Fatalf("pitch=90,yaw=0 should point along row3, got %+v", east)
	}
	north := MakeVector(f, 90, 90)
	if Norm(Sub(north, f.Row2)) > 1e-9 {
		t.Fatalf("pitch=90,yaw=90 should point along row2, got %+v", north)
	}
}

func assertOrthonormal(t *testing.T, f Frame) {
	t.Helper()
	rows := [][]float64{f.Row1, f.Row2, f.Row3}
	for _, row := range rows {
		if !floats.EqualWithinAbs(Norm(row), 1, 1e-9) {
			t.Fatalf("row %+v is not unit norm (%f)", row, Norm(row))
		}
	}
	pairs := [][2][]float64{{f.Row1, f.Row2}, {f.Row2, f.Row3}, {f.Row1, f.Row3}}
	for _, p := range pairs {
		if !floats.EqualWithinAbs(Dot(p[0], p[1]), 0, 1e-9) {
			t.Fatalf("rows %+v and %+v are not orthogonal (dot=%f)", p[0], p[1], Dot(p[0], p[1]))
		}
	}
}
