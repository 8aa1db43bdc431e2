package ascent

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Norm returns the Euclidean norm of a 3-vector.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns v/|v|, or v unchanged if |v| is (numerically) zero.
func Unit(v []float64) []float64 {
	n := Norm(v)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return v
	}
	u := make([]float64, len(v))
	for i, val := range v {
		u[i] = val / n
	}
	return u
}

// Dot performs the inner product of two 3-vectors via mat/BLAS.
func Dot(a, b []float64) float64 {
	return mat.Dot(mat.NewVecDense(3, a), mat.NewVecDense(3, b))
}

// Cross performs the cross product a×b of two 3-vectors.
func Cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sub returns a-b for two 3-vectors.
func Sub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add returns a+b for two 3-vectors.
func Add(a, b []float64) []float64 {
	return []float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale returns s*v for a 3-vector.
func Scale(s float64, v []float64) []float64 {
	return []float64{s * v[0], s * v[1], s * v[2]}
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a * rad2deg
}

// Frame is an orthonormal local basis, stored as three named unit vectors
// (rows of the matrix from ECI into the frame). Both frames built here
// satisfy Row1×Row3 = Row2 (up×east = north, radial×circum = normal).
type Frame struct {
	Row1, Row2, Row3 []float64
}

// NavballFrame builds the (up, north, east) navball basis from the current
// ECI position and velocity, per the radial/north/east convention: up is
// radial, pseudo-north is the horizontal-plane angular momentum direction,
// east completes the right-handed set, and north is recomputed from
// up×east so the frame stays exactly orthonormal even when v has a
// vertical component.
//
// At the poles with purely vertical velocity, r_xy×v_xy is the zero
// vector (DegenerateFrame, see the polar-launch open question); this
// implementation ties off to +X in ECI as the tie-break axis for
// pseudo-north rather than returning a NaN frame.
func NavballFrame(r, v []float64) Frame {
	up := Unit(r)
	rXY := []float64{r[0], r[1], 0}
	vXY := []float64{v[0], v[1], 0}
	pseudoNorth := Cross(rXY, vXY)
	if Norm(pseudoNorth) < 1e-9 {
		pseudoNorth = Cross(up, []float64{1, 0, 0})
		if Norm(pseudoNorth) < 1e-9 {
			pseudoNorth = []float64{0, 1, 0}
		}
	}
	pseudoNorth = Unit(pseudoNorth)
	east := Unit(Cross(pseudoNorth, up))
	north := Unit(Cross(up, east))
	return Frame{up, north, east}
}

// CircumFrame builds the (radial, normal, circumferential) basis: radial
// is r̂, normal is perpendicular to the instantaneous orbital plane, and
// circum completes the right-handed set.
func CircumFrame(r, v []float64) Frame {
	radial := Unit(r)
	normal := Unit(Cross(r, v))
	if Norm(normal) < 1e-9 {
		normal = Cross(radial, []float64{1, 0, 0})
		if Norm(normal) < 1e-9 {
			normal = []float64{0, 1, 0}
		}
		normal = Unit(normal)
	}
	circum := Unit(Cross(normal, radial))
	return Frame{radial, normal, circum}
}

// MakeVector constructs a unit thrust direction in the given local frame
// from a pitch and yaw command, both in degrees. Pitch is measured from
// Row1 (up/radial), 0 = straight up/radial. Yaw is measured from Row3
// (east/circum), 0 = due east (prograde in the circumferential frame),
// 90 = due north.
func MakeVector(f Frame, pitchDeg, yawDeg float64) []float64 {
	p := Deg2rad(pitchDeg)
	y := Deg2rad(yawDeg)
	sp, cp := math.Sincos(p)
	sy, cy := math.Sincos(y)
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = cp*f.Row1[i] + sp*sy*f.Row2[i] + sp*cy*f.Row3[i]
	}
	return out
}
