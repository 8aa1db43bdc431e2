package ascent

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R2 is the rotation matrix about the 2nd axis. UPFG's initialization uses
// this to build its flight-path-angle vector (sinθ, 0, cosθ) as R2(-θ)*ẑ.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 is the rotation matrix about the 3rd axis. SurfaceSpeedInit uses this
// to build its dummy pre-liftoff tangent as R3(-90°) applied to the
// horizontal projection of r.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a 3-vector. No dimension check.
func MxV33(m *mat.Dense, v []float64) []float64 {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(3, v))
	return []float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}

// RotateByBasis expresses a vector given in a local (ix, iy, iz) basis back
// into the frame that basis was built from, i.e. it returns
// v[0]*ix + v[1]*iy + v[2]*iz. UPFG's initialization uses this to rotate its
// [sin θ, 0, cos θ] flight-path-angle vector by the basis [ix, n̂, iz].
func RotateByBasis(ix, iy, iz, v []float64) []float64 {
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = v[0]*ix[i] + v[1]*iy[i] + v[2]*iz[i]
	}
	return out
}
