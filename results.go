package ascent

import "math"

// Plots is the time-series half of the external results record, spec.md §6.
// Every slice is parallel, one entry per integrated step.
type Plots struct {
	T                      []float64
	Rx, Ry, Rz, Rmag       []float64
	Vx, Vy, Vz             []float64
	VySrf, VtSrf, Vmag     []float64
	Mass                   []float64
	Thrust                 []float64
	Accel                  []float64
	DynamicPressure        []float64
	PitchDeg, YawDeg       []float64
	AngPSrfDeg, AngYSrfDeg []float64
	AngPObtDeg, AngYObtDeg []float64
}

// OrbitSummary is the classical-element subset of the external results
// record relevant to an ascent trajectory.
type OrbitSummary struct {
	SemiMajorAxisM float64
	Eccentricity   float64
	InclinationDeg float64
	LANDeg         float64
	AOPDeg         float64
	TrueAnomalyDeg float64
}

// Results is the external output contract of spec.md §6: per-run scalars,
// the Plots time series, and the final orbital elements.
type Results struct {
	Plots Plots
	Orbit OrbitSummary

	AltitudeKm float64
	ApoapsisM  float64
	PeriapsisM float64
	VelocityMps,
	VelocityYMps,
	VelocityTMps float64

	MaxQv float64 // Pa, the peak dynamic pressure seen
	MaxQt float64 // s, the time it occurred

	LostGravityMps float64
	LostDragMps    float64
	LostTotalMps   float64

	BurnTimeLeftS float64
	Eng           EngineFlag

	// Debug holds the final mass ("final_mass") and final time ("final_t")
	// when the Mission runs with Debug set; guidance-law internals are not
	// recorded. Nil otherwise.
	Debug map[string]float64
}

// GetMaxValue implements the `get_max_value(series)` external contract: it
// returns the index and value of the largest entry in series, used by the
// orchestrator to locate max-Q. An empty series returns (-1, 0).
func GetMaxValue(series []float64) (int, float64) {
	if len(series) == 0 {
		return -1, 0
	}
	idx := 0
	max := series[0]
	for i, v := range series {
		if v > max {
			max = v
			idx = i
		}
	}
	return idx, max
}

// DynamicPressure returns q = 1/2 ρ v_air² at the given altitude and
// air-relative speed.
func DynamicPressure(ctx PhysicsContext, altKm, vAirMps float64) float64 {
	pRatio := ApproxFromCurve(altKm, ctx.AtmPressure)
	tempC := ApproxFromCurve(altKm, ctx.AtmTemp)
	rho := AirDensity(pRatio*AtmSeaLevelPressurePa, tempC+273.15)
	return 0.5 * rho * vAirMps * vAirMps
}

// getOrbitalElements converts an ECI (r, v) state into classical Keplerian
// elements, grounded on the teacher's Orbit.Elements() conversion (orbit.go)
// trimmed to the ascent-relevant elliptical/near-circular case.
func getOrbitalElements(mu float64, r, v []float64) OrbitSummary {
	rNorm := Norm(r)
	vNorm := Norm(v)

	h := Cross(r, v)
	hNorm := Norm(h)

	energy := vNorm*vNorm/2 - mu/rNorm
	sma := math.Inf(1)
	if energy < 0 {
		sma = -mu / (2 * energy)
	}

	eVec := Sub(Scale(1/mu, Cross(v, h)), Unit(r))
	ecc := Norm(eVec)

	nVec := Cross([]float64{0, 0, 1}, h)
	nNorm := Norm(nVec)

	inc := math.Acos(clamp(h[2]/hNorm, -1, 1))

	lan := 0.0
	if nNorm > 1e-9 {
		lan = math.Acos(clamp(nVec[0]/nNorm, -1, 1))
		if nVec[1] < 0 {
			lan = 2*math.Pi - lan
		}
	}

	aop := 0.0
	if nNorm > 1e-9 && ecc > 1e-9 {
		aop = math.Acos(clamp(Dot(nVec, eVec)/(nNorm*ecc), -1, 1))
		if eVec[2] < 0 {
			aop = 2*math.Pi - aop
		}
	}

	ta := 0.0
	if ecc > 1e-9 {
		ta = math.Acos(clamp(Dot(eVec, r)/(ecc*rNorm), -1, 1))
		if Dot(r, v) < 0 {
			ta = 2*math.Pi - ta
		}
	} else {
		ta = math.Acos(clamp(r[0]/rNorm, -1, 1))
		if r[1] < 0 {
			ta = 2*math.Pi - ta
		}
	}

	return OrbitSummary{
		SemiMajorAxisM: sma,
		Eccentricity:   ecc,
		InclinationDeg: Rad2deg(inc),
		LANDeg:         Rad2deg(lan),
		AOPDeg:         Rad2deg(aop),
		TrueAnomalyDeg: Rad2deg(ta),
	}
}
