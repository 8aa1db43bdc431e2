package ascent

import "math"

// AtmSeaLevelPressurePa is the sea-level reference pressure the pressure
// ratio table in PhysicsContext.AtmPressure is scaled against (1.0 at
// altitude 0), used to recover an absolute pressure for AirDensity.
const AtmSeaLevelPressurePa = 101325.0

// SimError distinguishes the per-step error kinds of spec.md §7 from the
// RunConfig validation errors of SPEC_FULL.md §4.
type SimError struct {
	Kind string
	Msg  string
}

func (e *SimError) Error() string { return e.Kind + ": " + e.Msg }

// Error kind constants, spec.md §7.
const (
	ErrKindDegenerateFrame = "DegenerateFrame"
	ErrKindZeroAirspeed    = "ZeroAirspeed"
	ErrKindGuidanceDegen   = "GuidanceDegenerate"
	ErrKindNumericalClamp  = "NumericalClamp"
	ErrKindFuelExhaustion  = "FuelExhaustion"
	ErrKindInvalidInitial  = "InvalidInitialType"
)

// Step advances one fixed-step semi-implicit Euler integration of spec.md
// §4.6: velocity is updated from the current-step acceleration first, then
// position is advanced using the *new* velocity. Thrust direction comes
// from cmd (via MakeVector against the previous step's navball frame).
// Step does not track gravity or drag losses; the orchestrator sums those
// with GravityLoss and DragLoss.
func Step(ctx PhysicsContext, veh Vehicle, prev StepState, cmd Command) (StepState, error) {
	dt := prev.DT
	r, v, mass := prev.R, prev.V, prev.Mass

	altM := Norm(r) - ctx.Body.Radius
	altKm := altM / 1000
	pRatio := ApproxFromCurve(altKm, ctx.AtmPressure)
	tempC := ApproxFromCurve(altKm, ctx.AtmTemp)
	pressurePa := pRatio * AtmSeaLevelPressurePa
	rho := AirDensity(pressurePa, tempC+273.15)

	vSurfRot := SurfaceSpeed(ctx, r, prev.Nav)
	vAir := Sub(v, vSurfRot)
	vAirMag := Norm(vAir)
	if vAirMag < 1.0 {
		vAirMag = 1.0 // ZeroAirspeed guard: drag direction is ill-defined below this floor
	}

	cd := ApproxFromCurve(vAirMag, veh.DragCurve)
	dragAccelMag := 0.5 * rho * vAirMag * vAirMag * cd * veh.RefArea / mass
	dragAccel := Scale(-dragAccelMag/vAirMag, vAir)

	isp := (veh.IspVacuum-veh.IspSeaLvl)*pRatio + veh.IspSeaLvl
	thrustDir := MakeVector(prev.Nav, cmd.PitchDeg, cmd.YawDeg)
	thrustAccelMag := 0.0
	if !cmd.ThrustOff && mass > 0 {
		thrustAccelMag = isp * ctx.G0 * veh.MassFlow / mass
	}
	thrustAccel := Scale(thrustAccelMag, thrustDir)

	rNorm := Norm(r)
	gravAccel := Scale(-ctx.Body.GM()/(rNorm*rNorm*rNorm), r)

	accel := Add(Add(gravAccel, dragAccel), thrustAccel)
	vNew := Add(v, Scale(dt, accel))
	rNew := Add(r, Scale(dt, vNew))

	massFlow := 0.0
	if !cmd.ThrustOff {
		massFlow = veh.MassFlow
	}
	massNew := mass - massFlow*dt
	if massNew < 0 {
		massNew = 0
	}

	navNew := NavballFrame(rNew, vNew)
	circNew := CircumFrame(rNew, vNew)
	if Norm(Cross(navNew.Row1, navNew.Row2)) < 1e-6 {
		return StepState{}, &SimError{Kind: ErrKindDegenerateFrame, Msg: "navball frame collapsed"}
	}

	// Per spec.md §4.6 step 8, v_air for the surface-relative angles is
	// recomputed from the rebuilt frame and the new r/v, not reused from
	// the pre-update vAir the drag term above was computed from.
	vAirNew := Sub(vNew, SurfaceSpeed(ctx, rNew, navNew))
	angPSrf := Rad2deg(math.Acos(clamp(Dot(Unit(vAirNew), navNew.Row1), -1, 1)))
	angYSrf := Rad2deg(math.Atan2(Dot(Unit(vAirNew), navNew.Row3), Dot(Unit(vAirNew), navNew.Row2)))
	angPObt := Rad2deg(math.Acos(clamp(Dot(Unit(vNew), navNew.Row1), -1, 1)))
	angYObt := Rad2deg(math.Atan2(Dot(Unit(vNew), navNew.Row3), Dot(Unit(vNew), navNew.Row2)))

	next := StepState{
		T:            prev.T + dt,
		DT:           dt,
		R:            rNew,
		V:            vNew,
		Mass:         massNew,
		Nav:          navNew,
		Circ:         circNew,
		PrevPitchDeg: cmd.PitchDeg,
		PrevYawDeg:   cmd.YawDeg,
		AngPSrfDeg:   angPSrf,
		AngYSrfDeg:   angYSrf,
		AngPObtDeg:   angPObt,
		AngYObtDeg:   angYObt,
	}
	return next, nil
}

// GravityLoss and DragLoss return the scalar loss contributions of one step
// (the component of each non-thrust acceleration opposing the velocity
// direction, times dt), for the orchestrator's running g_loss/d_loss totals.
func GravityLoss(ctx PhysicsContext, r, v []float64, dt float64) float64 {
	rNorm := Norm(r)
	gravAccel := Scale(-ctx.Body.GM()/(rNorm*rNorm*rNorm), r)
	return -Dot(gravAccel, Unit(v)) * dt
}

func DragLoss(ctx PhysicsContext, veh Vehicle, r, v []float64, nav Frame, mass, dt float64) float64 {
	altKm := (Norm(r) - ctx.Body.Radius) / 1000
	pRatio := ApproxFromCurve(altKm, ctx.AtmPressure)
	tempC := ApproxFromCurve(altKm, ctx.AtmTemp)
	rho := AirDensity(pRatio*AtmSeaLevelPressurePa, tempC+273.15)
	vAir := Sub(v, SurfaceSpeed(ctx, r, nav))
	vAirMag := math.Max(Norm(vAir), 1.0)
	cd := ApproxFromCurve(vAirMag, veh.DragCurve)
	dragAccelMag := 0.5 * rho * vAirMag * vAirMag * cd * veh.RefArea / mass
	return dragAccelMag * dt
}
