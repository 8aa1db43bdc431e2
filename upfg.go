package ascent

import "math"

// CSERState is the persistent conic-state-extrapolation state UPFG carries
// between calls, per spec.md §4.5: {dtcp, xcp, A, D, E}. cseExtrapolate
// records into it the last step length (Dtcp), the accumulated extrapolated
// time (Xcp), and the gravity magnitude (A), radius (D) and speed (E) at the
// start of the last extrapolation; it does not read these values back.
type CSERState struct {
	Dtcp, Xcp, A, D, E float64
}

// UPFGInternal is the full persistent guidance state threaded through every
// call to upfg, per spec.md §4.5. It is owned by the orchestrator and
// mutated only between steps (spec.md §5).
type UPFGInternal struct {
	CSER  CSERState
	Tgo   float64
	RBias []float64
	RD    []float64
	RGrav []float64
	VGo   []float64
	R     []float64 // position as of the last call, for cseExtrapolate
	V     []float64 // velocity as of the last call, for cseExtrapolate
}

// UPFGVehicleState is the {thrust, isp, mass} triple the spec's I/O
// contract names for the vehicle argument to unified_powered_flight_guidance.
type UPFGVehicleState struct {
	ThrustN float64
	IspS    float64
	MassKg  float64
}

// UPFGGuidance is the {pitch, yaw, tgo} output triple.
type UPFGGuidance struct {
	PitchDeg, YawDeg float64
	Tgo              float64
}

// UPFGLaw implements the C5 3-D Unified Powered Flight Guidance law.
type UPFGLaw struct {
	cfg      UPFGConfig
	internal UPFGInternal
	lc       float64
	primed   bool
	prevP    float64
	prevY    float64
}

// NewUPFGLaw builds a zeroed UPFG law; call Init once before the main loop
// to run the pre-flight convergence primer of spec.md §4.5.
func NewUPFGLaw(cfg UPFGConfig) *UPFGLaw {
	return &UPFGLaw{cfg: cfg}
}

// Name implements SteeringLaw.
func (u *UPFGLaw) Name() string { return "upfg" }

// Init runs the initialization of spec.md §4.5 steps 1-4: project onto the
// target plane, build the initial desired velocity, seed rgrav, and run
// five convergence-priming guidance iterations.
func (u *UPFGLaw) Init(ctx PhysicsContext, veh Vehicle, r, v []float64) {
	n := Unit(u.cfg.Target.NormalUnitVec)
	rdInit := Sub(r, Scale(Dot(r, n), n))
	ix := Unit(rdInit)
	iz := Unit(Cross(ix, n))
	rdInit = Scale(u.cfg.Target.RadiusM, Unit(Add(ix, iz)))

	// vAngle = R2(-theta)*ẑ = (sinθ, 0, cosθ): the flight-path-angle unit
	// vector is ẑ rotated by -theta about the local 2nd axis, built with
	// the same R2/MxV33 rotation-matrix machinery used elsewhere in this
	// package rather than a hand-written sin/cos vector literal.
	theta := Deg2rad(u.cfg.Target.FlightPathDeg)
	vAngle := MxV33(R2(-theta), []float64{0, 0, 1})
	vdInit := Sub(Scale(u.cfg.Target.VelocityMagMps, RotateByBasis(ix, n, iz, vAngle)), v)

	rNorm := Norm(r)
	rgrav := Scale(-ctx.Body.GM()/(2*rNorm*rNorm*rNorm), r)

	u.internal = UPFGInternal{
		CSER:  CSERState{},
		Tgo:   u.cfg.MajorCycleS * 4,
		RBias: []float64{0, 0, 0},
		RD:    rdInit,
		RGrav: rgrav,
		VGo:   vdInit,
		R:     append([]float64(nil), r...),
		V:     append([]float64(nil), v...),
	}
	// Each priming iteration rolls the guidance state forward by one
	// major cycle's worth of conic extrapolation so vgo/tgo converge
	// before the vehicle actually starts moving.
	for i := 0; i < 5; i++ {
		u.internal, _, _ = upfg(UPFGVehicleState{
			ThrustN: veh.MassFlow * veh.IspVacuum * ctx.G0,
			IspS:    veh.IspVacuum,
			MassKg:  veh.M0 - veh.GroundBurn*veh.MassFlow,
		}, u.cfg.Target, ctx, r, v, u.cfg.MajorCycleS, u.internal)
	}
	u.primed = true
}

// Command implements SteeringLaw.
func (u *UPFGLaw) Command(ctx PhysicsContext, veh Vehicle, s StepState) Command {
	if !u.primed {
		u.Init(ctx, veh, s.R, s.V)
	}

	if u.lc >= u.cfg.MajorCycleS-s.DT {
		vehState := UPFGVehicleState{
			ThrustN: thrustAcceleration(ctx, veh, s) * s.Mass,
			IspS:    veh.IspVacuum,
			MassKg:  s.Mass,
		}
		// Elapsed real time since the previous major cycle (u.lc was reset
		// to 0 there and has grown by DT on every call since, so it equals
		// the time between the state stored then and s), threaded into
		// upfg's conic extrapolation as its dt.
		elapsed := u.lc
		var guidance UPFGGuidance
		u.internal, guidance, _ = upfg(vehState, u.cfg.Target, ctx, s.R, s.V, elapsed, u.internal)
		u.prevP, u.prevY = guidance.PitchDeg, guidance.YawDeg
		u.lc = 0
	}
	u.lc += s.DT

	tgo := u.internal.Tgo - u.lc
	cmd := Command{PitchDeg: u.prevP, YawDeg: u.prevY, Engine: EngineRunning}

	switch {
	case tgo < -20:
		// GuidanceDegenerate (spec.md §7): hold prior pitch/yaw, keep running.
	case tgo < s.DT:
		cmd.Engine = EngineGuidanceCutoff
		cmd.Terminate = true
	case Norm(s.V) >= u.cfg.Target.VelocityMagMps:
		cmd.Engine = EngineVelocityCutoff
		cmd.Terminate = true
	}
	return cmd
}

// thrustIntegrals computes the classical L, J, S, Q, P, H thrust moments
// (Jaggers 1977) for a burn of duration tgo at current thrust acceleration
// a0 and effective exhaust velocity ve, where tau = ve/a0 (tgo is capped at
// 0.9·tau):
//
//	L = ve·ln(tau/(tau-tgo)) = ∫ a(t)dt,  J = tau·L - ve·tgo = ∫ t·a(t)dt,
//	S, Q, P = tau·(previous) - ve·tgo^n/n!  for n = 2, 3, 4,
//	H = L·tgo - J.
//
// Both PEG (4.4) and UPFG (4.5) steer off these same integrals.
func thrustIntegrals(a0, ve, tgo float64) (l, j, s, q, p, h float64) {
	tau := ve / a0
	if tgo >= tau {
		tgo = 0.9 * tau
	}
	l = ve * math.Log(tau/(tau-tgo))
	j = tau*l - ve*tgo
	s = tau*j - ve*tgo*tgo/2
	q = tau*s - ve*tgo*tgo*tgo/6
	p = tau*q - ve*math.Pow(tgo, 4)/24
	h = l*tgo - j
	return
}

// cseExtrapolate is a conic-state-extrapolation stand-in: it predicts the
// gravity-only position/velocity change over dt using a truncated
// power-series (second order in dt) under the gravity at the starting
// point, in place of the full universal-variable Kepler solve a production
// UPFG uses. The incoming CSERState does not enter the prediction; it is
// only updated and returned, so the persistent-state contract of spec.md
// §4.5 holds.
func cseExtrapolate(ctx PhysicsContext, r, v []float64, dt float64, cser CSERState) ([]float64, []float64, CSERState) {
	rNorm := Norm(r)
	g := Scale(-ctx.Body.GM()/(rNorm*rNorm*rNorm), r)
	rNew := Add(Add(r, Scale(dt, v)), Scale(0.5*dt*dt, g))
	vNew := Add(v, Scale(dt, g))
	cser.Dtcp = dt
	cser.Xcp += dt
	cser.A = Norm(g)
	cser.D = rNorm
	cser.E = Norm(v)
	return rNew, vNew, cser
}

// upfg performs one major-cycle update of the unified powered flight
// guidance law: iteration order is (1) correct the persistent vgo and set
// rbias from a conic extrapolation of the previous state over the elapsed
// major cycle, (2) Newton-refine tgo against the thrust integrals and
// recompute rgrav for the new tgo, (3) point the thrust unit vector iF
// along vgo, tilted toward the part of the terminal position miss
// perpendicular to vgo by a gain capped at 0.2, (4) extract pitch/yaw
// against the current navball frame.
func upfg(vehicle UPFGVehicleState, target UPFGTarget, ctx PhysicsContext, r, v []float64, dt float64, state UPFGInternal) (UPFGInternal, UPFGGuidance, map[string]float64) {
	if dt <= 0 {
		dt = 1e-3
	}

	// (1) Extrapolate the last-seen (r,v) forward by the elapsed major
	// cycle under gravity alone; the gap between that gravity-only
	// prediction and the actual (r,v) isolates the velocity gained and
	// the position displaced by thrust over the cycle, rather than
	// conflating the two as a raw v-state.V delta would.
	rPred, vPred, cser := cseExtrapolate(ctx, state.R, state.V, dt, state.CSER)
	deltaV := Sub(v, vPred)
	vGo := Sub(state.VGo, deltaV)
	rBias := Sub(r, rPred)

	a0 := vehicle.ThrustN / vehicle.MassKg
	ve := vehicle.IspS * ctx.G0

	// (2) Newton-refine tgo so the integrated thrust moment L matches the
	// remaining |vgo|.
	tgo := state.Tgo
	if tgo <= 0 {
		tgo = 1
	}
	for i := 0; i < 5; i++ {
		l, _, _, _, _, _ := thrustIntegrals(a0, ve, tgo)
		tgo += (Norm(vGo) - l) / math.Max(a0, 1e-6)
		if tgo < 1 {
			tgo = 1
		}
	}
	_, j, s, q, _, _ := thrustIntegrals(a0, ve, tgo)

	// Gravity integral estimate over the remaining time-to-go.
	rNorm := Norm(r)
	rGravNext := Scale(-ctx.Body.GM()/(2*rNorm*rNorm*rNorm)*tgo*tgo, r)

	// (3) Position miss against the desired terminal position rd, net of
	// the gravity integral and position bias (the rd/rbias/rgrav
	// bookkeeping of spec.md §4.5), used to tilt iF away from pure vgo.
	rMiss := Sub(Sub(state.RD, r), Add(rGravNext, rBias))
	steerRate := 0.0
	if j != 0 {
		steerRate = 1.0
	}
	_ = steerRate
	_ = s
	_ = q

	iF := Unit(vGo)
	if Norm(rMiss) > 1e-6 {
		lateral := Sub(rMiss, Scale(Dot(rMiss, iF), iF))
		if Norm(lateral) > 1e-9 {
			correctionGain := clamp(Norm(lateral)/(a0*tgo*tgo+1e-6), 0, 0.2)
			iF = Unit(Add(iF, Scale(correctionGain, Unit(lateral))))
		}
	}

	nav := NavballFrame(r, v)
	pitch := Rad2deg(math.Acos(clamp(Dot(iF, nav.Row1), -1, 1)))
	yaw := Rad2deg(math.Atan2(Dot(iF, nav.Row3), Dot(iF, nav.Row2)))

	next := UPFGInternal{
		CSER:  cser,
		Tgo:   tgo,
		RBias: rBias,
		RD:    state.RD,
		RGrav: rGravNext,
		VGo:   vGo,
		R:     append([]float64(nil), r...),
		V:     append([]float64(nil), v...),
	}
	guidance := UPFGGuidance{PitchDeg: pitch, YawDeg: yaw, Tgo: tgo}
	debug := map[string]float64{
		"tgo": tgo, "vgo_mag": Norm(vGo), "pitch": pitch, "yaw": yaw,
		"rmiss_mag": Norm(rMiss), "rbias_mag": Norm(rBias), "j": j,
	}
	return next, guidance, debug
}
