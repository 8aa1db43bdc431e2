package ascent

import (
	"fmt"
	"math"

	kitlog "github.com/go-kit/log"
)

// Mission is the C7 orchestrator of spec.md §5: it owns the loop that reads
// the previous StepState, asks the configured SteeringLaw for a Command,
// integrates one fixed step, and repeats until a termination condition
// fires. It replaces the teacher's goroutine+ode.NewRK4+channel Propagate
// (mission.go) with a single-threaded pure loop, since the PhysicsContext
// is already an explicit read-only value rather than package-level state
// (§5's "no globals" requirement) and there is nothing left for a second
// goroutine to own.
type Mission struct {
	Ctx     PhysicsContext
	Vehicle Vehicle
	Initial InitialConditions
	Control Control
	DT      float64
	Debug   bool

	logger kitlog.Logger
}

// NewMission builds a Mission from a validated RunConfig.
func NewMission(ctx PhysicsContext, cfg RunConfig) *Mission {
	return &Mission{
		Ctx: ctx, Vehicle: cfg.Vehicle, Initial: cfg.Initial, Control: cfg.Control,
		DT: cfg.DT, Debug: cfg.Debug, logger: NewLogger("mission"),
	}
}

// Run executes the full ascent simulation and assembles the external
// Results record of spec.md §6.
func (m *Mission) Run() (Results, error) {
	law, err := m.Control.Build(m.Ctx, m.Vehicle)
	if err != nil {
		return Results{}, err
	}

	t0, r0, v0, mass0, effectiveMt, err := m.Initial.Resolve(m.Ctx, m.Vehicle)
	if err != nil {
		return Results{}, err
	}
	if init, ok := law.(interface {
		Init(PhysicsContext, Vehicle, []float64, []float64)
	}); ok {
		init.Init(m.Ctx, m.Vehicle, r0, v0)
	}

	// Buffer pre-sizing per spec.md §5: N = floor(mt/dt)+1. A coast's
	// LengthS stands in for mt when the configured law is Coast.
	budgetS := effectiveMt
	if m.Control.Coast != nil {
		budgetS = m.Control.Coast.LengthS
	}
	n := int(math.Floor(budgetS/m.DT)) + 1
	if n < 1 {
		n = 1
	}

	nav := NavballFrame(r0, v0)
	circ := CircumFrame(r0, v0)
	state := StepState{T: t0, DT: m.DT, R: r0, V: v0, Mass: mass0, Nav: nav, Circ: circ}

	plots := Plots{
		T: make([]float64, 0, n), Rx: make([]float64, 0, n), Ry: make([]float64, 0, n), Rz: make([]float64, 0, n), Rmag: make([]float64, 0, n),
		Vx: make([]float64, 0, n), Vy: make([]float64, 0, n), Vz: make([]float64, 0, n),
		VySrf: make([]float64, 0, n), VtSrf: make([]float64, 0, n), Vmag: make([]float64, 0, n),
		Mass: make([]float64, 0, n), Thrust: make([]float64, 0, n), Accel: make([]float64, 0, n), DynamicPressure: make([]float64, 0, n),
		PitchDeg: make([]float64, 0, n), YawDeg: make([]float64, 0, n),
		AngPSrfDeg: make([]float64, 0, n), AngYSrfDeg: make([]float64, 0, n), AngPObtDeg: make([]float64, 0, n), AngYObtDeg: make([]float64, 0, n),
	}

	var gLoss, dLoss float64
	eng := EngineFlag(EngineUnguided)
	burnTimeLeft := effectiveMt

	m.logger.Log("level", "info", "subsys", "mission", "msg", "starting ascent", "law", law.Name(), "steps_budget", n)

	for i := 0; i < n; i++ {
		cmd := law.Command(m.Ctx, m.Vehicle, state)
		eng = cmd.Engine

		vAir := Sub(state.V, SurfaceSpeed(m.Ctx, state.R, state.Nav))
		altKm := (Norm(state.R) - m.Ctx.Body.Radius) / 1000
		q := DynamicPressure(m.Ctx, altKm, math.Max(Norm(vAir), 1.0))
		thrustAccelMag := 0.0
		if !cmd.ThrustOff {
			thrustAccelMag = thrustAcceleration(m.Ctx, m.Vehicle, state)
		}

		plots.T = append(plots.T, state.T)
		plots.Rx = append(plots.Rx, state.R[0])
		plots.Ry = append(plots.Ry, state.R[1])
		plots.Rz = append(plots.Rz, state.R[2])
		plots.Rmag = append(plots.Rmag, Norm(state.R))
		plots.Vx = append(plots.Vx, state.V[0])
		plots.Vy = append(plots.Vy, state.V[1])
		plots.Vz = append(plots.Vz, state.V[2])
		plots.VySrf = append(plots.VySrf, Dot(state.V, state.Nav.Row1))
		plots.VtSrf = append(plots.VtSrf, Norm(vAir))
		plots.Vmag = append(plots.Vmag, Norm(state.V))
		plots.Mass = append(plots.Mass, state.Mass)
		plots.Thrust = append(plots.Thrust, thrustAccelMag*state.Mass)
		plots.Accel = append(plots.Accel, thrustAccelMag)
		plots.DynamicPressure = append(plots.DynamicPressure, q)
		plots.PitchDeg = append(plots.PitchDeg, cmd.PitchDeg)
		plots.YawDeg = append(plots.YawDeg, cmd.YawDeg)
		plots.AngPSrfDeg = append(plots.AngPSrfDeg, state.AngPSrfDeg)
		plots.AngYSrfDeg = append(plots.AngYSrfDeg, state.AngYSrfDeg)
		plots.AngPObtDeg = append(plots.AngPObtDeg, state.AngPObtDeg)
		plots.AngYObtDeg = append(plots.AngYObtDeg, state.AngYObtDeg)

		gLoss += GravityLoss(m.Ctx, state.R, state.V, state.DT)
		dLoss += DragLoss(m.Ctx, m.Vehicle, state.R, state.V, state.Nav, state.Mass, state.DT)

		if cmd.Terminate {
			burnTimeLeft = budgetS - state.T
			break
		}
		if !cmd.ThrustOff && state.Mass <= 0 {
			eng = EngineFuelOut
			burnTimeLeft = 0
			break
		}

		next, err := Step(m.Ctx, m.Vehicle, state, cmd)
		if err != nil {
			return Results{}, fmt.Errorf("ascent: step %d: %w", i, err)
		}
		state = next
		burnTimeLeft = budgetS - state.T
	}

	m.logger.Log("level", "info", "subsys", "mission", "msg", "ascent complete", "eng", int(eng), "steps", len(plots.T))

	maxQIdx, maxQv := GetMaxValue(plots.DynamicPressure)
	maxQt := 0.0
	if maxQIdx >= 0 {
		maxQt = plots.T[maxQIdx]
	}

	orbit := getOrbitalElements(m.Ctx.Body.GM(), state.R, state.V)

	results := Results{
		Plots:          plots,
		Orbit:          orbit,
		AltitudeKm:     (Norm(state.R) - m.Ctx.Body.Radius) / 1000,
		ApoapsisM:      orbit.SemiMajorAxisM * (1 + orbit.Eccentricity),
		PeriapsisM:     orbit.SemiMajorAxisM * (1 - orbit.Eccentricity),
		VelocityMps:    Norm(state.V),
		VelocityYMps:   Dot(state.V, state.Nav.Row1),
		VelocityTMps:   Norm(Sub(state.V, Scale(Dot(state.V, state.Nav.Row1), state.Nav.Row1))),
		MaxQv:          maxQv,
		MaxQt:          maxQt,
		LostGravityMps: gLoss,
		LostDragMps:    dLoss,
		LostTotalMps:   gLoss + dLoss,
		BurnTimeLeftS:  burnTimeLeft,
		Eng:            eng,
	}
	if m.Debug {
		results.Debug = map[string]float64{"final_mass": state.Mass, "final_t": state.T}
	}
	return results, nil
}
