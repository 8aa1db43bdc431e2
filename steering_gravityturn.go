package ascent

import "github.com/looplab/fsm"

// GravityTurnLaw implements the C3 gravity-turn three-state machine of
// spec.md §4.3, using github.com/looplab/fsm for the explicit state
// transitions instead of a hand-rolled int/switch, per the "gravity turn
// state machine" framing in spec.md §2.
type GravityTurnLaw struct {
	cfg  GravityTurnConfig
	m    *fsm.FSM
	prev float64 // last commanded pitch; the state-1 ramp reads s.PrevPitchDeg, which carries the same value
}

const (
	gtStateVertical  = "vertical"
	gtStatePitching  = "pitching"
	gtStatePrograde  = "prograde"
	gtEventPitchover = "pitchover"
	gtEventHold      = "hold_prograde"
)

// NewGravityTurnLaw builds a gravity-turn law starting in the vertical state.
func NewGravityTurnLaw(cfg GravityTurnConfig) *GravityTurnLaw {
	return &GravityTurnLaw{
		cfg: cfg,
		m: fsm.NewFSM(
			gtStateVertical,
			fsm.Events{
				{Name: gtEventPitchover, Src: []string{gtStateVertical}, Dst: gtStatePitching},
				{Name: gtEventHold, Src: []string{gtStatePitching}, Dst: gtStatePrograde},
			},
			fsm.Callbacks{},
		),
	}
}

// Name implements SteeringLaw.
func (g *GravityTurnLaw) Name() string { return "gravity-turn" }

// Command implements SteeringLaw.
func (g *GravityTurnLaw) Command(ctx PhysicsContext, veh Vehicle, s StepState) Command {
	switch g.m.Current() {
	case gtStateVertical:
		if Dot(s.V, s.Nav.Row1) >= g.cfg.PitchoverVelocityMps {
			_ = g.m.Event(gtEventPitchover)
		}
		g.prev = 0
		return Command{PitchDeg: 0, YawDeg: 0, Engine: EngineUnguided}
	case gtStatePitching:
		pitch := s.PrevPitchDeg + s.DT
		if pitch > g.cfg.PitchoverAngleDeg {
			pitch = g.cfg.PitchoverAngleDeg
		}
		if s.AngPSrfDeg > g.cfg.PitchoverAngleDeg {
			_ = g.m.Event(gtEventHold)
		}
		g.prev = pitch
		return Command{PitchDeg: pitch, YawDeg: 0, Engine: EngineUnguided}
	default: // gtStatePrograde
		g.prev = s.AngPSrfDeg
		return Command{PitchDeg: s.AngPSrfDeg, YawDeg: 0, Engine: EngineUnguided}
	}
}
