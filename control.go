package ascent

import "fmt"

// EngineFlag is the ENG code of spec.md §6.
type EngineFlag int

const (
	// EngineUnguided marks a run with no scheduled cutoff (e.g. GravityTurn/PitchProgram).
	EngineUnguided EngineFlag = -1
	// EngineFuelOut marks normal termination from propellant depletion.
	EngineFuelOut EngineFlag = 0
	// EngineRunning is the nominal in-flight value.
	EngineRunning EngineFlag = 1
	// EngineGuidanceCutoff marks a guidance-scheduled cutoff (PEG/UPFG tgo exhausted).
	EngineGuidanceCutoff EngineFlag = 2
	// EngineVelocityCutoff marks UPFG's velocity-overshoot cutoff.
	EngineVelocityCutoff EngineFlag = 3
)

// StepState is the subset of the previous step's SimState a SteeringLaw
// needs to compute the next command, per spec.md §2's "orchestrator reads
// previous state -> steering module emits (pitch, yaw)" data flow.
type StepState struct {
	T                        float64 // s, elapsed since t0
	DT                       float64
	R, V                     []float64
	Mass                     float64
	Nav, Circ                Frame
	PrevPitchDeg, PrevYawDeg float64
	AngPSrfDeg, AngYSrfDeg   float64 // surface-relative flight path angles
	AngPObtDeg, AngYObtDeg   float64 // orbital flight path angles
}

// Command is what a SteeringLaw emits for one step.
type Command struct {
	PitchDeg, YawDeg float64
	Engine           EngineFlag
	// ThrustOff forces the integrator's thrust term to zero regardless of
	// remaining propellant (used by Coast).
	ThrustOff bool
	// Terminate requests the orchestrator stop the main loop after this
	// step has been integrated (guidance-scheduled or velocity-overshoot
	// cutoff; the uniform fuel/duration-exhaustion check is the
	// orchestrator's responsibility, not the SteeringLaw's).
	Terminate bool
}

// SteeringLaw is the pluggable interface C3-C5 implement. It mirrors the
// teacher's ThrustControl interface (prop.go) generalized from a constant
// per-orbit control law to a stateful per-step pitch/yaw command.
type SteeringLaw interface {
	Command(ctx PhysicsContext, veh Vehicle, s StepState) Command
	Name() string
}

// Control is the tagged configuration union of spec.md §3: exactly one
// field should be non-nil, naming which of the five steering modes a
// Mission uses.
type Control struct {
	GravityTurn  *GravityTurnConfig  `mapstructure:"gravity_turn"`
	PitchProgram *PitchProgramConfig `mapstructure:"pitch_program"`
	PEG          *PEGConfig          `mapstructure:"peg"`
	UPFG         *UPFGConfig         `mapstructure:"upfg"`
	Coast        *CoastConfig        `mapstructure:"coast"`
}

// Build constructs the runtime SteeringLaw (with its own zeroed internal
// state) for whichever variant is set.
func (c Control) Build(ctx PhysicsContext, veh Vehicle) (SteeringLaw, error) {
	set := 0
	var law SteeringLaw
	if c.GravityTurn != nil {
		set++
		law = NewGravityTurnLaw(*c.GravityTurn)
	}
	if c.PitchProgram != nil {
		set++
		law = NewPitchProgramLaw(*c.PitchProgram)
	}
	if c.PEG != nil {
		set++
		law = NewPEGLaw(*c.PEG)
	}
	if c.UPFG != nil {
		set++
		law = NewUPFGLaw(*c.UPFG)
	}
	if c.Coast != nil {
		set++
		law = NewCoastLaw(*c.Coast)
	}
	if set != 1 {
		return nil, fmt.Errorf("ascent: control config must set exactly one steering variant, got %d", set)
	}
	return law, nil
}

// GravityTurnConfig parameterizes the C3 gravity-turn state machine.
type GravityTurnConfig struct {
	PitchoverAngleDeg    float64 `mapstructure:"pitchover_angle_deg"`
	PitchoverVelocityMps float64 `mapstructure:"pitchover_velocity_mps"`
}

// PitchProgramConfig parameterizes the C3 pitch-program table lookup.
type PitchProgramConfig struct {
	Program    Curve   `mapstructure:"program"` // t (s) -> pitch (deg)
	AzimuthDeg float64 `mapstructure:"azimuth_deg"`
}

// PEGConfig parameterizes the C4 planar Powered Explicit Guidance law.
type PEGConfig struct {
	TargetAltitudeM float64 `mapstructure:"target_altitude_m"`
	AzimuthDeg      float64 `mapstructure:"azimuth_deg"`
	MajorCycleS     float64 `mapstructure:"major_cycle_s"`
}

// UPFGConfig parameterizes the C5 3-D Unified Powered Flight Guidance law.
type UPFGConfig struct {
	Target      UPFGTarget `mapstructure:"target"`
	MajorCycleS float64    `mapstructure:"major_cycle_s"`
}

// UPFGTarget is the terminal orbital state UPFG steers toward.
type UPFGTarget struct {
	RadiusM        float64   `mapstructure:"radius_m"`
	NormalUnitVec  []float64 `mapstructure:"normal_unit_vec"`
	VelocityMagMps float64   `mapstructure:"velocity_mag_mps"`
	FlightPathDeg  float64   `mapstructure:"flight_path_deg"`
}

// CoastConfig parameterizes the C3 coast mode.
type CoastConfig struct {
	LengthS float64 `mapstructure:"length_s"`
}
