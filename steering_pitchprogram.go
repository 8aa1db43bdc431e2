package ascent

// PitchProgramLaw implements the C3 pitch-program table lookup of
// spec.md §4.3: pitch follows a (t, pitch_deg) curve, yaw is the fixed
// 90°-azimuth heading.
type PitchProgramLaw struct {
	cfg PitchProgramConfig
}

// NewPitchProgramLaw builds a pitch-program law.
func NewPitchProgramLaw(cfg PitchProgramConfig) *PitchProgramLaw {
	return &PitchProgramLaw{cfg: cfg}
}

// Name implements SteeringLaw.
func (p *PitchProgramLaw) Name() string { return "pitch-program" }

// Command implements SteeringLaw.
func (p *PitchProgramLaw) Command(ctx PhysicsContext, veh Vehicle, s StepState) Command {
	pitch := ApproxFromCurve(s.T, p.cfg.Program)
	yaw := 90 - p.cfg.AzimuthDeg
	return Command{PitchDeg: pitch, YawDeg: yaw, Engine: EngineUnguided}
}
