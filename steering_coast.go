package ascent

// CoastLaw implements the C3 coast mode of spec.md §4.3: thrust forced to
// zero, pitch/yaw commands held at their previous values. The coast
// duration (LengthS) stands in for the vehicle's burn-time budget mt when
// the orchestrator sizes its buffers and checks for natural termination.
type CoastLaw struct {
	cfg CoastConfig
}

// NewCoastLaw builds a coast law.
func NewCoastLaw(cfg CoastConfig) *CoastLaw {
	return &CoastLaw{cfg: cfg}
}

// Name implements SteeringLaw.
func (c *CoastLaw) Name() string { return "coast" }

// Command implements SteeringLaw.
func (c *CoastLaw) Command(ctx PhysicsContext, veh Vehicle, s StepState) Command {
	return Command{PitchDeg: s.PrevPitchDeg, YawDeg: s.PrevYawDeg, Engine: EngineUnguided, ThrustOff: true}
}
