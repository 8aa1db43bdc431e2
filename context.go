package ascent

// PhysicsContext bundles the process-wide constants the integrator and
// environment model need — μ (via Body), g0, and the atmosphere tables —
// into a single read-only value threaded explicitly through the
// orchestrator rather than held at package scope. This makes a Mission a
// pure function of its inputs and trivially re-entrant, per spec.md §5.
type PhysicsContext struct {
	Body        CelestialObject
	G0          float64 // m/s^2, standard gravity used for Isp->thrust conversion
	AtmPressure Curve   // altitude (km) -> pressure ratio, 1.0 at sea level
	AtmTemp     Curve   // altitude (km) -> temperature (°C)
}

// DefaultEarthContext returns the standard Earth physics context with a
// simple exponential-ish placeholder atmosphere (the
// atmosphere-curve-provider collaborator is explicitly out of scope per
// spec.md §1). RunConfig carries no atmosphere curves: a different context
// is passed to NewMission directly, and the ascentsim CLI always uses this
// default.
func DefaultEarthContext() PhysicsContext {
	return PhysicsContext{
		Body: Earth,
		G0:   9.80665,
		AtmPressure: Curve{
			X: []float64{0, 11, 20, 32, 47, 71, 84.852},
			Y: []float64{1, 0.2234, 0.0540, 0.00857, 0.00109, 0.0000686, 0.0000037},
		},
		AtmTemp: Curve{
			X: []float64{0, 11, 20, 32, 47, 71, 84.852},
			Y: []float64{15, -56.5, -56.5, -44.5, -2.5, -58.5, -86.28},
		},
	}
}
