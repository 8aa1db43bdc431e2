package ascent

import "fmt"

// Vehicle holds the immutable-during-a-run parameters of §3 of spec.md.
type Vehicle struct {
	M0         float64 `mapstructure:"m0"`          // kg, initial (wet) mass
	IspVacuum  float64 `mapstructure:"isp_vacuum"`  // s, vacuum specific impulse (i1)
	IspSeaLvl  float64 `mapstructure:"isp_sea_lvl"` // s, sea-level specific impulse (i0)
	MassFlow   float64 `mapstructure:"mass_flow"`   // kg/s, propellant mass flow rate (dm)
	MaxBurn    float64 `mapstructure:"max_burn"`    // s, maximum burn duration (mt)
	GroundBurn float64 `mapstructure:"ground_burn"` // s, pre-release ground burn applied once at init (et)
	RefArea    float64 `mapstructure:"ref_area"`    // m^2, reference area for drag (ra)
	DragCurve  Curve   `mapstructure:"drag_curve"`  // airspeed (m/s) -> Cd
}

// Validate rejects vehicle parameters that would make the integrator or
// environment model produce nonsense (division by a non-positive mass flow,
// a negative burn time, etc). This is part of the RunConfig validation
// added in SPEC_FULL.md §4, not one of the per-step error kinds of
// spec.md §7.
func (v Vehicle) Validate() error {
	if v.M0 <= 0 {
		return fmt.Errorf("ascent: vehicle m0 must be positive, got %f", v.M0)
	}
	if v.MassFlow <= 0 {
		return fmt.Errorf("ascent: vehicle mass flow dm must be positive, got %f", v.MassFlow)
	}
	if v.MaxBurn <= 0 {
		return fmt.Errorf("ascent: vehicle max burn time mt must be positive, got %f", v.MaxBurn)
	}
	if v.GroundBurn < 0 || v.GroundBurn >= v.MaxBurn {
		return fmt.Errorf("ascent: vehicle ground burn et=%f must be in [0, mt=%f)", v.GroundBurn, v.MaxBurn)
	}
	if v.RefArea < 0 {
		return fmt.Errorf("ascent: vehicle reference area ra must be non-negative, got %f", v.RefArea)
	}
	if err := validateCurve("vehicle drag curve", v.DragCurve); err != nil {
		return err
	}
	return nil
}

func validateCurve(name string, c Curve) error {
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("ascent: %s has mismatched X/Y lengths (%d/%d)", name, len(c.X), len(c.Y))
	}
	for i := 1; i < len(c.X); i++ {
		if c.X[i] <= c.X[i-1] {
			return fmt.Errorf("ascent: %s is not strictly ascending at index %d (%f <= %f)", name, i, c.X[i], c.X[i-1])
		}
	}
	return nil
}
