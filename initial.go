package ascent

import (
	"fmt"
	"math"
)

// InitialConditions is one of the two tagged variants of spec.md §3: either
// a launch-site specification (type 0) or an in-flight state vector
// (type 1). Exactly one of LaunchSite/InFlight should be non-nil; the
// tagged-variant style keeps that explicit instead of a numeric type
// discriminant, per the REDESIGN FLAGS of spec.md §9 on tagged control
// variants (the same reasoning applies to the initial-conditions switch).
type InitialConditions struct {
	LaunchSite *LaunchSite    `mapstructure:"launch_site"`
	InFlight   *InFlightState `mapstructure:"in_flight"`
}

// LaunchSite is initial-condition type 0.
type LaunchSite struct {
	LongitudeDeg float64 `mapstructure:"longitude_deg"`
	LatitudeDeg  float64 `mapstructure:"latitude_deg"`
	AltitudeM    float64 `mapstructure:"altitude_m"` // above reference radius
}

// InFlightState is initial-condition type 1.
type InFlightState struct {
	T float64   `mapstructure:"t"`
	R []float64 `mapstructure:"r"`
	V []float64 `mapstructure:"v"`
}

// Resolve converts either variant into an initial (t, r, v, m, mt) state
// ready for the orchestrator's loop. For a LaunchSite start, the ground-burn
// mass/time adjustment of spec.md §3 ("Invariants") is applied here: the
// vehicle is assumed to have already burned veh.GroundBurn seconds of
// propellant on the pad before t0, so the usable mass and burn-time budget
// both shrink by that amount before the main loop ever sees them. An
// InFlight start skips the adjustment entirely: InFlightState carries no
// mass, so it begins with veh.M0 and veh.MaxBurn unchanged.
func (ic InitialConditions) Resolve(ctx PhysicsContext, veh Vehicle) (t float64, r, v []float64, m, mt float64, err error) {
	switch {
	case ic.LaunchSite != nil && ic.InFlight == nil:
		ls := ic.LaunchSite
		lon := Deg2rad(ls.LongitudeDeg)
		lat := Deg2rad(ls.LatitudeDeg)
		radius := ctx.Body.Radius + ls.AltitudeM
		r = []float64{
			radius * math.Cos(lat) * math.Cos(lon),
			radius * math.Cos(lat) * math.Sin(lon),
			radius * math.Sin(lat),
		}
		v = SurfaceSpeedInit(ctx, r)
		m = veh.M0 - veh.GroundBurn*veh.MassFlow
		mt = veh.MaxBurn - veh.GroundBurn
		return 0, r, v, m, mt, nil
	case ic.InFlight != nil && ic.LaunchSite == nil:
		return ic.InFlight.T, append([]float64(nil), ic.InFlight.R...), append([]float64(nil), ic.InFlight.V...), veh.M0, veh.MaxBurn, nil
	default:
		return 0, nil, nil, 0, 0, fmt.Errorf("ascent: %w: initial conditions must set exactly one of LaunchSite or InFlight", ErrInvalidInitialType)
	}
}

// ErrInvalidInitialType is spec.md §7's InvalidInitialType error kind.
var ErrInvalidInitialType = fmt.Errorf("invalid initial condition type")
