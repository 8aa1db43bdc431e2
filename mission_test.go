package ascent

import (
	"math"
	"testing"
)

func missionVehicle() Vehicle {
	return Vehicle{
		M0: 50000, IspVacuum: 330, IspSeaLvl: 280, MassFlow: 150,
		MaxBurn: 200, RefArea: 10,
		DragCurve: Curve{X: []float64{0, 1000, 5000}, Y: []float64{0.3, 0.3, 0.2}},
	}
}

func TestMissionRunGravityTurnCompletes(t *testing.T) {
	ctx := DefaultEarthContext()
	cfg := RunConfig{
		DT:      1,
		Vehicle: missionVehicle(),
		Initial: InitialConditions{LaunchSite: &LaunchSite{LongitudeDeg: -80, LatitudeDeg: 28, AltitudeM: 0}},
		Control: Control{GravityTurn: &GravityTurnConfig{PitchoverAngleDeg: 5, PitchoverVelocityMps: 60}},
	}
	m := NewMission(ctx, cfg)

	results, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results.Plots.T) == 0 {
		t.Fatal("expected at least one recorded step")
	}
	if results.Plots.Mass[0] < results.Plots.Mass[len(results.Plots.Mass)-1] {
		t.Fatal("mass should not increase over the run")
	}
	if math.IsNaN(results.AltitudeKm) {
		t.Fatal("altitude must not be NaN")
	}
}

func TestMissionRunCoastStopsAtLength(t *testing.T) {
	ctx := DefaultEarthContext()
	veh := missionVehicle()
	cfg := RunConfig{
		DT:      5,
		Vehicle: veh,
		Initial: InitialConditions{InFlight: &InFlightState{T: 0, R: []float64{ctx.Body.Radius + 200000, 0, 0}, V: []float64{0, 7800, 0}}},
		Control: Control{Coast: &CoastConfig{LengthS: 50}},
	}
	m := NewMission(ctx, cfg)

	results, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results.Eng != EngineUnguided {
		t.Fatalf("expected EngineUnguided from a coast run, got %d", results.Eng)
	}
	lastT := results.Plots.T[len(results.Plots.T)-1]
	if lastT < 40 || lastT > 55 {
		t.Fatalf("expected the run to approximately span the coast length, got final t=%f", lastT)
	}
}

func TestMissionRunRejectsInvalidControl(t *testing.T) {
	ctx := DefaultEarthContext()
	cfg := RunConfig{
		DT:      1,
		Vehicle: missionVehicle(),
		Initial: InitialConditions{LaunchSite: &LaunchSite{}},
		Control: Control{}, // no variant set
	}
	m := NewMission(ctx, cfg)
	if _, err := m.Run(); err == nil {
		t.Fatal("expected an error for a Control with no variant set")
	}
}
