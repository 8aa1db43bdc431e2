package ascent

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func upfgTarget(ctx PhysicsContext) UPFGTarget {
	return UPFGTarget{
		RadiusM:        ctx.Body.Radius + 200000,
		NormalUnitVec:  []float64{0, 0, 1},
		VelocityMagMps: math.Sqrt(ctx.Body.GM() / (ctx.Body.Radius + 200000)),
		FlightPathDeg:  0,
	}
}

func upfgAscentState(ctx PhysicsContext) (r, v []float64) {
	r = []float64{ctx.Body.Radius + 80000, 5000, 0}
	v = []float64{50, 3000, 200}
	return
}

func TestUPFGInitPrimesInternalState(t *testing.T) {
	ctx := DefaultEarthContext()
	veh := basicVehicle()
	law := NewUPFGLaw(UPFGConfig{Target: upfgTarget(ctx), MajorCycleS: 2})
	r, v := upfgAscentState(ctx)

	law.Init(ctx, veh, r, v)

	require.True(t, law.primed)
	require.False(t, math.IsNaN(law.internal.Tgo))
	require.Len(t, law.internal.VGo, 3)
	require.Len(t, law.internal.RD, 3)
	require.InDelta(t, ctx.Body.Radius+200000, Norm(law.internal.RD), 1e-3)
}

func TestUPFGCommandProducesFiniteGuidance(t *testing.T) {
	ctx := DefaultEarthContext()
	veh := basicVehicle()
	law := NewUPFGLaw(UPFGConfig{Target: upfgTarget(ctx), MajorCycleS: 2})
	r, v := upfgAscentState(ctx)
	s := StepState{T: 0, DT: 1, R: r, V: v, Mass: 40000, Nav: NavballFrame(r, v), Circ: CircumFrame(r, v)}

	cmd := law.Command(ctx, veh, s)

	require.False(t, math.IsNaN(cmd.PitchDeg))
	require.False(t, math.IsNaN(cmd.YawDeg))
	require.Equal(t, EngineRunning, cmd.Engine)
}

func TestUPFGVelocityCutoff(t *testing.T) {
	ctx := DefaultEarthContext()
	target := upfgTarget(ctx)
	law := NewUPFGLaw(UPFGConfig{Target: target, MajorCycleS: 2})
	veh := basicVehicle()
	r, v := upfgAscentState(ctx)
	law.Init(ctx, veh, r, v)

	overVel := Scale(target.VelocityMagMps*1.5/Norm(v), v)
	s := StepState{T: 10, DT: 1, R: r, V: overVel, Mass: 40000, Nav: NavballFrame(r, overVel), Circ: CircumFrame(r, overVel)}
	cmd := law.Command(ctx, veh, s)

	require.Equal(t, EngineVelocityCutoff, cmd.Engine)
	require.True(t, cmd.Terminate)
}

func TestUPFGGuidanceCutoffWhenTgoExhausted(t *testing.T) {
	ctx := DefaultEarthContext()
	veh := basicVehicle()
	law := NewUPFGLaw(UPFGConfig{Target: upfgTarget(ctx), MajorCycleS: 2})
	r, v := upfgAscentState(ctx)
	law.Init(ctx, veh, r, v)
	law.internal.Tgo = 0.5
	law.lc = 0.1

	s := StepState{T: 0, DT: 1, R: r, V: v, Mass: 40000, Nav: NavballFrame(r, v), Circ: CircumFrame(r, v)}
	cmd := law.Command(ctx, veh, s)

	require.Equal(t, EngineGuidanceCutoff, cmd.Engine)
	require.True(t, cmd.Terminate)
}

func TestThrustIntegralsMonotoneInTgo(t *testing.T) {
	l1, _, _, _, _, _ := thrustIntegrals(20, 3000, 10)
	l2, _, _, _, _, _ := thrustIntegrals(20, 3000, 50)
	require.Greater(t, l2, l1, "L should grow with time-to-go")
}
