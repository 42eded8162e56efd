package engine

import "github.com/roach88/driftlab/internal/graph"

// BaselinePressure bounds the randomized initial pressure of every node
// at the start of a subject's run: U(0, 0.3), a low baseline.
const BaselinePressure = 0.3

// InitPressures randomizes every node's starting pressure to a low
// baseline, one uniform draw per node in arena order.
func InitPressures(g *graph.Graph, rng Rand) {
	for i := 0; i < g.Len(); i++ {
		g.Node(i).Pressure = rng.Float64() * BaselinePressure
	}
}

// RunSubject drives one subject through days simulated days.
//
// Per day, in order: scenario shocks on the fixed cadence, one diffusion
// step, one monitor observation, one recorded snapshot. The caller owns
// graph initialization; RunSubject does not touch starting pressures.
//
// A zero or negative days value yields an empty trajectory.
func RunSubject(g *graph.Graph, shocks []Shock, days int, threshold float64, rng Rand) Trajectory {
	if days < 0 {
		days = 0
	}
	rec := NewRecorder(days)
	for day := 1; day <= days; day++ {
		if day%ShockCadence == 0 {
			ApplyShocks(g, shocks)
		}
		Step(g, rng)
		m := Measure(g)
		o := Observe(g, threshold)
		rec.Record(day, m, o)
	}
	return rec.Trajectory()
}
