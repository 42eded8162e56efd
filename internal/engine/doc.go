// Package engine implements the pressure-diffusion simulation core.
//
// The engine advances a graph of interdependent state variables ("nodes")
// through discrete time steps, injects scenario shocks, and classifies
// alert firings. It is the heart of driftlab - everything else is
// configuration, aggregation, or presentation.
//
// ARCHITECTURE:
//
// Synchronous Step:
// Each diffusion step reads one consistent snapshot of the previous
// step's pressures and writes all new pressures back for the whole
// graph. There is no partial-update ordering dependency: reordering the
// node table cannot change the numbers a step produces.
//
// Step Transition:
//  1. Per edge (n->m, w): f = conductivity(n) * w * (pressure(m) - pressure(n));
//     f accumulates into n, -f into m. Flow is conserved pairwise: what
//     the high side loses, the low side gains.
//  2. Per node: damped = flow(n) * (1 - inertia(n) * 0.5)
//  3. Per node: noise = (U(0,1) - 0.5) * entropy(n) * 0.1
//  4. pressure'(n) = clamp(pressure(n) + damped + noise, 0, 1)
//
// Step 1 is a discrete graph-Laplacian term: pressure flows from higher
// to lower unless suppressed by conductivity or weight.
//
// DETERMINISM:
//
// The uniform draw in step 3 is the only source of randomness in the
// engine. It comes from an injected Rand handle, never a global
// generator. One draw is consumed per node per step, in arena order,
// even when entropy is zero, so two graphs that differ only in physical
// constants consume identical random streams. Given the same seed, a
// run is bit-identical regardless of where or when it executes.
//
// Scenario shocks are applied on a fixed cadence (every 10th simulated
// day) before the day's diffusion step. The top-pressure node is
// selected with a deterministic tie-break: on exact pressure ties the
// lexicographically smallest node id wins, so reordering the node table
// cannot flip an alert.
package engine
