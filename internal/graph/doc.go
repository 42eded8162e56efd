// Package graph provides the node-graph data model for the pressure
// diffusion simulator.
//
// This package contains data and lookup only - no simulation behavior.
// All other internal packages import graph; graph imports nothing internal.
// This keeps the model the foundational layer with no circular dependencies.
//
// ARCHITECTURE:
//
// Arena Layout:
// Nodes live in a flat slice with a stable integer index assigned at
// construction (config order). Edges store arena indices, not id strings,
// so the diffusion hot loop never hashes. An id->index table built once
// at construction serves external lookups.
//
// Validation:
// Configuration is validated fail-fast at construction. Duplicate node
// ids, edges referencing unknown ids, and physical constants outside
// [0,1] are configuration errors, never silently clamped. Only computed
// pressures are clamped at runtime (by the engine).
package graph
