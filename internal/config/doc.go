// Package config loads and validates simulator configuration: the node
// table, the edge table, the scenario table, and default run parameters.
//
// Configuration is YAML, decoded strictly (unknown fields are rejected,
// catching typos like "scenarios:" vs "scenario:"), then checked against
// a CUE schema that enforces required fields and the [0,1] bounds on all
// physical constants. Cross-reference checks (edges and shocks naming
// real nodes) happen later, at graph construction, where they produce
// structured configuration errors.
//
// A reference configuration modeling a founder's operating state
// (36 nodes: finance, customers, product, team, founder, market) ships
// embedded; Default returns it.
package config
