// Package store provides SQLite-backed storage for stress-test runs.
//
// The simulation core is persistence-free: it takes configuration as
// plain data and returns plain result records. The store is caller-side
// glue - the CLI uses it to keep a history of runs so results can be
// compared across configuration changes.
//
// Three tables:
//   - runs: one row per invocation (UUIDv7 id, seed, run parameters)
//   - results: one row per scenario per run, in scenario order
//   - steps: optional per-day trajectory rows for diagnostics
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: results and steps reference runs
package store
