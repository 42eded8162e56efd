// Package harness provides the Monte Carlo stress-test harness for the
// diffusion engine.
//
// The harness runs subjects x days simulations per scenario and
// aggregates per-day records into one pass/fail result per scenario:
// accuracy of alert firings, average equilibrium and stability, and
// convergence speed.
//
// # Execution Model
//
// Subjects are mutually independent and scenarios are independent of one
// another, so the harness fans (scenario, subject) jobs out to a bounded
// worker pool. Each job gets a private graph instance and a private
// random stream derived from (master seed, scenario ordinal, subject
// index), and writes its trajectory into a preallocated slot. No shared
// accumulator is touched mid-run; aggregation happens once, in input
// order, after all workers finish. Results are therefore bit-identical
// across worker counts and scheduling orders.
//
// Cancellation is checked at subject granularity: a cancelled context
// aborts before the next subject starts, never mid-step.
//
// # Progress
//
// After each subject completes, the optional progress callback receives
// the scenario name and the percentage of that scenario's subjects
// finished, in [0,100]. The callback runs under the harness's internal
// mutex; keep it cheap and do not call back into the harness.
//
// # Unknown Scenarios
//
// Requesting a scenario name that is not in the configured table logs a
// warning and runs the scenario with zero shocks (a pure baseline), so a
// typo'd name degrades a comparison instead of aborting the whole run.
package harness
