package engine

// ConvergenceThreshold is the stability level a subject must reach for a
// day to count as its convergence day.
const ConvergenceThreshold = 0.8

// StepRecord is one day's snapshot of a subject's run.
// Immutable once recorded.
type StepRecord struct {
	Day           int     `json:"day"`
	Equilibrium   float64 `json:"equilibrium"`
	Stability     float64 `json:"stability"`
	TopNodeID     string  `json:"top_node_id"`
	TopPressure   float64 `json:"top_pressure"`
	Fired         bool    `json:"fired"`
	FalsePositive bool    `json:"false_positive"`
}

// Trajectory is the full per-day record of one subject's run.
type Trajectory struct {
	// Subject is the subject index within the scenario run.
	Subject int `json:"subject"`

	// Steps holds one record per simulated day, in day order.
	Steps []StepRecord `json:"steps"`

	// ConvergenceDay is the first day stability reached
	// ConvergenceThreshold, or 0 if it never did.
	ConvergenceDay int `json:"convergence_day"`
}

// Recorder accumulates per-step snapshots for one subject's run.
type Recorder struct {
	traj Trajectory
}

// NewRecorder creates a recorder with capacity for days records.
func NewRecorder(days int) *Recorder {
	return &Recorder{traj: Trajectory{Steps: make([]StepRecord, 0, days)}}
}

// Record appends one day's snapshot and tracks first convergence.
func (r *Recorder) Record(day int, m Metrics, o Observation) {
	r.traj.Steps = append(r.traj.Steps, StepRecord{
		Day:           day,
		Equilibrium:   m.Equilibrium,
		Stability:     m.Stability,
		TopNodeID:     o.TopNodeID,
		TopPressure:   o.TopPressure,
		Fired:         o.Fired,
		FalsePositive: o.FalsePositive,
	})
	if r.traj.ConvergenceDay == 0 && m.Stability >= ConvergenceThreshold {
		r.traj.ConvergenceDay = day
	}
}

// Trajectory returns the accumulated record. The recorder must not be
// used after this call.
func (r *Recorder) Trajectory() Trajectory {
	return r.traj
}
