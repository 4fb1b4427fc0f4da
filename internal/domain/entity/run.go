package entity

import "time"

// Run records one executed scenario build for the history store.
// Fingerprint is a hash of the canonical scenario encoding; two runs with the
// same fingerprint were built from byte-identical configurations.
type Run struct {
	ID          int64
	Scenario    string
	Fingerprint string
	PaneCount   int
	OpCount     int
	FailedPanes int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration returns how long the build took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
