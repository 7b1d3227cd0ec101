package model

import "time"

// CycleReport summarises one scan-and-notify cycle.
type CycleReport struct {
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
	CapsulesScanned  int       `json:"capsules_scanned"`  // candidates returned by the store
	CapsulesNotified int       `json:"capsules_notified"` // personal capsules flipped to notified
	EntriesNotified  int       `json:"entries_notified"`  // collaborative entries flipped to notified
	SendsAttempted   int       `json:"sends_attempted"`
	SendsFailed      int       `json:"sends_failed"`
	WriteFailures    int       `json:"write_failures"` // flag writes that failed after retries
	Skipped          int       `json:"skipped"`        // items left for the next tick after a transient error
	ScanFailures     int       `json:"scan_failures"`
}

// Duration returns how long the cycle took.
func (r CycleReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Eventful reports whether the cycle unlocked something or hit a failure.
func (r CycleReport) Eventful() bool {
	return r.CapsulesNotified > 0 || r.EntriesNotified > 0 ||
		r.SendsFailed > 0 || r.WriteFailures > 0 || r.ScanFailures > 0
}
