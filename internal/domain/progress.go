package domain

import "time"

// ProgressEntry is one recorded increment toward a vendor's milestone goal.
// Entries are append-only; cumulative progress is the sum over a vendor's rows.
type ProgressEntry struct {
	ID        int64
	VendorID  int64
	Progress  int64
	Timestamp time.Time
}
