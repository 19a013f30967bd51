package events

import "time"

// EventType enumerates subsidy domain events.
type EventType string

const (
	EventVendorRegistered EventType = "vendor.registered"
	EventProgressRecorded EventType = "progress.recorded"
	EventVendorPaid       EventType = "vendor.paid"
	EventStateReset       EventType = "state.reset"
)

// Event is the envelope published on the dispatcher and announced externally.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	VendorID  int64     `json:"vendorId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// VendorRegisteredPayload describes a newly enrolled vendor.
type VendorRegisteredPayload struct {
	Name          string  `json:"name"`
	WalletAddress string  `json:"walletAddress"`
	MilestoneGoal int64   `json:"milestoneGoal"`
	RewardAmount  float64 `json:"rewardAmount"`
}

// ProgressRecordedPayload describes one ledger increment.
type ProgressRecordedPayload struct {
	Progress int64 `json:"progress"`
}

// VendorPaidPayload carries the cumulative progress observed at payout time.
type VendorPaidPayload struct {
	TotalProgress int64 `json:"totalProgress"`
}

// StateResetPayload marks a full demo reset.
type StateResetPayload struct {
	Reason string `json:"reason,omitempty"`
}
