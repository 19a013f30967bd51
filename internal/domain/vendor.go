package domain

import "time"

// Vendor is a green-hydrogen producer enrolled for subsidy payouts.
type Vendor struct {
	ID            int64
	Name          string
	WalletAddress string
	MilestoneGoal int64
	RewardAmount  float64
	IsPaid        bool
	CreatedAt     time.Time
}
