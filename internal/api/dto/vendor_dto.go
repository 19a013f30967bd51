package dto

import "time"

// AddVendorRequest payload for vendor registration.
type AddVendorRequest struct {
	Name          string  `json:"name"`
	WalletAddress string  `json:"walletAddress"`
	MilestoneGoal int64   `json:"milestoneGoal"`
	RewardAmount  float64 `json:"rewardAmount"`
}

// RecordProgressRequest payload for a ledger increment. The pointer
// distinguishes a missing field from an explicit zero.
type RecordProgressRequest struct {
	NewProgress *int64 `json:"newProgress"`
}

// VendorResponse is one vendor row.
type VendorResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"walletAddress"`
	MilestoneGoal int64     `json:"milestoneGoal"`
	RewardAmount  float64   `json:"rewardAmount"`
	IsPaid        bool      `json:"isPaid"`
	CreatedAt     time.Time `json:"createdAt"`
}
