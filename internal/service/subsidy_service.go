package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/subsidy-service/internal/domain"
	"github.com/spec-kit/subsidy-service/internal/events"
	"github.com/spec-kit/subsidy-service/internal/repository"
	apperrors "github.com/spec-kit/subsidy-service/pkg/util"
)

// SubsidyService coordinates the vendor registry, progress ledger, payout
// flag and demo reset.
type SubsidyService struct {
	vendors     repository.VendorRepository
	progress    repository.ProgressRepository
	maintenance repository.MaintenanceRepository
	dispatcher  events.Dispatcher
}

// SubsidyDependencies bundles repositories for the subsidy service.
type SubsidyDependencies struct {
	VendorRepo      repository.VendorRepository
	ProgressRepo    repository.ProgressRepository
	MaintenanceRepo repository.MaintenanceRepository
	Dispatcher      events.Dispatcher
}

// NewSubsidyService constructs the service.
func NewSubsidyService(deps SubsidyDependencies) *SubsidyService {
	return &SubsidyService{
		vendors:     deps.VendorRepo,
		progress:    deps.ProgressRepo,
		maintenance: deps.MaintenanceRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// ListVendors returns all vendors ordered by name ascending.
func (s *SubsidyService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.List(ctx)
}

// RegisterVendor enrolls a producer. Wallet uniqueness is decided by the
// store's constraint.
func (s *SubsidyService) RegisterVendor(ctx context.Context, name, walletAddress string, milestoneGoal int64, rewardAmount float64) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		Name:          name,
		WalletAddress: walletAddress,
		MilestoneGoal: milestoneGoal,
		RewardAmount:  rewardAmount,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("wallet address already registered", map[string]any{"walletAddress": walletAddress})
		}
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventVendorRegistered,
		VendorID: vendor.ID,
		Payload: events.VendorRegisteredPayload{
			Name:          vendor.Name,
			WalletAddress: vendor.WalletAddress,
			MilestoneGoal: vendor.MilestoneGoal,
			RewardAmount:  vendor.RewardAmount,
		},
	})
	return vendor, nil
}

// TotalProgress sums all increments recorded for the vendor; 0 when none.
func (s *SubsidyService) TotalProgress(ctx context.Context, vendorID int64) (int64, error) {
	return s.progress.TotalByVendor(ctx, vendorID)
}

// RecordProgress appends one positive increment to the vendor's ledger.
// Cumulative progress may exceed the milestone goal; no cap is enforced.
func (s *SubsidyService) RecordProgress(ctx context.Context, vendorID, newProgress int64) (*domain.ProgressEntry, error) {
	if newProgress <= 0 {
		return nil, apperrors.NewValidationError("newProgress must be a positive number", map[string]any{"newProgress": newProgress})
	}

	entry := &domain.ProgressEntry{
		VendorID: vendorID,
		Progress: newProgress,
	}
	if err := s.progress.Append(ctx, entry); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventProgressRecorded,
		VendorID: vendorID,
		Payload:  events.ProgressRecordedPayload{Progress: newProgress},
	})
	return entry, nil
}

// MarkPaid flips the payout flag. Payout is not gated on milestone
// completion, and repeating the call observes the same state; the announced
// event carries the cumulative progress seen at payout time so zero-progress
// payouts are visible to operators.
func (s *SubsidyService) MarkPaid(ctx context.Context, vendorID int64) error {
	if err := s.vendors.MarkPaid(ctx, vendorID); err != nil {
		return err
	}

	total, err := s.progress.TotalByVendor(ctx, vendorID)
	if err != nil {
		total = 0
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventVendorPaid,
		VendorID: vendorID,
		Payload:  events.VendorPaidPayload{TotalProgress: total},
	})
	return nil
}

// ResetAll irreversibly clears users, vendors and progress logs.
func (s *SubsidyService) ResetAll(ctx context.Context) error {
	if err := s.maintenance.ResetAll(ctx); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventStateReset,
		Payload: events.StateResetPayload{Reason: "demo reset"},
	})
	return nil
}

func (s *SubsidyService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
