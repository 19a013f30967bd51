package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/subsidy-service/internal/events"
)

type subsidyFixture struct {
	svc        *SubsidyService
	users      *fakeUserRepo
	vendors    *fakeVendorRepo
	progress   *fakeProgressRepo
	dispatcher *captureDispatcher
}

func newSubsidyFixture() *subsidyFixture {
	users := newFakeUserRepo()
	vendors := newFakeVendorRepo()
	progress := newFakeProgressRepo()
	dispatcher := &captureDispatcher{}
	svc := NewSubsidyService(SubsidyDependencies{
		VendorRepo:      vendors,
		ProgressRepo:    progress,
		MaintenanceRepo: &fakeMaintenanceRepo{users: users, vendors: vendors, progress: progress},
		Dispatcher:      dispatcher,
	})
	return &subsidyFixture{svc: svc, users: users, vendors: vendors, progress: progress, dispatcher: dispatcher}
}

func TestRegisterVendorAssignsSequentialIDs(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	first, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)
	require.False(t, first.IsPaid)

	second, err := f.svc.RegisterVendor(ctx, "Blue Hydrogen", "0xDEF", 500, 10000.00)
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)
}

func TestRegisterVendorDuplicateWalletConflicts(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	_, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)

	_, err = f.svc.RegisterVendor(ctx, "Copycat", "0xABC", 200, 999.00)
	domainErr := asDomainError(t, err)
	require.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
}

func TestListVendorsOrderedByName(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	_, err := f.svc.RegisterVendor(ctx, "Zeta Fuels", "0x111", 100, 1.00)
	require.NoError(t, err)
	_, err = f.svc.RegisterVendor(ctx, "Acme H2", "0x222", 100, 1.00)
	require.NoError(t, err)

	vendors, err := f.svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	require.Equal(t, "Acme H2", vendors[0].Name)
	require.Equal(t, "Zeta Fuels", vendors[1].Name)
}

func TestProgressAccumulates(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)

	total, err := f.svc.TotalProgress(ctx, vendor.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)

	_, err = f.svc.RecordProgress(ctx, vendor.ID, 300)
	require.NoError(t, err)
	_, err = f.svc.RecordProgress(ctx, vendor.ID, 450)
	require.NoError(t, err)

	total, err = f.svc.TotalProgress(ctx, vendor.ID)
	require.NoError(t, err)
	require.Equal(t, int64(750), total)
}

func TestProgressMayExceedMilestoneGoal(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 100, 50000.00)
	require.NoError(t, err)

	_, err = f.svc.RecordProgress(ctx, vendor.ID, 150)
	require.NoError(t, err)

	total, err := f.svc.TotalProgress(ctx, vendor.ID)
	require.NoError(t, err)
	require.Equal(t, int64(150), total)
}

func TestRecordProgressRejectsNonPositive(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)

	for _, amount := range []int64{0, -5} {
		_, err := f.svc.RecordProgress(ctx, vendor.ID, amount)
		domainErr := asDomainError(t, err)
		require.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	}

	total, err := f.svc.TotalProgress(ctx, vendor.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)

	require.NoError(t, f.svc.MarkPaid(ctx, vendor.ID))
	require.NoError(t, f.svc.MarkPaid(ctx, vendor.ID))

	stored, ok := f.vendors.get(vendor.ID)
	require.True(t, ok)
	require.True(t, stored.IsPaid)
}

func TestMarkPaidUnknownVendorIsSilent(t *testing.T) {
	f := newSubsidyFixture()
	require.NoError(t, f.svc.MarkPaid(context.Background(), 42))
}

func TestResetAllClearsState(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)
	_, err = f.svc.RecordProgress(ctx, vendor.ID, 300)
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetAll(ctx))

	vendors, err := f.svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Empty(t, vendors)

	total, err := f.svc.TotalProgress(ctx, vendor.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
}

func TestDomainEventsArePublished(t *testing.T) {
	f := newSubsidyFixture()
	ctx := context.Background()

	vendor, err := f.svc.RegisterVendor(ctx, "Acme H2", "0xABC", 1000, 50000.00)
	require.NoError(t, err)
	_, err = f.svc.RecordProgress(ctx, vendor.ID, 300)
	require.NoError(t, err)
	require.NoError(t, f.svc.MarkPaid(ctx, vendor.ID))
	require.NoError(t, f.svc.ResetAll(ctx))

	require.Equal(t, []events.EventType{
		events.EventVendorRegistered,
		events.EventProgressRecorded,
		events.EventVendorPaid,
		events.EventStateReset,
	}, f.dispatcher.types())

	for _, event := range f.dispatcher.published {
		require.NotEmpty(t, event.ID)
		require.False(t, event.Timestamp.IsZero())
	}
}
