package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/subsidy-service/internal/domain"
	"github.com/spec-kit/subsidy-service/internal/events"
)

// In-memory repository fakes. They reproduce the store behaviors the services
// rely on: pgx.ErrNoRows for missing rows and a 23505 PgError for unique
// violations.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := user
	return &out, nil
}

func (r *fakeUserRepo) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]domain.User)
	r.nextID = 0
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	nextID  int64
	vendors []domain.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{}
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vendors {
		if v.WalletAddress == vendor.WalletAddress {
			return &pgconn.PgError{Code: "23505", ConstraintName: "vendors_wallet_address_key"}
		}
	}
	r.nextID++
	vendor.ID = r.nextID
	vendor.CreatedAt = time.Now()
	r.vendors = append(r.vendors, *vendor)
	return nil
}

func (r *fakeVendorRepo) List(_ context.Context) ([]domain.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Vendor, len(r.vendors))
	copy(out, r.vendors)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Name < out[i].Name {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeVendorRepo) MarkPaid(_ context.Context, vendorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.vendors {
		if r.vendors[i].ID == vendorID {
			r.vendors[i].IsPaid = true
		}
	}
	// unknown ids are a silent no-op, matching the UPDATE semantics
	return nil
}

func (r *fakeVendorRepo) get(vendorID int64) (domain.Vendor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vendors {
		if v.ID == vendorID {
			return v, true
		}
	}
	return domain.Vendor{}, false
}

func (r *fakeVendorRepo) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vendors = nil
	r.nextID = 0
}

type fakeProgressRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.ProgressEntry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{}
}

func (r *fakeProgressRepo) Append(_ context.Context, entry *domain.ProgressEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	entry.Timestamp = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeProgressRepo) TotalByVendor(_ context.Context, vendorID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, e := range r.entries {
		if e.VendorID == vendorID {
			total += e.Progress
		}
	}
	return total, nil
}

func (r *fakeProgressRepo) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.nextID = 0
}

type fakeMaintenanceRepo struct {
	users    *fakeUserRepo
	vendors  *fakeVendorRepo
	progress *fakeProgressRepo
}

func (r *fakeMaintenanceRepo) ResetAll(_ context.Context) error {
	r.progress.clear()
	r.vendors.clear()
	r.users.clear()
	return nil
}

// captureDispatcher records every published event.
type captureDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.published))
	for _, e := range d.published {
		out = append(out, e.Type)
	}
	return out
}
