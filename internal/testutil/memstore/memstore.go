// Package memstore implements the repository interfaces in memory so service
// and handler tests run without PostgreSQL. Transactions are serialized and
// roll back on error; the exclusion constraint on approved and active
// bookings is enforced on every write.
package memstore

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type txKey struct{}

// Store holds every table
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	roles    map[uuid.UUID]models.Role
	users    map[uuid.UUID]models.User
	zones    map[uuid.UUID]models.Zone
	bookings map[uuid.UUID]models.Booking
	audit    []models.AuditLog

	// Now stamps created_at and updated_at
	Now func() time.Time
}

// New returns a store seeded with the admin and user roles
func New() *Store {
	s := &Store{
		roles:    make(map[uuid.UUID]models.Role),
		users:    make(map[uuid.UUID]models.User),
		zones:    make(map[uuid.UUID]models.Zone),
		bookings: make(map[uuid.UUID]models.Booking),
		Now:      time.Now,
	}
	now := time.Now()
	for _, r := range []models.Role{
		{ID: uuid.New(), Name: "admin", IsAdminGroup: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "user", CreatedAt: now, UpdatedAt: now},
	} {
		s.roles[r.ID] = r
	}
	return s
}

type snapshot struct {
	users    map[uuid.UUID]models.User
	zones    map[uuid.UUID]models.Zone
	bookings map[uuid.UUID]models.Booking
	audit    int
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		users:    make(map[uuid.UUID]models.User, len(s.users)),
		zones:    make(map[uuid.UUID]models.Zone, len(s.zones)),
		bookings: make(map[uuid.UUID]models.Booking, len(s.bookings)),
		audit:    len(s.audit),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.zones {
		snap.zones[k] = v
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.zones = snap.zones
	s.bookings = snap.bookings
	s.audit = s.audit[:snap.audit]
}

// Transaction runs fn while holding the store's writer lock. Nested calls
// join the outer transaction.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// DB returns nil; there is no connection behind the store
func (s *Store) DB() *sql.DB { return nil }

func (s *Store) now() time.Time {
	return s.Now().UTC()
}

// Roles returns the role repository
func (s *Store) Roles() repository.RoleRepository { return roleRepo{s} }

// Users returns the user repository
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Zones returns the zone repository
func (s *Store) Zones() repository.ZoneRepository { return zoneRepo{s} }

// Bookings returns the booking repository
func (s *Store) Bookings() repository.BookingRepository { return bookingRepo{s} }

// AuditLogs returns the audit log repository
func (s *Store) AuditLogs() repository.AuditLogRepository { return auditRepo{s} }

type roleRepo struct{ *Store }

func (r roleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	role, ok := r.roles[id]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}
	return &role, nil
}

func (r roleRepo) GetByName(_ context.Context, name string) (*models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.roles {
		if role.Name == name {
			return &role, nil
		}
	}
	return nil, repository.ErrRoleNotFound
}

type userRepo struct{ *Store }

func (r userRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.roles[user.RoleID]; !ok {
		return repository.ErrRoleNotFound
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email != nil && user.Email != nil && strings.EqualFold(*u.Email, *user.Email) {
			return repository.ErrEmailExists
		}
	}
	now := r.now()
	user.ID = uuid.New()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	stored.Role = nil
	r.users[user.ID] = stored
	return nil
}

func (r userRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repository.ErrUserNotFound
	}
	return r.withRole(u), nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username && u.DeletedAt == nil {
			return r.withRole(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r userRepo) withRole(u models.User) *models.User {
	role := r.roles[u.RoleID]
	u.Role = &role
	return &u
}

type zoneRepo struct{ *Store }

func sameRegion(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r zoneRepo) conflicts(z models.Zone) bool {
	if !z.IsActive {
		return false
	}
	for _, other := range r.zones {
		if other.ID != z.ID && other.IsActive && other.ZoneType == z.ZoneType &&
			other.CountryID == z.CountryID && sameRegion(other.RegionID, z.RegionID) {
			return true
		}
	}
	return false
}

func (r zoneRepo) Create(_ context.Context, zone *models.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	zone.ID = uuid.New()
	if r.conflicts(*zone) {
		return repository.ErrZoneExists
	}
	now := r.now()
	zone.CreatedAt, zone.UpdatedAt = now, now
	r.zones[zone.ID] = *zone
	return nil
}

func (r zoneRepo) Update(_ context.Context, zone *models.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.zones[zone.ID]
	if !ok {
		return repository.ErrZoneNotFound
	}
	existing.Name = zone.Name
	existing.IsActive = zone.IsActive
	if r.conflicts(existing) {
		return repository.ErrZoneExists
	}
	existing.UpdatedAt = r.now()
	r.zones[zone.ID] = existing
	*zone = existing
	return nil
}

func (r zoneRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[id]; !ok {
		return repository.ErrZoneNotFound
	}
	for _, b := range r.bookings {
		if b.ZoneID == id {
			return repository.ErrHasAssociatedRecords
		}
	}
	delete(r.zones, id)
	return nil
}

func (r zoneRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z, ok := r.zones[id]
	if !ok {
		return nil, repository.ErrZoneNotFound
	}
	return &z, nil
}

func (r zoneRepo) Resolve(_ context.Context, zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) (*models.Zone, error) {
	if !zoneType.RequiresRegion() {
		regionID = nil
	} else if regionID == nil {
		return nil, repository.ErrZoneNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, z := range r.zones {
		if z.IsActive && z.ZoneType == zoneType && z.CountryID == countryID && sameRegion(z.RegionID, regionID) {
			return &z, nil
		}
	}
	return nil, repository.ErrZoneNotFound
}

func (r zoneRepo) List(_ context.Context, filter repository.ZoneFilter) ([]models.Zone, error) {
	r.mu.Lock()
	var out []models.Zone
	for _, z := range r.zones {
		if filter.Search != nil && !strings.Contains(strings.ToLower(z.Name), strings.ToLower(*filter.Search)) {
			continue
		}
		if filter.ZoneType != nil && z.ZoneType != *filter.ZoneType {
			continue
		}
		if filter.CountryID != nil && z.CountryID != *filter.CountryID {
			continue
		}
		if filter.Active != nil && z.IsActive != *filter.Active {
			continue
		}
		out = append(out, z)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, filter.Limit, filter.Offset), nil
}

func page[T any](items []T, limit, offset *int) []T {
	if offset != nil {
		if *offset >= len(items) {
			return []T{}
		}
		items = items[*offset:]
	}
	if limit != nil && *limit < len(items) {
		items = items[:*limit]
	}
	if items == nil {
		return []T{}
	}
	return items
}

type bookingRepo struct{ *Store }

// overlaps reports whether an occupying booking other than exclude shares a day with dr
func (r bookingRepo) overlaps(zoneID uuid.UUID, position banner.Position, dr banner.DateRange, exclude uuid.UUID) bool {
	for _, b := range r.bookings {
		if b.ID == exclude || b.ZoneID != zoneID || b.Position != position || !b.Status.Occupies() {
			continue
		}
		if b.Range().Overlaps(dr) {
			return true
		}
	}
	return false
}

func (r bookingRepo) write(b *models.Booking) error {
	if _, ok := r.zones[b.ZoneID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.users[b.RequestedBy]; !ok {
		return repository.ErrNotFound
	}
	if b.Status.Occupies() && r.overlaps(b.ZoneID, b.Position, b.Range(), b.ID) {
		return repository.ErrOverlap
	}
	b.StartDate = banner.Day(b.StartDate)
	b.EndDate = banner.Day(b.EndDate)
	r.bookings[b.ID] = *b
	return nil
}

func (r bookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := r.now()
	b.CreatedAt, b.UpdatedAt = now, now
	return r.write(b)
}

func (r bookingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return &b, nil
}

func (r bookingRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r bookingRepo) Update(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return repository.ErrBookingNotFound
	}
	b.UpdatedAt = r.now()
	return r.write(b)
}

func (r bookingRepo) List(_ context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	var out []models.Booking
	for _, b := range r.bookings {
		if len(filter.Statuses) > 0 && !contains(filter.Statuses, b.Status) {
			continue
		}
		if filter.ZoneID != nil && b.ZoneID != *filter.ZoneID {
			continue
		}
		if filter.Position != nil && b.Position != *filter.Position {
			continue
		}
		if filter.RequestedBy != nil && b.RequestedBy != *filter.RequestedBy {
			continue
		}
		out = append(out, b)
	}
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, filter.Limit, filter.Offset), nil
}

// LockSlot is satisfied by the transaction lock
func (r bookingRepo) LockSlot(context.Context, uuid.UUID, banner.Position) error {
	return nil
}

func (r bookingRepo) HasOverlap(_ context.Context, zoneID uuid.UUID, position banner.Position, dr banner.DateRange, excludeID *uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exclude := uuid.Nil
	if excludeID != nil {
		exclude = *excludeID
	}
	return r.overlaps(zoneID, position, dr, exclude), nil
}

func (r bookingRepo) Occupancy(_ context.Context, filter repository.OccupancyFilter) ([]banner.Occupancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]banner.Occupancy, 0)
	var created []time.Time
	for _, b := range r.bookings {
		if b.ZoneID != filter.ZoneID || b.Position != filter.Position {
			continue
		}
		if !b.Status.Occupies() && !(filter.IncludePending && b.Status == banner.StatusPending) {
			continue
		}
		if filter.From != nil && b.EndDate.Before(banner.Day(*filter.From)) {
			continue
		}
		if filter.To != nil && b.StartDate.After(banner.Day(*filter.To)) {
			continue
		}
		entries = append(entries, banner.Occupancy{
			BookingID:         b.ID,
			StartDate:         b.StartDate,
			EndDate:           b.EndDate,
			RequesterUsername: r.users[b.RequestedBy].Username,
			Status:            b.Status,
		})
		created = append(created, b.CreatedAt)
	}
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := entries[idx[i]], entries[idx[j]]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return created[idx[i]].Before(created[idx[j]])
	})
	sorted := make([]banner.Occupancy, len(entries))
	for i, k := range idx {
		sorted[i] = entries[k]
	}
	return sorted, nil
}

func (r bookingRepo) ActivateDue(_ context.Context, today time.Time) ([]models.Booking, error) {
	return r.advance(func(b models.Booking) bool {
		return b.Status == banner.StatusApproved && !b.StartDate.After(banner.Day(today))
	}, banner.StatusActive)
}

func (r bookingRepo) ExpireDue(_ context.Context, today time.Time) ([]models.Booking, error) {
	return r.advance(func(b models.Booking) bool {
		return b.Status == banner.StatusActive && b.EndDate.Before(banner.Day(today))
	}, banner.StatusExpired)
}

func (r bookingRepo) advance(match func(models.Booking) bool, to banner.Status) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0)
	now := r.now()
	for id, b := range r.bookings {
		if !match(b) {
			continue
		}
		b.Status = to
		b.UpdatedAt = now
		r.bookings[id] = b
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

type auditRepo struct{ *Store }

func (r auditRepo) Create(_ context.Context, req *models.CreateAuditLogRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audit = append(r.audit, models.AuditLog{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Action:      req.Action,
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		Description: req.Description,
		Metadata:    req.Metadata,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
		CreatedAt:   r.now(),
	})
	return nil
}

func (r auditRepo) List(_ context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	r.mu.Lock()
	var out []models.AuditLog
	for i := len(r.audit) - 1; i >= 0; i-- {
		l := r.audit[i]
		if filter.UserID != nil && (l.UserID == nil || *l.UserID != *filter.UserID) {
			continue
		}
		if len(filter.Actions) > 0 && !contains(filter.Actions, l.Action) {
			continue
		}
		if len(filter.EntityTypes) > 0 && !contains(filter.EntityTypes, l.EntityType) {
			continue
		}
		if len(filter.EntityIDs) > 0 && !contains(filter.EntityIDs, l.EntityID) {
			continue
		}
		if filter.CreatedBefore != nil && !l.CreatedAt.Before(*filter.CreatedBefore) {
			continue
		}
		if filter.CreatedAfter != nil && !l.CreatedAt.After(*filter.CreatedAfter) {
			continue
		}
		out = append(out, l)
	}
	r.mu.Unlock()
	return page(out, filter.Limit, filter.Offset), nil
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
