package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/users"
)

// UserRegistry owns every user record and the id counter.
type UserRegistry struct {
	repo   users.Repository
	log    logging.Logger
	users  []*models.User
	byID   map[int64]*models.User
	nextID int64
}

func NewUserRegistry(repo users.Repository, log logging.Logger) *UserRegistry {
	return &UserRegistry{
		repo:   repo,
		log:    log,
		byID:   make(map[int64]*models.User),
		nextID: models.FirstUserID,
	}
}

// Load replaces the registry content with the stored records.
//
// Every id at or above the counter moves the counter past it. A repeated id
// overwrites the earlier record in place. Admin records are always treated
// as verified.
func (r *UserRegistry) Load(ctx context.Context) error {
	records, err := r.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	r.users = r.users[:0]
	r.byID = make(map[int64]*models.User, len(records))
	r.nextID = models.FirstUserID

	for _, rec := range records {
		u := rec
		if u.Role == models.RoleAdmin {
			u.Verified = true
		} else {
			u.Role = models.RoleUser
		}

		if existing, ok := r.byID[u.ID]; ok {
			*existing = u
		} else {
			r.byID[u.ID] = &u
			r.users = append(r.users, &u)
		}

		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}

	r.log.Debug(ctx, "users loaded", "count", len(r.users), "next_id", r.nextID)
	return nil
}

// EnsureAdmin creates the administrator account with id 1 when it is
// missing. It reports whether the store was changed.
func (r *UserRegistry) EnsureAdmin(ctx context.Context) (bool, error) {
	if u, ok := r.byID[models.AdminID]; ok {
		if u.IsAdmin() {
			return false, nil
		}

		prev := *u
		u.Role = models.RoleAdmin
		u.Verified = true
		if err := r.Save(ctx); err != nil {
			*u = prev
			return false, err
		}
		r.log.Warn(ctx, "user promoted to administrator", "user_id", u.ID)
		return true, nil
	}

	admin := &models.User{
		ID:       models.AdminID,
		Name:     "Administrator",
		Address:  "Admin Street",
		Phone:    "1234567890",
		Email:    "admin@admin.com",
		Password: models.DefaultAdminPassword,
		Role:     models.RoleAdmin,
		Verified: true,
	}
	r.insert(admin)

	if err := r.Save(ctx); err != nil {
		r.remove(admin)
		return false, err
	}

	r.log.Info(ctx, "administrator account created", "user_id", admin.ID)
	return true, nil
}

// Register creates an unverified user with the default password.
func (r *UserRegistry) Register(ctx context.Context, name, address, phone, email string) (*models.User, error) {
	u := &models.User{
		Name:     strings.TrimSpace(name),
		Address:  strings.TrimSpace(address),
		Phone:    strings.TrimSpace(phone),
		Email:    strings.TrimSpace(email),
		Password: models.DefaultUserPassword,
		Role:     models.RoleUser,
	}
	if err := validateStruct(u); err != nil {
		return nil, err
	}

	prevNext := r.nextID
	u.ID = r.nextID
	r.nextID++
	r.insert(u)

	if err := r.Save(ctx); err != nil {
		r.remove(u)
		r.nextID = prevNext
		return nil, err
	}

	r.log.Info(ctx, "user registered", "user_id", u.ID, "name", u.Name)
	return u, nil
}

// Get returns the user with the given id.
func (r *UserRegistry) Get(id int64) (*models.User, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// All returns every user in insertion order.
func (r *UserRegistry) All() []*models.User {
	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out
}

// NextID is the id the next registration will receive.
func (r *UserRegistry) NextID() int64 {
	return r.nextID
}

// FindByName returns the first regular user called name.
func (r *UserRegistry) FindByName(name string) (*models.User, bool) {
	for _, u := range r.users {
		if !u.IsAdmin() && u.Name == name {
			return u, true
		}
	}
	return nil, false
}

// Verify approves u. An already verified user is left untouched.
func (r *UserRegistry) Verify(ctx context.Context, u *models.User) error {
	if err := r.owns(u); err != nil {
		return err
	}
	if u.Verified {
		return nil
	}

	u.Verify()
	if err := r.Save(ctx); err != nil {
		u.Verified = false
		return err
	}

	r.log.Info(ctx, "user verified", "user_id", u.ID)
	return nil
}

// SetPassword replaces the password of u.
func (r *UserRegistry) SetPassword(ctx context.Context, u *models.User, password string) error {
	if err := r.owns(u); err != nil {
		return err
	}

	prev := u.Password
	u.SetPassword(password)
	if err := r.Save(ctx); err != nil {
		u.Password = prev
		return err
	}

	r.log.Info(ctx, "password changed", "user_id", u.ID)
	return nil
}

func (r *UserRegistry) CheckPassword(u *models.User, candidate string) bool {
	return u.CheckPassword(candidate)
}

// Save writes every user to the repository.
func (r *UserRegistry) Save(ctx context.Context) error {
	snapshot := make([]models.User, len(r.users))
	for i, u := range r.users {
		snapshot[i] = *u
	}

	if err := r.repo.SaveAll(ctx, snapshot); err != nil {
		r.log.Error(ctx, "failed to save users", "error", err)
		return err
	}
	return nil
}

func (r *UserRegistry) owns(u *models.User) error {
	if u == nil || r.byID[u.ID] != u {
		return fmt.Errorf("user %w", common.ErrorNotFound)
	}
	return nil
}

func (r *UserRegistry) insert(u *models.User) {
	r.byID[u.ID] = u
	r.users = append(r.users, u)
}

func (r *UserRegistry) remove(u *models.User) {
	delete(r.byID, u.ID)
	for i, x := range r.users {
		if x == u {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}
