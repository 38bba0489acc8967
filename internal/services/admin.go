package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// Admin exposes the administrator-only operations of a session. Every
// method checks the session role before touching a registry.
type Admin struct {
	s *Session
}

func NewAdmin(s *Session) *Admin {
	return &Admin{s: s}
}

// ListPending returns the regular users awaiting approval, in registry order.
func (a *Admin) ListPending() ([]*models.User, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return nil, err
	}

	var out []*models.User
	for _, u := range a.s.users.All() {
		if !u.IsAdmin() && !u.Verified {
			out = append(out, u)
		}
	}
	return out, nil
}

// Approve verifies the user with the given id. Approving a user twice
// yields the same message.
func (a *Admin) Approve(ctx context.Context, id int64) (string, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return "", err
	}

	u, ok := a.s.users.Get(id)
	if !ok {
		return "", fmt.Errorf("user %d %w", id, common.ErrorNotFound)
	}
	if err := a.s.users.Verify(ctx, u); err != nil {
		return "", err
	}
	return fmt.Sprintf("user %q approved", u.Name), nil
}

// ResetPassword sets a new password for a regular user picked by id or
// by name.
func (a *Admin) ResetPassword(ctx context.Context, userRef, password string) (string, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return "", err
	}

	u, err := a.ResetTarget(userRef)
	if err != nil {
		return "", err
	}
	if err := requireValue("password", password); err != nil {
		return "", err
	}

	if err := a.s.users.SetPassword(ctx, u, password); err != nil {
		return "", err
	}
	return fmt.Sprintf("password of user %q reset to %q", u.Name, password), nil
}

// ResetTarget resolves the user whose password ResetPassword would change.
func (a *Admin) ResetTarget(userRef string) (*models.User, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return nil, err
	}

	u, err := a.lookupUser(userRef)
	if err != nil {
		return nil, err
	}
	if u.IsAdmin() {
		return nil, fmt.Errorf("%w: cannot reset an administrator password", common.ErrorForbidden)
	}
	return u, nil
}

// Users lists every regular user.
func (a *Admin) Users() ([]*models.User, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return nil, err
	}

	var out []*models.User
	for _, u := range a.s.users.All() {
		if !u.IsAdmin() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (a *Admin) AddCategory(ctx context.Context, name, description string) (string, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return "", err
	}
	if err := a.s.categories.Add(ctx, name, description); err != nil {
		return "", err
	}
	return fmt.Sprintf("category %q added", strings.TrimSpace(name)), nil
}

func (a *Admin) DeleteCategory(ctx context.Context, name string) (string, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return "", err
	}
	if err := a.s.categories.Delete(ctx, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("category %q deleted", strings.TrimSpace(name)), nil
}

func (a *Admin) ModifyCategory(ctx context.Context, name, description string) (string, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return "", err
	}
	if err := a.s.categories.Modify(ctx, name, description); err != nil {
		return "", err
	}
	return fmt.Sprintf("category %q modified", strings.TrimSpace(name)), nil
}

// AllItems returns every item of every user.
func (a *Admin) AllItems() ([]*models.Item, error) {
	if _, err := a.s.RequireAdmin(); err != nil {
		return nil, err
	}
	return a.s.items.All(), nil
}

// lookupUser resolves a numeric id first and falls back to a name.
func (a *Admin) lookupUser(ref string) (*models.User, error) {
	ref = strings.TrimSpace(ref)
	if err := requireValue("user", ref); err != nil {
		return nil, err
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if u, ok := a.s.users.Get(id); ok {
			return u, nil
		}
	}
	if u, ok := a.s.users.FindByName(ref); ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %q %w", ref, common.ErrorNotFound)
}
