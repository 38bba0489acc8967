package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// Session binds at most one logged-in user and gates registry operations
// by that user's role. A nil current user is the anonymous state.
type Session struct {
	users      *UserRegistry
	items      *ItemRegistry
	categories *CategoryRegistry
	log        logging.Logger

	current *models.User
}

func NewSession(users *UserRegistry, items *ItemRegistry, categories *CategoryRegistry, log logging.Logger) *Session {
	return &Session{
		users:      users,
		items:      items,
		categories: categories,
		log:        log,
	}
}

// Register creates a new account. It does not log the caller in.
func (s *Session) Register(ctx context.Context, name, address, phone, email string) (*models.User, error) {
	return s.users.Register(ctx, name, address, phone, email)
}

// Login binds the user with the given id. On any failure the session stays
// as it was.
func (s *Session) Login(ctx context.Context, id int64, password string) (*models.User, error) {
	u, ok := s.users.Get(id)
	if !ok {
		return nil, common.ErrorInvalidUserID
	}
	if !s.users.CheckPassword(u, password) {
		s.log.Warn(ctx, "login failed", "user_id", id, "reason", "wrong password")
		return nil, common.ErrorWrongPassword
	}
	if !u.CanLogin() {
		return nil, common.ErrorNotVerified
	}

	s.current = u
	s.log.Info(ctx, "user logged in", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// LoginRaw is Login for an id typed by the user.
func (s *Session) LoginRaw(ctx context.Context, idText, password string) (*models.User, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return nil, common.ErrorInvalidUserID
	}
	return s.Login(ctx, id, password)
}

func (s *Session) Logout(ctx context.Context) {
	if s.current != nil {
		s.log.Info(ctx, "user logged out", "user_id", s.current.ID)
	}
	s.current = nil
}

func (s *Session) Current() *models.User {
	return s.current
}

func (s *Session) IsAuthenticated() bool {
	return s.current != nil
}

func (s *Session) IsAdmin() bool {
	return s.current != nil && s.current.IsAdmin()
}

// RequireUser returns the current user or ErrorNotAuthenticated.
func (s *Session) RequireUser() (*models.User, error) {
	if s.current == nil {
		return nil, common.ErrorNotAuthenticated
	}
	return s.current, nil
}

// RequireAdmin returns the current user when it is an administrator.
func (s *Session) RequireAdmin() (*models.User, error) {
	u, err := s.RequireUser()
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, common.ErrorForbidden
	}
	return u, nil
}

// AddItem creates an item owned by the current user. The category must be
// one of the registered categories.
func (s *Session) AddItem(ctx context.Context, name, description, category string) (*models.Item, error) {
	u, err := s.RequireUser()
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category != "" && !s.categories.Exists(category) {
		return nil, fmt.Errorf("%w: category %q does not exist", common.ErrorValidation, category)
	}

	return s.items.Add(ctx, name, description, category, u)
}

// MyItems lists the current user's items.
func (s *Session) MyItems() ([]*models.Item, error) {
	u, err := s.RequireUser()
	if err != nil {
		return nil, err
	}
	return s.items.OwnedBy(u), nil
}

// ModifyItem renames one of the current user's items, picked by ref.
func (s *Session) ModifyItem(ctx context.Context, ref, name, description string) (string, error) {
	u, err := s.RequireUser()
	if err != nil {
		return "", err
	}

	it, err := s.items.FindOwned(u, ref)
	if err != nil {
		return "", err
	}

	oldName := it.Name
	if err := s.items.Modify(ctx, it, name, description); err != nil {
		return "", err
	}
	return fmt.Sprintf("item %q modified to %q", oldName, it.Name), nil
}

// DeleteItem removes one of the current user's items, picked by ref.
func (s *Session) DeleteItem(ctx context.Context, ref string) (string, error) {
	u, err := s.RequireUser()
	if err != nil {
		return "", err
	}

	it, err := s.items.FindOwned(u, ref)
	if err != nil {
		return "", err
	}
	return s.items.Delete(ctx, it)
}

// SearchItems runs an item search. Both arguments are required.
func (s *Session) SearchItems(category, keyword string) ([]*models.Item, error) {
	if _, err := s.RequireUser(); err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	keyword = strings.TrimSpace(keyword)
	if err := requireValue("category", category); err != nil {
		return nil, err
	}
	if err := requireValue("keyword", keyword); err != nil {
		return nil, err
	}

	return s.items.Search(category, keyword), nil
}

// Categories lists the registered categories. No login is needed.
func (s *Session) Categories() []models.Category {
	return s.categories.All()
}
