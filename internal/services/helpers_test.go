package services

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

var errDiskFull = errors.New("disk full")

// memStore is an in-memory repository for any record type.
type memStore[T any] struct {
	data    []T
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore[T]) LoadAll(ctx context.Context) ([]T, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.data), nil
}

func (m *memStore[T]) SaveAll(ctx context.Context, data []T) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data = slices.Clone(data)
	return nil
}

type fixture struct {
	userStore *memStore[models.User]
	itemStore *memStore[models.ItemRecord]
	catStore  *memStore[models.Category]

	users      *UserRegistry
	items      *ItemRegistry
	categories *CategoryRegistry
	session    *Session
	admin      *Admin
}

// newFixture loads empty registries, creates the administrator and the
// "Vehicles" category.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	log := logging.Nop()

	f := &fixture{
		userStore: &memStore[models.User]{},
		itemStore: &memStore[models.ItemRecord]{},
		catStore:  &memStore[models.Category]{},
	}
	f.users = NewUserRegistry(f.userStore, log)
	f.items = NewItemRegistry(f.itemStore, log)
	f.categories = NewCategoryRegistry(f.catStore, log)

	require.NoError(t, f.categories.Load(ctx))
	require.NoError(t, f.users.Load(ctx))
	_, err := f.users.EnsureAdmin(ctx)
	require.NoError(t, err)
	require.NoError(t, f.items.Load(ctx, f.users))
	require.NoError(t, f.categories.Add(ctx, "Vehicles", "bikes and cars"))

	f.session = NewSession(f.users, f.items, f.categories, log)
	f.admin = NewAdmin(f.session)
	return f
}

// verifiedUser registers and verifies a user without going through a
// session.
func (f *fixture) verifiedUser(t *testing.T, name string) *models.User {
	t.Helper()
	ctx := context.Background()
	u, err := f.users.Register(ctx, name, "Street 1", "555", name+"@example.com")
	require.NoError(t, err)
	require.NoError(t, f.users.Verify(ctx, u))
	return u
}

func (f *fixture) loginAs(t *testing.T, u *models.User) {
	t.Helper()
	_, err := f.session.Login(context.Background(), u.ID, u.Password)
	require.NoError(t, err)
}

func (f *fixture) loginAdmin(t *testing.T) {
	t.Helper()
	_, err := f.session.Login(context.Background(), models.AdminID, models.DefaultAdminPassword)
	require.NoError(t, err)
}
