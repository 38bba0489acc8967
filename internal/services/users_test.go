package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/users"
)

func newUserRegistry(t *testing.T, stored ...models.User) (*UserRegistry, *memStore[models.User]) {
	t.Helper()
	store := &memStore[models.User]{data: stored}
	r := NewUserRegistry(store, logging.Nop())
	require.NoError(t, r.Load(context.Background()))
	return r, store
}

func TestUserRegistry_RegisterAllocatesFromBase(t *testing.T) {
	r, store := newUserRegistry(t)
	ctx := context.Background()

	assert.Equal(t, models.FirstUserID, r.NextID())

	ana, err := r.Register(ctx, " Ana ", "Main St", "555", "ana@example.com")
	require.NoError(t, err)
	bo, err := r.Register(ctx, "Bo", "Side St", "556", "bo@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(100000000), ana.ID)
	assert.Equal(t, int64(100000001), bo.ID)
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, models.RoleUser, ana.Role)
	assert.False(t, ana.Verified)
	assert.Equal(t, models.DefaultUserPassword, ana.Password)

	require.Len(t, store.data, 2)
	assert.Equal(t, *ana, store.data[0])
}

func TestUserRegistry_IDsStayUnique(t *testing.T) {
	r, _ := newUserRegistry(t,
		models.User{ID: 100000007, Name: "x", Role: models.RoleUser},
		models.User{ID: 100000003, Name: "y", Role: models.RoleUser},
	)
	ctx := context.Background()

	seen := map[int64]bool{100000007: true, 100000003: true}
	for i := 0; i < 50; i++ {
		u, err := r.Register(ctx, "n", "a", "p", "e")
		require.NoError(t, err)
		require.False(t, seen[u.ID], "duplicate id %d", u.ID)
		require.Greater(t, u.ID, int64(100000007))
		seen[u.ID] = true
	}
}

func TestUserRegistry_LoadSetsCounterPastMaxID(t *testing.T) {
	tests := []struct {
		name   string
		stored []models.User
		want   int64
	}{
		{name: "empty", want: models.FirstUserID},
		{name: "only admin", stored: []models.User{{ID: 1, Role: models.RoleAdmin}}, want: models.FirstUserID},
		{
			name: "unordered ids",
			stored: []models.User{
				{ID: 1, Role: models.RoleAdmin},
				{ID: 100000005, Role: models.RoleUser},
				{ID: 100000002, Role: models.RoleUser},
			},
			want: 100000006,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newUserRegistry(t, tt.stored...)
			assert.Equal(t, tt.want, r.NextID())
		})
	}
}

func TestUserRegistry_LoadNormalizesRoles(t *testing.T) {
	r, _ := newUserRegistry(t,
		models.User{ID: 1, Name: "root", Role: models.RoleAdmin, Verified: false},
		models.User{ID: 100000000, Name: "Ana", Role: "", Verified: true},
	)

	admin, ok := r.Get(1)
	require.True(t, ok)
	assert.True(t, admin.Verified)

	ana, ok := r.Get(100000000)
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, ana.Role)
}

func TestUserRegistry_LoadDuplicateIDLaterWins(t *testing.T) {
	r, _ := newUserRegistry(t,
		models.User{ID: 100000000, Name: "old"},
		models.User{ID: 100000001, Name: "Bo"},
		models.User{ID: 100000000, Name: "new"},
	)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Name)
	assert.Equal(t, "Bo", all[1].Name)
}

func TestUserRegistry_LoadError(t *testing.T) {
	store := &memStore[models.User]{loadErr: errDiskFull}
	err := NewUserRegistry(store, logging.Nop()).Load(context.Background())
	require.ErrorIs(t, err, errDiskFull)
}

func TestUserRegistry_RegisterValidation(t *testing.T) {
	r, store := newUserRegistry(t)

	_, err := r.Register(context.Background(), "Ana", "  ", "555", "")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "address is required")
	assert.Contains(t, err.Error(), "email is required")

	assert.Empty(t, r.All())
	assert.Equal(t, models.FirstUserID, r.NextID())
	assert.Zero(t, store.saves)
}

func TestUserRegistry_RegisterSaveFailureRollsBack(t *testing.T) {
	r, store := newUserRegistry(t)
	store.saveErr = errDiskFull

	_, err := r.Register(context.Background(), "Ana", "a", "p", "e")
	require.ErrorIs(t, err, errDiskFull)

	assert.Empty(t, r.All())
	assert.Equal(t, models.FirstUserID, r.NextID())
	_, ok := r.Get(models.FirstUserID)
	assert.False(t, ok)
}

func TestUserRegistry_VerifyIsIdempotent(t *testing.T) {
	r, store := newUserRegistry(t)
	ctx := context.Background()
	u, err := r.Register(ctx, "Ana", "a", "p", "e")
	require.NoError(t, err)

	require.NoError(t, r.Verify(ctx, u))
	assert.True(t, u.Verified)
	saves := store.saves

	require.NoError(t, r.Verify(ctx, u))
	assert.True(t, u.Verified)
	assert.Equal(t, saves, store.saves)
	assert.True(t, store.data[0].Verified)
}

func TestUserRegistry_VerifySaveFailureRollsBack(t *testing.T) {
	r, store := newUserRegistry(t)
	ctx := context.Background()
	u, err := r.Register(ctx, "Ana", "a", "p", "e")
	require.NoError(t, err)

	store.saveErr = errDiskFull
	require.ErrorIs(t, r.Verify(ctx, u), errDiskFull)
	assert.False(t, u.Verified)
}

func TestUserRegistry_SetPasswordAndCheck(t *testing.T) {
	r, store := newUserRegistry(t)
	ctx := context.Background()
	u, err := r.Register(ctx, "Ana", "a", "p", "e")
	require.NoError(t, err)

	assert.True(t, r.CheckPassword(u, "user123"))
	require.NoError(t, r.SetPassword(ctx, u, "s3cret"))
	assert.True(t, r.CheckPassword(u, "s3cret"))
	assert.False(t, r.CheckPassword(u, "S3cret"))
	assert.Equal(t, "s3cret", store.data[0].Password)

	store.saveErr = errDiskFull
	require.ErrorIs(t, r.SetPassword(ctx, u, "other"), errDiskFull)
	assert.Equal(t, "s3cret", u.Password)
}

func TestUserRegistry_ForeignUserIsNotFound(t *testing.T) {
	r, _ := newUserRegistry(t)
	stranger := &models.User{ID: 42}

	require.ErrorIs(t, r.Verify(context.Background(), stranger), common.ErrorNotFound)
	require.ErrorIs(t, r.SetPassword(context.Background(), stranger, "x"), common.ErrorNotFound)
}

func TestUserRegistry_EnsureAdmin(t *testing.T) {
	r, store := newUserRegistry(t)
	ctx := context.Background()

	created, err := r.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	admin, ok := r.Get(models.AdminID)
	require.True(t, ok)
	assert.Equal(t, models.User{
		ID:       1,
		Name:     "Administrator",
		Address:  "Admin Street",
		Phone:    "1234567890",
		Email:    "admin@admin.com",
		Password: "admin123",
		Role:     models.RoleAdmin,
		Verified: true,
	}, *admin)
	require.Len(t, store.data, 1)
	assert.Equal(t, models.FirstUserID, r.NextID())

	created, err = r.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, r.All(), 1)
}

func TestUserRegistry_EnsureAdminPromotesID1(t *testing.T) {
	r, store := newUserRegistry(t, models.User{ID: 1, Name: "first", Role: models.RoleUser})

	created, err := r.EnsureAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	u, _ := r.Get(1)
	assert.True(t, u.IsAdmin())
	assert.True(t, u.Verified)
	assert.Equal(t, models.RoleAdmin, store.data[0].Role)
}

func TestUserRegistry_EnsureAdminSaveFailure(t *testing.T) {
	r, store := newUserRegistry(t)
	store.saveErr = errDiskFull

	_, err := r.EnsureAdmin(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	_, ok := r.Get(models.AdminID)
	assert.False(t, ok)
}

func TestUserRegistry_FindByNameSkipsAdmins(t *testing.T) {
	r, _ := newUserRegistry(t,
		models.User{ID: 1, Name: "Ana", Role: models.RoleAdmin},
		models.User{ID: 100000000, Name: "Ana", Role: models.RoleUser},
		models.User{ID: 100000001, Name: "Ana", Role: models.RoleUser},
	)

	u, ok := r.FindByName("Ana")
	require.True(t, ok)
	assert.Equal(t, int64(100000000), u.ID)

	_, ok = r.FindByName("nobody")
	assert.False(t, ok)
}

func TestUserRegistry_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_info.txt")
	ctx := context.Background()

	r := NewUserRegistry(users.NewFileRepository(path), logging.Nop())
	require.NoError(t, r.Load(ctx))
	_, err := r.EnsureAdmin(ctx)
	require.NoError(t, err)
	ana, err := r.Register(ctx, "Ana", "Main St", "555", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, r.Verify(ctx, ana))
	_, err = r.Register(ctx, "Bo", "Side St", "556", "bo@example.com")
	require.NoError(t, err)

	reloaded := NewUserRegistry(users.NewFileRepository(path), logging.Nop())
	require.NoError(t, reloaded.Load(ctx))

	require.Len(t, reloaded.All(), 3)
	for i, u := range r.All() {
		assert.Equal(t, *u, *reloaded.All()[i])
	}
	assert.Equal(t, r.NextID(), reloaded.NextID())
}
