package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/database/dbtest"
	"github.com/mrlokans/bookmarks/internal/entities"
)

func setupTestRepo(t *testing.T) *Repository {
	return NewRepository(dbtest.Open(t))
}

func newUser(name, email string) entities.User {
	now := time.Now().UTC()
	return entities.User{Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
}

func TestRepository_Create(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	user, err := repo.Create(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.CreatedAt.Equal(user.UpdatedAt))
}

func TestRepository_FindByID_Absent(t *testing.T) {
	repo := setupTestRepo(t)

	user, err := repo.FindByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRepository_FindAll(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Create(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("Bo", "b@x.com"))
	require.NoError(t, err)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_UpdatePartial(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	changes := entities.NewChangeset(time.Now().UTC()).Set("name", "Ana Maria")

	updated, err := repo.Update(ctx, created.ID, changes)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestRepository_UpdateOnlyTimestamp(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.Update(ctx, created.ID, entities.NewChangeset(time.Now().UTC()))
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Update(context.Background(), 999, entities.NewChangeset(time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, 4242))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_DeleteCascadesToOrganizations(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)

	require.NoError(t, repo.Delete(ctx, chain.UserID))

	for table, id := range map[string]uint{
		"organizations": chain.OrganizationID,
		"workspaces":    chain.WorkspaceID,
		"groups":        chain.GroupID,
	} {
		var count int64
		require.NoError(t, db.Table(table).Where("id = ?", id).Count(&count).Error)
		assert.Zero(t, count, table)
	}
}

func TestRepository_CanceledContext(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
}
