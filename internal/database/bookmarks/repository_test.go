package bookmarks

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

func newBookmark(name, tags string, groupID *uint) entities.Bookmark {
	now := time.Now().UTC()
	return entities.Bookmark{
		Name:      name,
		URL:       "https://example.com/" + name,
		Tags:      tags,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func names(list []entities.Bookmark) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}
	return out
}

func TestRepository_CreateWithoutGroup(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))

	b, err := repo.Create(context.Background(), newBookmark("loose", "", nil))
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Nil(t, b.GroupID)
	assert.False(t, b.IsFavorite)
	assert.True(t, b.CreatedAt.Equal(b.UpdatedAt))
}

func TestRepository_CreateWithUnknownGroup(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	missing := uint(999)

	_, err := repo.Create(context.Background(), newBookmark("orphan", "", &missing))
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
}

func TestRepository_FindByGroupID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)

	_, err := repo.Create(ctx, newBookmark("a", "", &chain.GroupID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBookmark("b", "", &chain.GroupID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBookmark("c", "", nil))
	require.NoError(t, err)

	list, err := repo.FindByGroupID(ctx, chain.GroupID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(list))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepository_UpdatePartial(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)

	created, err := repo.Create(ctx, newBookmark("Docs", "ref", &chain.GroupID))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	changes := entities.NewChangeset(time.Now().UTC()).Set("is_favorite", true)
	updated, err := repo.Update(ctx, created.ID, changes)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.URL, updated.URL)
	assert.Equal(t, created.Tags, updated.Tags)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, chain.GroupID, *updated.GroupID)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))

	_, err := repo.Update(context.Background(), 5, entities.NewChangeset(time.Now()))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	before, err := repo.FindByID(ctx, 31)
	require.NoError(t, err)
	assert.Nil(t, before)

	require.NoError(t, repo.Delete(ctx, 31))

	after, err := repo.FindByID(ctx, 31)
	require.NoError(t, err)
	assert.Nil(t, after)
}

func TestRepository_Search(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	for _, b := range []entities.Bookmark{
		newBookmark("work-plan", "", nil),
		newBookmark("recipes", "urgent home", nil),
		newBookmark("holiday", "travel", nil),
		newBookmark("homework", "school", nil),
		newBookmark("100%_done", "", nil),
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"keywords are OR-ed across name and tags", "work urgent", []string{"work-plan", "recipes", "homework"}},
		{"tags only", "travel", []string{"holiday"}},
		{"extra whitespace", "  travel \t ", []string{"holiday"}},
		{"no match", "nothing", []string{}},
		{"empty query", "", []string{}},
		{"blank query", "   ", []string{}},
		{"percent is literal", "%", []string{"100%_done"}},
		{"underscore is literal", "_", []string{"100%_done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(list))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
