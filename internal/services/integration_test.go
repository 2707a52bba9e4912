package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/database/bookmarks"
	"github.com/mrlokans/bookmarks/internal/database/dbtest"
	"github.com/mrlokans/bookmarks/internal/database/groups"
	"github.com/mrlokans/bookmarks/internal/database/organizations"
	"github.com/mrlokans/bookmarks/internal/database/users"
	"github.com/mrlokans/bookmarks/internal/database/workspaces"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type stack struct {
	users         *UserService
	organizations *OrganizationService
	workspaces    *WorkspaceService
	groups        *GroupService
	bookmarks     *BookmarkService
}

func newStack(db *gorm.DB) stack {
	return stack{
		users:         NewUserService(users.NewRepository(db), bcrypt.MinCost),
		organizations: NewOrganizationService(organizations.NewRepository(db)),
		workspaces:    NewWorkspaceService(workspaces.NewRepository(db)),
		groups:        NewGroupService(groups.NewRepository(db)),
		bookmarks:     NewBookmarkService(bookmarks.NewRepository(db)),
	}
}

func TestServices_DeletingWorkspaceRemovesGroupsAndBookmarks(t *testing.T) {
	s := newStack(dbtest.Open(t))
	ctx := context.Background()

	ana, err := s.users.Create(ctx, dto.CreateUser{Name: "Ana", Email: "a@x.com"})
	require.NoError(t, err)
	acme, err := s.organizations.Create(ctx, dto.CreateOrganization{Name: "Acme", UserID: ana.ID})
	require.NoError(t, err)
	eng, err := s.workspaces.Create(ctx, dto.CreateWorkspace{Name: "Eng", OrganizationID: acme.ID})
	require.NoError(t, err)
	links, err := s.groups.Create(ctx, dto.CreateGroup{Name: "Links", WorkspaceID: eng.ID})
	require.NoError(t, err)
	docs, err := s.bookmarks.Create(ctx, dto.CreateBookmark{
		Name:       "Docs",
		URL:        "https://x",
		Tags:       "ref",
		IsFavorite: false,
		GroupID:    &links.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.workspaces.Delete(ctx, eng.ID))

	_, err = s.groups.Get(ctx, links.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.bookmarks.Get(ctx, docs.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = s.organizations.Get(ctx, acme.ID)
	assert.NoError(t, err)
}

func TestServices_UnknownParentIsValidationError(t *testing.T) {
	s := newStack(dbtest.Open(t))
	ctx := context.Background()

	_, err := s.organizations.Create(ctx, dto.CreateOrganization{Name: "Acme", UserID: 404})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)

	_, err = s.bookmarks.Create(ctx, dto.CreateBookmark{Name: "Docs", URL: "https://x", GroupID: ptr(uint(404))})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestServices_PartialUpdateKeepsOtherFields(t *testing.T) {
	db := dbtest.Open(t)
	s := newStack(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)

	created, err := s.bookmarks.Create(ctx, dto.CreateBookmark{Name: "Docs", URL: "https://x", Tags: "ref", GroupID: &chain.GroupID})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.bookmarks.Update(ctx, dto.UpdateBookmark{ID: &created.ID, Tags: ptr("ref go")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "ref go", updated.Tags)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.URL, updated.URL)
	assert.Equal(t, created.GroupID, updated.GroupID)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestServices_BelongedGroups(t *testing.T) {
	db := dbtest.Open(t)
	s := newStack(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)
	other := dbtest.SeedChain(t, db)

	list, err := s.groups.ListBelonged(ctx, dto.BelongedGroupsQuery{WorkspaceID: chain.WorkspaceID, OrganizationID: chain.OrganizationID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, chain.GroupID, list[0].ID)

	list, err = s.groups.ListBelonged(ctx, dto.BelongedGroupsQuery{WorkspaceID: chain.WorkspaceID, OrganizationID: other.OrganizationID})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.groups.ListBelonged(ctx, dto.BelongedGroupsQuery{WorkspaceID: chain.WorkspaceID})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestServices_ListByParent(t *testing.T) {
	db := dbtest.Open(t)
	s := newStack(db)
	ctx := context.Background()
	chain := dbtest.SeedChain(t, db)

	orgs, err := s.organizations.ListByUser(ctx, chain.UserID)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Acme", orgs[0].Name)

	wss, err := s.workspaces.ListByOrganization(ctx, chain.OrganizationID)
	require.NoError(t, err)
	require.Len(t, wss, 1)

	grps, err := s.groups.ListByWorkspace(ctx, chain.WorkspaceID)
	require.NoError(t, err)
	require.Len(t, grps, 1)

	none, err := s.organizations.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestServices_UpdateWithoutIDIsValidationForEveryEntity(t *testing.T) {
	s := newStack(dbtest.Open(t))
	ctx := context.Background()

	_, err := s.organizations.Update(ctx, dto.UpdateOrganization{Name: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = s.workspaces.Update(ctx, dto.UpdateWorkspace{Name: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = s.groups.Update(ctx, dto.UpdateGroup{Name: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
