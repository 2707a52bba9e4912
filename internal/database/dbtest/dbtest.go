// Package dbtest opens migrated, file-backed SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/database"
	"github.com/mrlokans/bookmarks/internal/entities"
)

// Open returns a fresh database with every migration applied. It is closed
// when the test finishes.
func Open(t testing.TB) *gorm.DB {
	return OpenDatabase(t).DB
}

// OpenDatabase is Open but returns the wrapper, for tests that need the
// driver or the maintenance helpers.
func OpenDatabase(t testing.TB) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		URL:      "sqlite://" + filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// Chain holds the ids of one user → organization → workspace → group path.
type Chain struct {
	UserID         uint
	OrganizationID uint
	WorkspaceID    uint
	GroupID        uint
}

// SeedChain inserts a user with one organization, workspace and group.
func SeedChain(t testing.TB, db *gorm.DB) Chain {
	t.Helper()
	now := time.Now().UTC()

	user := entities.User{Name: "Ana", Email: "a@x.com", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&user).Error)

	org := entities.Organization{Name: "Acme", UserID: user.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&org).Error)

	ws := entities.Workspace{Name: "Eng", OrganizationID: org.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&ws).Error)

	group := entities.Group{Name: "Links", WorkspaceID: ws.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&group).Error)

	return Chain{UserID: user.ID, OrganizationID: org.ID, WorkspaceID: ws.ID, GroupID: group.ID}
}
