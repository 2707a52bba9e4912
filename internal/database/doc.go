// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, pool configuration, driver selection
//	├── errors.go        # Driver error classification
//	├── migrations/      # Ordered, reversible schema migrations
//	├── users/           # User CRUD
//	├── organizations/   # Organization CRUD, lookup by user
//	├── workspaces/      # Workspace CRUD, lookup by organization
//	├── groups/          # Group CRUD, workspace and tenant-scoped lookups
//	└── bookmarks/       # Bookmark CRUD, keyword search, lookup by group
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	bookmarksRepo := bookmarks.NewRepository(db.DB)
//	found, err := bookmarksRepo.Search(ctx, "work urgent")
//
// Every repository method takes a context.Context which is attached to the
// statement with WithContext, so a per-call deadline bounds the database wait.
//
// # Conventions
//
//   - FindByID returns (nil, nil) when no row matches.
//   - Update returns an apperrors.ErrNotFound error when the row is absent.
//   - Delete is idempotent.
//   - Driver errors are wrapped with apperrors.Database; the original error
//     stays reachable so IsConstraintViolation can inspect it.
//
// # Adding a New Domain
//
//  1. Add a migration in migrations/ and register it in migrations.All
//  2. Create a sub-package with a Repository struct holding a *gorm.DB
//  3. Add NewRepository(db *gorm.DB) and the CRUD methods
//  4. Add a compile-time interface check in internal/interfaces
package database
