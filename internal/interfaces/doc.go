// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
// Services depend on narrow store interfaces rather than concrete
// repositories, so their tests can substitute in-memory fakes:
//
//   - UserStore: users (internal/services/interfaces.go)
//   - OrganizationStore: organizations, including lookup by owning user
//   - WorkspaceStore: workspaces, including lookup by organization
//   - GroupStore: groups, including the workspace+organization membership query
//   - BookmarkStore: bookmarks, including keyword search and lookup by group
//
// Each is implemented by the Repository in the matching
// internal/database/<entity> package.
//
// ## Maintenance Interfaces
//
//   - Pinger: database connectivity for /health (internal/http/health.go)
//   - DatabaseOptimizer: planner statistics refresh (internal/tasks/optimize_database.go)
//
// Both are implemented by database.Database.
//
// # Compile-time Checks
//
// checks.go holds `var _ Interface = (*Impl)(nil)` assertions for every
// pairing above. Add one whenever a new implementation is introduced.
package interfaces
