package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookmarks/internal/database"
	"github.com/mrlokans/bookmarks/internal/database/bookmarks"
	"github.com/mrlokans/bookmarks/internal/database/groups"
	"github.com/mrlokans/bookmarks/internal/database/organizations"
	"github.com/mrlokans/bookmarks/internal/database/users"
	"github.com/mrlokans/bookmarks/internal/database/workspaces"
	"github.com/mrlokans/bookmarks/internal/http"
	"github.com/mrlokans/bookmarks/internal/scheduler"
	"github.com/mrlokans/bookmarks/internal/services"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.UserStore = (*users.Repository)(nil)
var _ services.OrganizationStore = (*organizations.Repository)(nil)
var _ services.WorkspaceStore = (*workspaces.Repository)(nil)
var _ services.GroupStore = (*groups.Repository)(nil)
var _ services.BookmarkStore = (*bookmarks.Repository)(nil)

// =============================================================================
// Maintenance
// =============================================================================

// Health checks ping both databases; background optimization runs on the main one.
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*tasks.Client)(nil)
var _ tasks.DatabaseOptimizer = (*database.Database)(nil)

// /health reports the maintenance schedule.
var _ http.MaintenanceReporter = (*scheduler.MaintenanceScheduler)(nil)
