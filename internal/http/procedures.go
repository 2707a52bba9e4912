package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/database/bookmarks"
	"github.com/mrlokans/bookmarks/internal/database/groups"
	"github.com/mrlokans/bookmarks/internal/database/organizations"
	"github.com/mrlokans/bookmarks/internal/database/users"
	"github.com/mrlokans/bookmarks/internal/database/workspaces"
	"github.com/mrlokans/bookmarks/internal/rpc"
	"github.com/mrlokans/bookmarks/internal/services"
)

// NewProcedures builds the complete procedure surface exposed to the
// desktop frontend.
func NewProcedures() *rpc.Router {
	root := rpc.NewRouter()
	rpc.Query(root, "version", func(_ context.Context, call *rpc.Context, _ rpc.Empty) (string, error) {
		return call.Version, nil
	})

	return root.
		Merge("users.", userProcedures()).
		Merge("organization.", organizationProcedures()).
		Merge("workspace.", workspaceProcedures()).
		Merge("groups.", groupProcedures()).
		Merge("bookmark.", bookmarkProcedures())
}

// Services are cheap to build, so each call gets its own, bound to the
// call's database handle.

func userService(call *rpc.Context) *services.UserService {
	return services.NewUserService(users.NewRepository(call.DB), call.BcryptCost)
}

func organizationService(call *rpc.Context) *services.OrganizationService {
	return services.NewOrganizationService(organizations.NewRepository(call.DB))
}

func workspaceService(call *rpc.Context) *services.WorkspaceService {
	return services.NewWorkspaceService(workspaces.NewRepository(call.DB))
}

func groupService(call *rpc.Context) *services.GroupService {
	return services.NewGroupService(groups.NewRepository(call.DB))
}

func bookmarkService(call *rpc.Context) *services.BookmarkService {
	return services.NewBookmarkService(bookmarks.NewRepository(call.DB))
}
