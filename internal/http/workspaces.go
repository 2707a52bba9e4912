package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

func workspaceProcedures() *rpc.Router {
	r := rpc.NewRouter()

	rpc.Query(r, "getWorkspaces", func(ctx context.Context, call *rpc.Context, _ rpc.Empty) ([]dto.Workspace, error) {
		return workspaceService(call).List(ctx)
	})
	rpc.Query(r, "getWorkspaceById", func(ctx context.Context, call *rpc.Context, id uint) (dto.Workspace, error) {
		return workspaceService(call).Get(ctx, id)
	})
	rpc.Query(r, "getWorkspacesByOrganizationId", func(ctx context.Context, call *rpc.Context, organizationID uint) ([]dto.Workspace, error) {
		return workspaceService(call).ListByOrganization(ctx, organizationID)
	})
	rpc.Mutation(r, "createWorkspace", func(ctx context.Context, call *rpc.Context, in dto.CreateWorkspace) (dto.Workspace, error) {
		return workspaceService(call).Create(ctx, in)
	})
	rpc.Mutation(r, "updateWorkspace", func(ctx context.Context, call *rpc.Context, in dto.UpdateWorkspace) (dto.Workspace, error) {
		return workspaceService(call).Update(ctx, in)
	})
	rpc.Mutation(r, "deleteWorkspace", func(ctx context.Context, call *rpc.Context, id uint) (rpc.Empty, error) {
		return rpc.Empty{}, workspaceService(call).Delete(ctx, id)
	})

	return r
}
