package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

func groupProcedures() *rpc.Router {
	r := rpc.NewRouter()

	rpc.Query(r, "getGroups", func(ctx context.Context, call *rpc.Context, _ rpc.Empty) ([]dto.Group, error) {
		return groupService(call).List(ctx)
	})
	rpc.Query(r, "getGroupById", func(ctx context.Context, call *rpc.Context, id uint) (dto.Group, error) {
		return groupService(call).Get(ctx, id)
	})
	rpc.Query(r, "getGroupsByWorkspaceId", func(ctx context.Context, call *rpc.Context, workspaceID uint) ([]dto.Group, error) {
		return groupService(call).ListByWorkspace(ctx, workspaceID)
	})
	rpc.Query(r, "getBelongedGroups", func(ctx context.Context, call *rpc.Context, q dto.BelongedGroupsQuery) ([]dto.Group, error) {
		return groupService(call).ListBelonged(ctx, q)
	})
	rpc.Mutation(r, "createGroups", func(ctx context.Context, call *rpc.Context, in dto.CreateGroup) (dto.Group, error) {
		return groupService(call).Create(ctx, in)
	})
	rpc.Mutation(r, "updateGroup", func(ctx context.Context, call *rpc.Context, in dto.UpdateGroup) (dto.Group, error) {
		return groupService(call).Update(ctx, in)
	})
	rpc.Mutation(r, "deleteGroup", func(ctx context.Context, call *rpc.Context, id uint) (rpc.Empty, error) {
		return rpc.Empty{}, groupService(call).Delete(ctx, id)
	})

	return r
}
