package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

func organizationProcedures() *rpc.Router {
	r := rpc.NewRouter()

	rpc.Query(r, "getOrganizations", func(ctx context.Context, call *rpc.Context, _ rpc.Empty) ([]dto.Organization, error) {
		return organizationService(call).List(ctx)
	})
	rpc.Query(r, "getOrganizationById", func(ctx context.Context, call *rpc.Context, id uint) (dto.Organization, error) {
		return organizationService(call).Get(ctx, id)
	})
	// Takes a user id and returns every organization that user owns.
	rpc.Query(r, "getOrganizationByUserId", func(ctx context.Context, call *rpc.Context, userID uint) ([]dto.Organization, error) {
		return organizationService(call).ListByUser(ctx, userID)
	})
	rpc.Mutation(r, "createOrganization", func(ctx context.Context, call *rpc.Context, in dto.CreateOrganization) (dto.Organization, error) {
		return organizationService(call).Create(ctx, in)
	})
	rpc.Mutation(r, "updateOrganization", func(ctx context.Context, call *rpc.Context, in dto.UpdateOrganization) (dto.Organization, error) {
		return organizationService(call).Update(ctx, in)
	})
	rpc.Mutation(r, "deleteOrganization", func(ctx context.Context, call *rpc.Context, id uint) (rpc.Empty, error) {
		return rpc.Empty{}, organizationService(call).Delete(ctx, id)
	})

	return r
}
