package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

func bookmarkProcedures() *rpc.Router {
	r := rpc.NewRouter()

	rpc.Query(r, "list", func(ctx context.Context, call *rpc.Context, _ rpc.Empty) ([]dto.Bookmark, error) {
		return bookmarkService(call).List(ctx)
	})
	rpc.Query(r, "getById", func(ctx context.Context, call *rpc.Context, id uint) (dto.Bookmark, error) {
		return bookmarkService(call).Get(ctx, id)
	})
	rpc.Query(r, "search", func(ctx context.Context, call *rpc.Context, query string) ([]dto.Bookmark, error) {
		return bookmarkService(call).Search(ctx, query)
	})
	rpc.Query(r, "getByGroup", func(ctx context.Context, call *rpc.Context, groupID uint) ([]dto.Bookmark, error) {
		return bookmarkService(call).ListByGroup(ctx, groupID)
	})
	rpc.Mutation(r, "create", func(ctx context.Context, call *rpc.Context, in dto.CreateBookmark) (dto.Bookmark, error) {
		return bookmarkService(call).Create(ctx, in)
	})
	rpc.Mutation(r, "update", func(ctx context.Context, call *rpc.Context, in dto.UpdateBookmark) (dto.Bookmark, error) {
		return bookmarkService(call).Update(ctx, in)
	})
	rpc.Mutation(r, "delete", func(ctx context.Context, call *rpc.Context, id uint) (rpc.Empty, error) {
		return rpc.Empty{}, bookmarkService(call).Delete(ctx, id)
	})

	return r
}
