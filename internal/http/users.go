package http

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

func userProcedures() *rpc.Router {
	r := rpc.NewRouter()

	rpc.Query(r, "getUsers", func(ctx context.Context, call *rpc.Context, _ rpc.Empty) ([]dto.User, error) {
		return userService(call).List(ctx)
	})
	rpc.Query(r, "getUserById", func(ctx context.Context, call *rpc.Context, id uint) (dto.User, error) {
		return userService(call).Get(ctx, id)
	})
	rpc.Mutation(r, "createUser", func(ctx context.Context, call *rpc.Context, in dto.CreateUser) (dto.User, error) {
		return userService(call).Create(ctx, in)
	})
	rpc.Mutation(r, "updateUser", func(ctx context.Context, call *rpc.Context, in dto.UpdateUser) (dto.User, error) {
		return userService(call).Update(ctx, in)
	})
	rpc.Mutation(r, "deleteUser", func(ctx context.Context, call *rpc.Context, id uint) (rpc.Empty, error) {
		return rpc.Empty{}, userService(call).Delete(ctx, id)
	})

	return r
}
