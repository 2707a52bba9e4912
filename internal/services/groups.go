package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type GroupService struct {
	store GroupStore
	now   clock
}

func NewGroupService(store GroupStore) *GroupService {
	return &GroupService{store: store, now: utcNow}
}

func (s *GroupService) List(ctx context.Context) ([]dto.Group, error) {
	list, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromGroups(list), nil
}

func (s *GroupService) Get(ctx context.Context, id uint) (dto.Group, error) {
	group, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Group{}, err
	}
	if group == nil {
		return dto.Group{}, apperrors.NotFound("group", id)
	}
	return dto.FromGroup(*group), nil
}

func (s *GroupService) ListByWorkspace(ctx context.Context, workspaceID uint) ([]dto.Group, error) {
	list, err := s.store.FindByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return dto.FromGroups(list), nil
}

// ListBelonged returns the workspace's groups when the workspace belongs to
// the given organization, and nothing otherwise.
func (s *GroupService) ListBelonged(ctx context.Context, q dto.BelongedGroupsQuery) ([]dto.Group, error) {
	if err := validateInput(q); err != nil {
		return nil, err
	}
	list, err := s.store.FindBelongedGroups(ctx, q.WorkspaceID, q.OrganizationID)
	if err != nil {
		return nil, err
	}
	return dto.FromGroups(list), nil
}

func (s *GroupService) Create(ctx context.Context, in dto.CreateGroup) (dto.Group, error) {
	if err := validateInput(in); err != nil {
		return dto.Group{}, err
	}
	group, err := s.store.Create(ctx, in.ToEntity(s.now()))
	if err != nil {
		return dto.Group{}, translate(err)
	}
	return dto.FromGroup(*group), nil
}

func (s *GroupService) Update(ctx context.Context, in dto.UpdateGroup) (dto.Group, error) {
	id, err := requireID(in.ID)
	if err != nil {
		return dto.Group{}, err
	}
	if err := rejectBlank("name", in.Name); err != nil {
		return dto.Group{}, err
	}

	group, err := s.store.Update(ctx, id, in.Changes(s.now()))
	if err != nil {
		return dto.Group{}, translate(err)
	}
	return dto.FromGroup(*group), nil
}

func (s *GroupService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
