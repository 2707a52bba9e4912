package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type WorkspaceService struct {
	store WorkspaceStore
	now   clock
}

func NewWorkspaceService(store WorkspaceStore) *WorkspaceService {
	return &WorkspaceService{store: store, now: utcNow}
}

func (s *WorkspaceService) List(ctx context.Context) ([]dto.Workspace, error) {
	list, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromWorkspaces(list), nil
}

func (s *WorkspaceService) Get(ctx context.Context, id uint) (dto.Workspace, error) {
	ws, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Workspace{}, err
	}
	if ws == nil {
		return dto.Workspace{}, apperrors.NotFound("workspace", id)
	}
	return dto.FromWorkspace(*ws), nil
}

func (s *WorkspaceService) ListByOrganization(ctx context.Context, organizationID uint) ([]dto.Workspace, error) {
	list, err := s.store.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return dto.FromWorkspaces(list), nil
}

func (s *WorkspaceService) Create(ctx context.Context, in dto.CreateWorkspace) (dto.Workspace, error) {
	if err := validateInput(in); err != nil {
		return dto.Workspace{}, err
	}
	ws, err := s.store.Create(ctx, in.ToEntity(s.now()))
	if err != nil {
		return dto.Workspace{}, translate(err)
	}
	return dto.FromWorkspace(*ws), nil
}

func (s *WorkspaceService) Update(ctx context.Context, in dto.UpdateWorkspace) (dto.Workspace, error) {
	id, err := requireID(in.ID)
	if err != nil {
		return dto.Workspace{}, err
	}
	if err := rejectBlank("name", in.Name); err != nil {
		return dto.Workspace{}, err
	}

	ws, err := s.store.Update(ctx, id, in.Changes(s.now()))
	if err != nil {
		return dto.Workspace{}, translate(err)
	}
	return dto.FromWorkspace(*ws), nil
}

func (s *WorkspaceService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
