package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type OrganizationService struct {
	store OrganizationStore
	now   clock
}

func NewOrganizationService(store OrganizationStore) *OrganizationService {
	return &OrganizationService{store: store, now: utcNow}
}

func (s *OrganizationService) List(ctx context.Context) ([]dto.Organization, error) {
	orgs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromOrganizations(orgs), nil
}

func (s *OrganizationService) Get(ctx context.Context, id uint) (dto.Organization, error) {
	org, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Organization{}, err
	}
	if org == nil {
		return dto.Organization{}, apperrors.NotFound("organization", id)
	}
	return dto.FromOrganization(*org), nil
}

// ListByUser returns every organization owned by the user. An unknown user
// simply owns nothing.
func (s *OrganizationService) ListByUser(ctx context.Context, userID uint) ([]dto.Organization, error) {
	orgs, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromOrganizations(orgs), nil
}

func (s *OrganizationService) Create(ctx context.Context, in dto.CreateOrganization) (dto.Organization, error) {
	if err := validateInput(in); err != nil {
		return dto.Organization{}, err
	}
	org, err := s.store.Create(ctx, in.ToEntity(s.now()))
	if err != nil {
		return dto.Organization{}, translate(err)
	}
	return dto.FromOrganization(*org), nil
}

func (s *OrganizationService) Update(ctx context.Context, in dto.UpdateOrganization) (dto.Organization, error) {
	id, err := requireID(in.ID)
	if err != nil {
		return dto.Organization{}, err
	}
	if err := rejectBlank("name", in.Name); err != nil {
		return dto.Organization{}, err
	}

	org, err := s.store.Update(ctx, id, in.Changes(s.now()))
	if err != nil {
		return dto.Organization{}, translate(err)
	}
	return dto.FromOrganization(*org), nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
