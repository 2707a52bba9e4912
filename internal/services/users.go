package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/auth"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type UserService struct {
	store     UserStore
	passwords auth.PasswordHasher
	now       clock
}

func NewUserService(store UserStore, bcryptCost int) *UserService {
	return &UserService{store: store, passwords: auth.NewPasswordHasher(bcryptCost), now: utcNow}
}

func (s *UserService) List(ctx context.Context) ([]dto.User, error) {
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

func (s *UserService) Get(ctx context.Context, id uint) (dto.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.User{}, err
	}
	if user == nil {
		return dto.User{}, apperrors.NotFound("user", id)
	}
	return dto.FromUser(*user), nil
}

func (s *UserService) Create(ctx context.Context, in dto.CreateUser) (dto.User, error) {
	if err := validateInput(in); err != nil {
		return dto.User{}, err
	}

	row := in.ToEntity(s.now())
	if in.Password != "" {
		hash, err := s.passwords.Hash(in.Password)
		if err != nil {
			return dto.User{}, err
		}
		row.PasswordHash = hash
	}

	user, err := s.store.Create(ctx, row)
	if err != nil {
		return dto.User{}, translate(err)
	}
	return dto.FromUser(*user), nil
}

func (s *UserService) Update(ctx context.Context, in dto.UpdateUser) (dto.User, error) {
	id, err := requireID(in.ID)
	if err != nil {
		return dto.User{}, err
	}
	if err := rejectBlank("name", in.Name); err != nil {
		return dto.User{}, err
	}
	if in.Email != nil {
		if err := validate.Var(*in.Email, "required,email"); err != nil {
			return dto.User{}, apperrors.Validation("email must be a valid email address")
		}
	}

	changes := in.Changes(s.now())
	if in.Password != nil {
		hash, err := s.passwords.Hash(*in.Password)
		if err != nil {
			return dto.User{}, err
		}
		changes.Set("password_hash", hash)
	}

	user, err := s.store.Update(ctx, id, changes)
	if err != nil {
		return dto.User{}, translate(err)
	}
	return dto.FromUser(*user), nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
