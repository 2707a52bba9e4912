package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/dto"
)

type BookmarkService struct {
	store BookmarkStore
	now   clock
}

func NewBookmarkService(store BookmarkStore) *BookmarkService {
	return &BookmarkService{store: store, now: utcNow}
}

func (s *BookmarkService) List(ctx context.Context) ([]dto.Bookmark, error) {
	list, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromBookmarks(list), nil
}

func (s *BookmarkService) Get(ctx context.Context, id uint) (dto.Bookmark, error) {
	bookmark, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Bookmark{}, err
	}
	if bookmark == nil {
		return dto.Bookmark{}, apperrors.NotFound("bookmark", id)
	}
	return dto.FromBookmark(*bookmark), nil
}

// Search matches bookmarks whose name or tags contain any of the
// whitespace-separated keywords.
func (s *BookmarkService) Search(ctx context.Context, query string) ([]dto.Bookmark, error) {
	list, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return dto.FromBookmarks(list), nil
}

func (s *BookmarkService) ListByGroup(ctx context.Context, groupID uint) ([]dto.Bookmark, error) {
	list, err := s.store.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return dto.FromBookmarks(list), nil
}

func (s *BookmarkService) Create(ctx context.Context, in dto.CreateBookmark) (dto.Bookmark, error) {
	if err := validateInput(in); err != nil {
		return dto.Bookmark{}, err
	}
	bookmark, err := s.store.Create(ctx, in.ToEntity(s.now()))
	if err != nil {
		return dto.Bookmark{}, translate(err)
	}
	return dto.FromBookmark(*bookmark), nil
}

func (s *BookmarkService) Update(ctx context.Context, in dto.UpdateBookmark) (dto.Bookmark, error) {
	id, err := requireID(in.ID)
	if err != nil {
		return dto.Bookmark{}, err
	}
	if err := rejectBlank("name", in.Name); err != nil {
		return dto.Bookmark{}, err
	}
	if err := rejectBlank("url", in.URL); err != nil {
		return dto.Bookmark{}, err
	}

	bookmark, err := s.store.Update(ctx, id, in.Changes(s.now()))
	if err != nil {
		return dto.Bookmark{}, translate(err)
	}
	return dto.FromBookmark(*bookmark), nil
}

func (s *BookmarkService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
