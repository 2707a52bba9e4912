// Package bookmarks provides database operations for bookmarks, including
// keyword search over names and tags.
package bookmarks

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, bookmark entities.Bookmark) (*entities.Bookmark, error) {
	if err := r.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return nil, apperrors.Database("create bookmark", err)
	}
	return r.mustFind(ctx, bookmark.ID)
}

// FindByID returns nil, nil when no bookmark has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := r.db.WithContext(ctx).First(&bookmark, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("find bookmark", err)
	}
	return &bookmark, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Bookmark, error) {
	var list []entities.Bookmark
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, apperrors.Database("list bookmarks", err)
	}
	return list, nil
}

func (r *Repository) FindByGroupID(ctx context.Context, groupID uint) ([]entities.Bookmark, error) {
	var list []entities.Bookmark
	err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("id").Find(&list).Error
	if err != nil {
		return nil, apperrors.Database("list bookmarks by group", err)
	}
	return list, nil
}

// Search splits query on whitespace and returns every bookmark whose name or
// tags contain at least one of the keywords. Matching is a plain substring
// test; case sensitivity follows the database's LIKE. A blank query matches
// nothing.
func (r *Repository) Search(ctx context.Context, query string) ([]entities.Bookmark, error) {
	keywords := strings.Fields(query)
	if len(keywords) == 0 {
		return []entities.Bookmark{}, nil
	}

	clauses := make([]string, 0, len(keywords))
	args := make([]any, 0, 2*len(keywords))
	for _, kw := range keywords {
		pattern := "%" + escapeLike(kw) + "%"
		clauses = append(clauses, `name LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\'`)
		args = append(args, pattern, pattern)
	}

	var list []entities.Bookmark
	if err := r.db.WithContext(ctx).Where(strings.Join(clauses, " OR "), args...).Order("id").Find(&list).Error; err != nil {
		return nil, apperrors.Database("search bookmarks", err)
	}
	return list, nil
}

func (r *Repository) Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Bookmark, error) {
	bookmark, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperrors.NotFound("bookmark", id)
	}

	if err := r.db.WithContext(ctx).Model(bookmark).Updates(map[string]any(changes)).Error; err != nil {
		return nil, apperrors.Database("update bookmark", err)
	}
	return r.mustFind(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return apperrors.Database("delete bookmark", r.db.WithContext(ctx).Delete(&entities.Bookmark{}, id).Error)
}

func (r *Repository) mustFind(ctx context.Context, id uint) (*entities.Bookmark, error) {
	bookmark, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperrors.NotFound("bookmark", id)
	}
	return bookmark, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
