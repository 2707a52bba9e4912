package services

import (
	"context"
	"time"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/entities"
)

var testNow = time.Date(2025, 7, 12, 10, 42, 6, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// fakeUserStore counts writes so tests can assert that rejected input never
// reaches storage.
type fakeUserStore struct {
	rows    map[uint]entities.User
	nextID  uint
	writes  int
	changes entities.Changeset
	err     error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: map[uint]entities.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user entities.User) (*entities.User, error) {
	f.writes++
	if f.err != nil {
		return nil, f.err
	}
	user.ID = f.nextID
	f.nextID++
	f.rows[user.ID] = user
	return &user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uint) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entities.User, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, id uint, changes entities.Changeset) (*entities.User, error) {
	f.writes++
	f.changes = changes
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NotFound("user", id)
	}
	if v, ok := changes["name"]; ok {
		user.Name = v.(string)
	}
	if v, ok := changes["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := changes["password_hash"]; ok {
		user.PasswordHash = v.(string)
	}
	user.UpdatedAt = changes["updated_at"].(time.Time)
	f.rows[id] = user
	return &user, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uint) error {
	f.writes++
	delete(f.rows, id)
	return f.err
}

type fakeBookmarkStore struct {
	rows   map[uint]entities.Bookmark
	nextID uint
	writes int
	query  string
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{rows: map[uint]entities.Bookmark{}, nextID: 1}
}

func (f *fakeBookmarkStore) Create(_ context.Context, b entities.Bookmark) (*entities.Bookmark, error) {
	f.writes++
	b.ID = f.nextID
	f.nextID++
	f.rows[b.ID] = b
	return &b, nil
}

func (f *fakeBookmarkStore) FindByID(_ context.Context, id uint) (*entities.Bookmark, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBookmarkStore) FindAll(_ context.Context) ([]entities.Bookmark, error) {
	out := make([]entities.Bookmark, 0, len(f.rows))
	for _, b := range f.rows {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookmarkStore) FindByGroupID(_ context.Context, groupID uint) ([]entities.Bookmark, error) {
	var out []entities.Bookmark
	for _, b := range f.rows {
		if b.GroupID != nil && *b.GroupID == groupID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookmarkStore) Search(_ context.Context, query string) ([]entities.Bookmark, error) {
	f.query = query
	return nil, nil
}

func (f *fakeBookmarkStore) Update(_ context.Context, id uint, changes entities.Changeset) (*entities.Bookmark, error) {
	f.writes++
	b, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NotFound("bookmark", id)
	}
	if v, ok := changes["is_favorite"]; ok {
		b.IsFavorite = v.(bool)
	}
	b.UpdatedAt = changes["updated_at"].(time.Time)
	f.rows[id] = b
	return &b, nil
}

func (f *fakeBookmarkStore) Delete(_ context.Context, id uint) error {
	f.writes++
	delete(f.rows, id)
	return nil
}
