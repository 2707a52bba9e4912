package dto

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUser struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	// Password is write-only and optional; it is stored as a bcrypt hash.
	Password string `json:"password,omitempty"`
}

type UpdateUser struct {
	ID       *uint   `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password,omitempty"`
}

func FromUser(u entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(users []entities.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// ToEntity builds an insertable row. The password hash is set by the service.
func (in CreateUser) ToEntity(now time.Time) entities.User {
	return entities.User{
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Changes stages the present fields. The password is handled by the service
// because it must be hashed first.
func (in UpdateUser) Changes(now time.Time) entities.Changeset {
	c := entities.NewChangeset(now)
	if in.Name != nil {
		c.Set("name", *in.Name)
	}
	if in.Email != nil {
		c.Set("email", *in.Email)
	}
	return c
}
