package migrations

import (
	"time"

	"gorm.io/gorm"
)

type user0001 struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null"`
	PasswordHash string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (user0001) TableName() string { return "users" }

var createUsers = Migration{
	Version: "20250712104206",
	Name:    "create_users",
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&user0001{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable("users")
	},
}
