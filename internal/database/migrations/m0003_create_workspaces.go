package migrations

import (
	"time"

	"gorm.io/gorm"
)

type workspace0003 struct {
	ID             uint             `gorm:"primaryKey"`
	Name           string           `gorm:"size:255;not null"`
	OrganizationID uint             `gorm:"index;not null"`
	Organization   organization0002 `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
}

func (workspace0003) TableName() string { return "workspaces" }

var createWorkspaces = Migration{
	Version: "20250712104208",
	Name:    "create_workspaces",
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&workspace0003{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable("workspaces")
	},
}
