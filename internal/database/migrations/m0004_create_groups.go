package migrations

import (
	"time"

	"gorm.io/gorm"
)

type group0004 struct {
	ID          uint          `gorm:"primaryKey"`
	Name        string        `gorm:"size:255;not null"`
	WorkspaceID uint          `gorm:"index;not null"`
	Workspace   workspace0003 `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time     `gorm:"not null"`
	UpdatedAt   time.Time     `gorm:"not null"`
}

func (group0004) TableName() string { return "groups" }

var createGroups = Migration{
	Version: "20250712104209",
	Name:    "create_groups",
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&group0004{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable("groups")
	},
}
