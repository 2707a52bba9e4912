package migrations

import (
	"time"

	"gorm.io/gorm"
)

type organization0002 struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	UserID    uint      `gorm:"index;not null"`
	User      user0001  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (organization0002) TableName() string { return "organizations" }

var createOrganizations = Migration{
	Version: "20250712104207",
	Name:    "create_organizations",
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&organization0002{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable("organizations")
	},
}
