package migrations

import (
	"time"

	"gorm.io/gorm"
)

type bookmark0005 struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:512;not null"`
	URL        string    `gorm:"column:url;size:2048;not null"`
	Tags       string    `gorm:"size:1024;not null;default:''"`
	IsFavorite bool      `gorm:"not null;default:false"`
	GroupID    *uint     `gorm:"index"`
	Group      group0004 `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (bookmark0005) TableName() string { return "bookmarks" }

var createBookmarks = Migration{
	Version: "20250712104210",
	Name:    "create_bookmarks",
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&bookmark0005{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable("bookmarks")
	},
}
