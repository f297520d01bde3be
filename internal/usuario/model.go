package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um administrador ou representante comercial do sistema.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome    string `gorm:"size:255;not null" json:"nome"`
	Login   string `gorm:"size:100;uniqueIndex;not null" json:"login"`
	Senha   string `gorm:"size:255;not null" json:"-"`
	IsAdmin bool   `gorm:"not null;default:false" json:"isAdmin"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
