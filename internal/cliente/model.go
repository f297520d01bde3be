package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente pertence à carteira de um representante.
type Cliente struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	RepresentanteID uint   `gorm:"not null;index" json:"representanteId"`
	Nome            string `gorm:"size:255;not null" json:"nome"`
	Cidade          string `gorm:"size:255" json:"cidade"`
	Bairro          string `gorm:"size:255" json:"bairro"`
	Estado          string `gorm:"size:2" json:"estado"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
