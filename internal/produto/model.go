package produto

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
)

// Produto é uma entrada do catálogo: uma referência numa cor, com a grade de
// tamanhos e o preço de custo base. Pedidos guardam cópia de referência, cor e
// grade, então apagar um produto não altera pedidos históricos.
type Produto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Referencia string          `gorm:"size:50;not null;uniqueIndex:idx_referencia_cor" json:"referencia"`
	Cor        string          `gorm:"size:50;not null;uniqueIndex:idx_referencia_cor" json:"cor"`
	Grade      grade.Tipo      `gorm:"size:10;not null;default:'NORMAL'" json:"grade"`
	PrecoBase  decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"precoBase"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
