package pedido

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
)

// Situações possíveis de um pedido.
const (
	SituacaoAberto   = "ABERTO"
	SituacaoImpresso = "IMPRESSO"
)

// Tipos de desconto aplicáveis ao total do pedido.
const (
	DescontoPercentual = "PERCENTUAL"
	DescontoFixo       = "FIXO"
)

// Item é uma linha do pedido: uma referência/cor com a quantidade pedida por
// tamanho. Separado só existe depois que a produção separa fisicamente as
// peças; para um tamanho ausente do mapa nada foi separado.
type Item struct {
	Referencia    string          `json:"referencia"`
	Cor           string          `json:"cor"`
	Grade         grade.Tipo      `json:"grade"`
	Quantidades   map[string]int  `json:"quantidades"`
	TotalPecas    int             `json:"totalPecas"`
	Separado      map[string]int  `json:"separado,omitempty"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	ValorTotal    decimal.Decimal `json:"valorTotal"`
}

// Romaneio é o registro da separação final. A presença dele muda a semântica
// das quantidades do pedido: de pedidas para separadas.
type Romaneio struct {
	GeradoEm  time.Time `json:"geradoEm"`
	GeradoPor string    `json:"geradoPor,omitempty"`
}

// Pedido guarda um snapshot dos dados do cliente e do representante no momento
// da criação; edições posteriores desses cadastros não mudam o pedido.
type Pedido struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// Número sequencial exibido ao usuário, atribuído uma única vez na criação.
	Numero uint `gorm:"uniqueIndex;not null" json:"numero"`

	RepresentanteID   uint   `gorm:"not null;index" json:"representanteId"`
	RepresentanteNome string `gorm:"size:255" json:"representanteNome"`

	ClienteID     uint   `gorm:"index" json:"clienteId"`
	ClienteNome   string `gorm:"size:255" json:"clienteNome"`
	ClienteCidade string `gorm:"size:255" json:"clienteCidade"`
	ClienteEstado string `gorm:"size:2" json:"clienteEstado"`

	DataEntrega    time.Time `json:"dataEntrega"`
	FormaPagamento string    `gorm:"size:100" json:"formaPagamento"`
	Situacao       string    `gorm:"size:20;not null;default:'ABERTO';index" json:"situacao"`

	// Itens ficam serializados em JSON na linha do pedido; o repositório
	// decodifica ao ler e uma carga malformada vira lista vazia, nunca erro.
	ItensJSON string `gorm:"column:itens;type:text" json:"-"`
	Itens     []Item `gorm:"-" json:"itens"`

	TotalPecas    int             `gorm:"not null;default:0" json:"totalPecas"`
	Subtotal      decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"subtotal"`
	TipoDesconto  string          `gorm:"size:20" json:"tipoDesconto"`
	ValorDesconto decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"valorDesconto"`
	ValorFinal    decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"valorFinal"`

	// Nulos enquanto o pedido está em aberto.
	RomaneioJSON *string   `gorm:"column:romaneio;type:text" json:"-"`
	Romaneio     *Romaneio `gorm:"-" json:"romaneio,omitempty"`
}

// Finalizado informa se o romaneio do pedido já foi gerado.
func (p *Pedido) Finalizado() bool {
	return p.Romaneio != nil || p.RomaneioJSON != nil
}

// Normalizar valida os itens na entrada e recalcula todos os campos
// derivados. Os totais gravados são sempre recalculados aqui, nunca aceitos
// do cliente: TotalPecas de cada item é a soma das quantidades por tamanho e
// o TotalPecas do pedido é a soma dos itens.
func (p *Pedido) Normalizar() error {
	if len(p.Itens) == 0 {
		return fmt.Errorf("pedido sem itens")
	}

	p.TotalPecas = 0
	p.Subtotal = decimal.Zero
	for i := range p.Itens {
		item := &p.Itens[i]
		item.Referencia = strings.ToUpper(strings.TrimSpace(item.Referencia))
		item.Cor = strings.ToUpper(strings.TrimSpace(item.Cor))
		if item.Referencia == "" || item.Cor == "" {
			return fmt.Errorf("item %d: referência e cor são obrigatórias", i+1)
		}
		if err := grade.ValidarQuantidades(item.Grade, item.Quantidades); err != nil {
			return fmt.Errorf("item %d (%s/%s): %w", i+1, item.Referencia, item.Cor, err)
		}
		if item.PrecoUnitario.IsNegative() {
			return fmt.Errorf("item %d (%s/%s): preço unitário negativo", i+1, item.Referencia, item.Cor)
		}

		item.TotalPecas = 0
		for _, qtd := range item.Quantidades {
			item.TotalPecas += qtd
		}
		item.ValorTotal = item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.TotalPecas)))

		p.TotalPecas += item.TotalPecas
		p.Subtotal = p.Subtotal.Add(item.ValorTotal)
	}

	if p.ValorDesconto.IsNegative() {
		return fmt.Errorf("desconto negativo")
	}
	switch p.TipoDesconto {
	case "", DescontoFixo:
		p.ValorFinal = p.Subtotal.Sub(p.ValorDesconto)
	case DescontoPercentual:
		desconto := p.Subtotal.Mul(p.ValorDesconto).Div(decimal.NewFromInt(100))
		p.ValorFinal = p.Subtotal.Sub(desconto)
	default:
		return fmt.Errorf("tipo de desconto desconhecido: %q", p.TipoDesconto)
	}
	if p.ValorFinal.IsNegative() {
		return fmt.Errorf("desconto maior que o subtotal")
	}

	if p.Situacao == "" {
		p.Situacao = SituacaoAberto
	}
	return nil
}
