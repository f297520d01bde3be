package pedido

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
)

// Repository encapsula operações de banco para Pedido
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// sequenciaPedidos é a linha única de onde sai o próximo número de pedido.
type sequenciaPedidos struct {
	ID    uint `gorm:"primaryKey"`
	Valor uint `gorm:"not null;default:0"`
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Pedido{}, &sequenciaPedidos{}); err != nil {
		return err
	}
	// garante a linha única da sequência
	var seq sequenciaPedidos
	return db.Where(sequenciaPedidos{ID: 1}).FirstOrCreate(&seq).Error
}

// Criar grava o pedido atribuindo o número sequencial na mesma transação. O
// incremento da sequência segura o lock da linha até o commit, então inserts
// concorrentes não repetem nem pulam número.
func (r *Repository) Criar(p *Pedido) error {
	raw, err := codificarItens(p.Itens)
	if err != nil {
		return err
	}
	p.ItensJSON = raw

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sequenciaPedidos{}).Where("id = ?", 1).
			Update("valor", gorm.Expr("valor + 1")).Error; err != nil {
			return err
		}
		var seq sequenciaPedidos
		if err := tx.First(&seq, 1).Error; err != nil {
			return err
		}

		p.Numero = seq.Valor
		return tx.Create(p).Error
	})
}

func (r *Repository) ListarTodos() ([]Pedido, error) {
	var pedidos []Pedido
	if err := r.DB.Order("numero desc").Find(&pedidos).Error; err != nil {
		return nil, err
	}
	for i := range pedidos {
		decodificar(&pedidos[i])
	}
	return pedidos, nil
}

func (r *Repository) ListarPorRepresentante(repID uint) ([]Pedido, error) {
	var pedidos []Pedido
	if err := r.DB.Where("representante_id = ?", repID).Order("numero desc").Find(&pedidos).Error; err != nil {
		return nil, err
	}
	for i := range pedidos {
		decodificar(&pedidos[i])
	}
	return pedidos, nil
}

func (r *Repository) BuscarPorID(id uint) (*Pedido, error) {
	var p Pedido
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	decodificar(&p)
	return &p, nil
}

// AtualizarSituacao troca só a situação do pedido (ABERTO → IMPRESSO).
func (r *Repository) AtualizarSituacao(id uint, situacao string) error {
	return r.DB.Model(&Pedido{}).Where("id = ?", id).Update("situacao", situacao).Error
}

// GerarRomaneio grava a separação final do pedido: o mapa separado por item
// (na ordem dos itens) e o registro do romaneio. Um item com mapa vazio fica
// sem Separado — ainda não separado, conta zero nos relatórios.
func (r *Repository) GerarRomaneio(id uint, separadoPorItem []map[string]int, geradoPor string) (*Pedido, error) {
	p, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if p.Finalizado() {
		return nil, fmt.Errorf("pedido %d já finalizado", p.Numero)
	}
	if len(separadoPorItem) != len(p.Itens) {
		return nil, fmt.Errorf("separação com %d itens, pedido tem %d", len(separadoPorItem), len(p.Itens))
	}

	for i := range p.Itens {
		item := &p.Itens[i]
		limpo := make(map[string]int)
		for tamanho, qtd := range separadoPorItem[i] {
			if qtd < 0 {
				return nil, fmt.Errorf("item %d: quantidade separada negativa para %s", i+1, tamanho)
			}
			if !grade.TamanhoValido(item.Grade, tamanho) {
				return nil, fmt.Errorf("item %d: tamanho %q não pertence à grade %s", i+1, tamanho, item.Grade)
			}
			if qtd > 0 {
				limpo[tamanho] = qtd
			}
		}
		if len(limpo) > 0 {
			item.Separado = limpo
		}
	}

	rawItens, err := codificarItens(p.Itens)
	if err != nil {
		return nil, err
	}
	rom := &Romaneio{GeradoEm: time.Now(), GeradoPor: geradoPor}
	rawRom, err := codificarRomaneio(rom)
	if err != nil {
		return nil, err
	}

	p.ItensJSON = rawItens
	p.RomaneioJSON = &rawRom
	p.Romaneio = rom
	if err := r.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// decodificar materializa itens e romaneio a partir das colunas serializadas.
func decodificar(p *Pedido) {
	if p.ItensJSON != "" {
		itens, err := decodificarItens(p.ItensJSON)
		if err != nil {
			log.Printf("pedido %d: itens armazenados malformados, tratando como vazio: %v", p.Numero, err)
			itens = nil
		}
		p.Itens = itens
	}
	if p.RomaneioJSON != nil {
		var rom Romaneio
		if err := json.Unmarshal([]byte(*p.RomaneioJSON), &rom); err != nil {
			// o registro pode estar ilegível, mas a presença dele ainda
			// marca o pedido como finalizado
			log.Printf("pedido %d: romaneio armazenado malformado: %v", p.Numero, err)
		}
		p.Romaneio = &rom
	}
}
