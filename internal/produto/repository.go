package produto

import "gorm.io/gorm"

// Repository encapsula operações de banco para Produto
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Produto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarTodos() ([]Produto, error) {
	var produtos []Produto
	err := r.DB.Order("referencia, cor").Find(&produtos).Error
	return produtos, err
}

func (r *Repository) BuscarPorID(id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) BuscarPorReferenciaECor(referencia, cor string) (*Produto, error) {
	var p Produto
	if err := r.DB.Where("referencia = ? AND cor = ?", referencia, cor).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Deletar(p *Produto) error {
	return r.DB.Delete(p).Error
}
