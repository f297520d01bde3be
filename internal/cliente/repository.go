package cliente

import "gorm.io/gorm"

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodos() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("nome").Find(&clientes).Error
	return clientes, err
}

// ListarPorRepresentante retorna a carteira de um representante.
func (r *Repository) ListarPorRepresentante(repID uint) ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Where("representante_id = ?", repID).Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(c *Cliente) error {
	return r.DB.Delete(c).Error
}
