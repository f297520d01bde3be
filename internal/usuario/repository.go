package usuario

import "gorm.io/gorm"

type Repository interface {
	BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	ListarRepresentantes(db *gorm.DB) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome").Find(&usuarios).Error
	return usuarios, err
}

// ListarRepresentantes retorna só os usuários não-admin, donos de carteira.
func (r *repositoryImpl) ListarRepresentantes(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("is_admin = ?", false).Order("nome").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error {
	var existente Usuario
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Login = novosDados.Login
	if novosDados.Senha != "" {
		existente.Senha = novosDados.Senha
	}
	existente.IsAdmin = novosDados.IsAdmin

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
