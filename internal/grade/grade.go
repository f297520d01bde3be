package grade

import "fmt"

// Tipo identifica a grade de tamanhos de um produto.
type Tipo string

const (
	Normal Tipo = "NORMAL"
	Plus   Tipo = "PLUS"
)

var (
	tamanhosNormal = []string{"P", "M", "G", "GG"}
	tamanhosPlus   = []string{"G1", "G2", "G3"}
)

// Colunas é o conjunto fixo de colunas de tamanho das duas grades, na ordem
// canônica usada pela matriz de produção.
var Colunas = []string{"P", "M", "G", "GG", "G1", "G2", "G3"}

// Valida informa se o tipo de grade é conhecido.
func Valida(t Tipo) bool {
	return t == Normal || t == Plus
}

// Tamanhos retorna os tamanhos da grade, na ordem.
func Tamanhos(t Tipo) []string {
	switch t {
	case Plus:
		return tamanhosPlus
	default:
		return tamanhosNormal
	}
}

// TamanhoValido informa se o tamanho pertence à grade.
func TamanhoValido(t Tipo, tamanho string) bool {
	for _, s := range Tamanhos(t) {
		if s == tamanho {
			return true
		}
	}
	return false
}

// ValidarQuantidades valida o mapa tamanho→quantidade de um item na entrada.
// Só entram tamanhos da grade do item e só com quantidade positiva; dados
// fora disso são rejeitados aqui, antes de chegar à agregação.
func ValidarQuantidades(t Tipo, quantidades map[string]int) error {
	if !Valida(t) {
		return fmt.Errorf("grade desconhecida: %q", t)
	}
	if len(quantidades) == 0 {
		return fmt.Errorf("item sem quantidades")
	}
	for tamanho, qtd := range quantidades {
		if !TamanhoValido(t, tamanho) {
			return fmt.Errorf("tamanho %q não pertence à grade %s", tamanho, t)
		}
		if qtd <= 0 {
			return fmt.Errorf("quantidade inválida para o tamanho %s: %d", tamanho, qtd)
		}
	}
	return nil
}
