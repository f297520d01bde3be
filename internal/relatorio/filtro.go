package relatorio

import (
	"strings"
	"time"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
)

// Situacao restringe o filtro ao estado de finalização do pedido.
type Situacao string

const (
	Todas       Situacao = "TODAS"
	Abertos     Situacao = "ABERTOS"
	Finalizados Situacao = "FINALIZADOS"
)

// Filtro seleciona o subconjunto de pedidos que alimenta os relatórios. Campo
// zerado significa "não filtrar por essa dimensão"; os presentes compõem por E.
type Filtro struct {
	Inicio          *time.Time
	Fim             *time.Time
	RepresentanteID uint
	ClienteID       uint
	Situacao        Situacao
	Busca           string
}

// Aceita decide se o pedido entra no recorte. As datas comparam só o dia,
// inclusivo nas duas pontas; a busca é substring sem caixa sobre referência e
// cor dos itens.
func (f Filtro) Aceita(p pedido.Pedido) bool {
	if f.Inicio != nil && dia(p.CreatedAt).Before(dia(*f.Inicio)) {
		return false
	}
	if f.Fim != nil && dia(p.CreatedAt).After(dia(*f.Fim)) {
		return false
	}
	if f.RepresentanteID != 0 && p.RepresentanteID != f.RepresentanteID {
		return false
	}
	if f.ClienteID != 0 && p.ClienteID != f.ClienteID {
		return false
	}
	switch f.Situacao {
	case Abertos:
		if p.Finalizado() {
			return false
		}
	case Finalizados:
		if !p.Finalizado() {
			return false
		}
	}
	if f.Busca != "" {
		termo := strings.ToLower(f.Busca)
		achou := false
		for _, item := range p.Itens {
			if strings.Contains(strings.ToLower(item.Referencia), termo) ||
				strings.Contains(strings.ToLower(item.Cor), termo) {
				achou = true
				break
			}
		}
		if !achou {
			return false
		}
	}
	return true
}

// Filtrar aplica o filtro preservando a ordem de entrada.
func Filtrar(pedidos []pedido.Pedido, f Filtro) []pedido.Pedido {
	resultado := make([]pedido.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if f.Aceita(p) {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

func dia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
