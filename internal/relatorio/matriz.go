package relatorio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/produto"
)

// Linha é uma referência/cor da matriz com o total por tamanho. Tamanhos sem
// peça ficam fora do mapa.
type Linha struct {
	Referencia  string          `json:"referencia"`
	Cor         string          `json:"cor"`
	Quantidades map[string]int  `json:"quantidades"`
	Total       int             `json:"total"`
	Custo       decimal.Decimal `json:"custo"`
}

// Matriz é o pivô referência × cor × tamanho que orienta o corte, com os
// totais por coluna no rodapé e os totais gerais de peças e custo.
type Matriz struct {
	Colunas      []string        `json:"colunas"`
	Linhas       []Linha         `json:"linhas"`
	TotaisColuna map[string]int  `json:"totaisColuna"`
	TotalPecas   int             `json:"totalPecas"`
	CustoTotal   decimal.Decimal `json:"custoTotal"`
}

type quantidadeFn func(item pedido.Item, p pedido.Pedido, tamanho string) int

// GerarMatriz consolida os pedidos na matriz de produção usando as
// quantidades relevantes: separadas quando o romaneio existe, pedidas caso
// contrário. Recalcula tudo do zero a cada chamada; a entrada é pequena o
// bastante para não valer agregação incremental.
func GerarMatriz(pedidos []pedido.Pedido, catalogo []produto.Produto) Matriz {
	return gerar(pedidos, catalogo, QuantidadeRelevanteTamanho)
}

// ConsolidarSelecao monta a grade consolidada de um conjunto de pedidos
// escolhido a dedo na tela de pedidos. É a visão de planejamento, anterior a
// qualquer separação: sempre as quantidades originalmente pedidas, com ou sem
// romaneio.
func ConsolidarSelecao(pedidos []pedido.Pedido, ids []uint, catalogo []produto.Produto) Matriz {
	marcados := make(map[uint]bool, len(ids))
	for _, id := range ids {
		marcados[id] = true
	}
	selecionados := make([]pedido.Pedido, 0, len(ids))
	for _, p := range pedidos {
		if marcados[p.ID] {
			selecionados = append(selecionados, p)
		}
	}
	return gerar(selecionados, catalogo, func(item pedido.Item, _ pedido.Pedido, tamanho string) int {
		return item.Quantidades[tamanho]
	})
}

func gerar(pedidos []pedido.Pedido, catalogo []produto.Produto, quantidade quantidadeFn) Matriz {
	precos := make(map[string]decimal.Decimal, len(catalogo))
	for _, prod := range catalogo {
		precos[chave(prod.Referencia, prod.Cor)] = prod.PrecoBase
	}

	m := Matriz{
		Colunas:      grade.Colunas,
		Linhas:       []Linha{},
		TotaisColuna: make(map[string]int),
		CustoTotal:   decimal.Zero,
	}

	indice := make(map[string]int)
	for _, p := range pedidos {
		for _, item := range p.Itens {
			k := chave(item.Referencia, item.Cor)
			pos, ok := indice[k]
			if !ok {
				pos = len(m.Linhas)
				indice[k] = pos
				m.Linhas = append(m.Linhas, Linha{
					Referencia:  item.Referencia,
					Cor:         item.Cor,
					Quantidades: make(map[string]int),
					Custo:       decimal.Zero,
				})
			}
			for _, tamanho := range grade.Colunas {
				qtd := quantidade(item, p, tamanho)
				if qtd == 0 {
					continue
				}
				m.Linhas[pos].Quantidades[tamanho] += qtd
				m.Linhas[pos].Total += qtd
				m.TotaisColuna[tamanho] += qtd
				m.TotalPecas += qtd
			}
		}
	}

	// ordena por referência; empates ficam na ordem de chegada
	sort.SliceStable(m.Linhas, func(i, j int) bool {
		return m.Linhas[i].Referencia < m.Linhas[j].Referencia
	})

	for i := range m.Linhas {
		if preco, ok := precos[chave(m.Linhas[i].Referencia, m.Linhas[i].Cor)]; ok {
			m.Linhas[i].Custo = preco.Mul(decimal.NewFromInt(int64(m.Linhas[i].Total)))
		}
		m.CustoTotal = m.CustoTotal.Add(m.Linhas[i].Custo)
	}

	return m
}

// chave de agrupamento da matriz; "|" não ocorre em referência nem cor
func chave(referencia, cor string) string {
	return referencia + "|" + cor
}
