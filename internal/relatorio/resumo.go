package relatorio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/produto"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

// Desempenho é o rollup de pedidos, peças e faturamento de um representante
// ou de um cliente.
type Desempenho struct {
	ID      uint            `json:"id"`
	Nome    string          `json:"nome"`
	Pedidos int             `json:"pedidos"`
	Pecas   int             `json:"pecas"`
	Valor   decimal.Decimal `json:"valor"`
}

// Resumo reúne os números do painel: totais gerais, ranking por representante
// e por cliente e a curva de distribuição por tamanho.
type Resumo struct {
	Pedidos        int             `json:"pedidos"`
	Pecas          int             `json:"pecas"`
	Faturamento    decimal.Decimal `json:"faturamento"`
	Custo          decimal.Decimal `json:"custo"`
	Representantes []Desempenho    `json:"representantes"`
	Clientes       []Desempenho    `json:"clientes"`
	CurvaTamanhos  map[string]int  `json:"curvaTamanhos"`
}

// GerarResumo calcula os rollups sobre o recorte já filtrado. Representantes
// cadastrados aparecem mesmo com zero pedidos no período; o total de peças de
// cada pedido usa a quantidade relevante por item (separado quando o romaneio
// existe, projeção original em aberto).
func GerarResumo(pedidos []pedido.Pedido, catalogo []produto.Produto, representantes []usuario.Usuario) Resumo {
	resumo := Resumo{
		Faturamento: decimal.Zero,
		Custo:       decimal.Zero,
	}

	porRep := make(map[uint]*Desempenho)
	var ordemRep []uint
	for _, rep := range representantes {
		porRep[rep.ID] = &Desempenho{ID: rep.ID, Nome: rep.Nome, Valor: decimal.Zero}
		ordemRep = append(ordemRep, rep.ID)
	}
	porCliente := make(map[uint]*Desempenho)
	var ordemCliente []uint

	for _, p := range pedidos {
		pecas := 0
		for _, item := range p.Itens {
			pecas += QuantidadeRelevante(item, p)
		}

		resumo.Pedidos++
		resumo.Pecas += pecas
		resumo.Faturamento = resumo.Faturamento.Add(p.ValorFinal)

		rep, ok := porRep[p.RepresentanteID]
		if !ok {
			// pedidos de representantes já removidos entram pelo nome do snapshot
			rep = &Desempenho{ID: p.RepresentanteID, Nome: p.RepresentanteNome, Valor: decimal.Zero}
			porRep[p.RepresentanteID] = rep
			ordemRep = append(ordemRep, p.RepresentanteID)
		}
		rep.Pedidos++
		rep.Pecas += pecas
		rep.Valor = rep.Valor.Add(p.ValorFinal)

		cli, ok := porCliente[p.ClienteID]
		if !ok {
			cli = &Desempenho{ID: p.ClienteID, Nome: p.ClienteNome, Valor: decimal.Zero}
			porCliente[p.ClienteID] = cli
			ordemCliente = append(ordemCliente, p.ClienteID)
		}
		cli.Pedidos++
		cli.Pecas += pecas
		cli.Valor = cli.Valor.Add(p.ValorFinal)
	}

	matriz := GerarMatriz(pedidos, catalogo)
	resumo.Custo = matriz.CustoTotal
	resumo.CurvaTamanhos = matriz.TotaisColuna

	resumo.Representantes = ordenar(porRep, ordemRep)
	resumo.Clientes = ordenar(porCliente, ordemCliente)
	return resumo
}

// ordenar monta o ranking por faturamento, maiores primeiro; empates por nome.
func ordenar(porID map[uint]*Desempenho, ordem []uint) []Desempenho {
	lista := make([]Desempenho, 0, len(ordem))
	for _, id := range ordem {
		lista = append(lista, *porID[id])
	}
	sort.SliceStable(lista, func(i, j int) bool {
		cmp := lista[i].Valor.Cmp(lista[j].Valor)
		if cmp != 0 {
			return cmp > 0
		}
		return lista[i].Nome < lista[j].Nome
	})
	return lista
}
