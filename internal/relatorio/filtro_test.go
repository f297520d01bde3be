package relatorio

import (
	"testing"
	"time"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
)

func dataDia(ano int, mes time.Month, diaMes int) time.Time {
	return time.Date(ano, mes, diaMes, 0, 0, 0, 0, time.UTC)
}

func pedidosParaFiltro() []pedido.Pedido {
	a := pedidoAberto(pedido.Item{Referencia: "X1", Cor: "AZUL", Grade: grade.Normal, Quantidades: map[string]int{"P": 1}, TotalPecas: 1})
	a.ID = 1
	a.RepresentanteID = 10
	a.ClienteID = 100
	a.CreatedAt = time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

	b := pedidoFinalizado(pedido.Item{Referencia: "Y2", Cor: "PRETO", Grade: grade.Normal, Quantidades: map[string]int{"M": 2}, TotalPecas: 2})
	b.ID = 2
	b.RepresentanteID = 20
	b.ClienteID = 200
	b.CreatedAt = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	return []pedido.Pedido{a, b}
}

func TestFiltroVazioAceitaTudo(t *testing.T) {
	pedidos := pedidosParaFiltro()
	if got := Filtrar(pedidos, Filtro{}); len(got) != 2 {
		t.Errorf("filtro vazio deveria aceitar os 2 pedidos, veio %d", len(got))
	}
}

func TestFiltroDatasInclusivas(t *testing.T) {
	pedidos := pedidosParaFiltro()

	// a data compara só o dia: um pedido criado às 14h30 do dia 5 entra num
	// recorte que termina no dia 5
	fim := dataDia(2026, time.March, 5)
	got := Filtrar(pedidos, Filtro{Fim: &fim})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("esperava só o pedido 1, veio %d pedidos", len(got))
	}

	inicio := dataDia(2026, time.March, 5)
	got = Filtrar(pedidos, Filtro{Inicio: &inicio})
	if len(got) != 2 {
		t.Errorf("início no dia 5 deveria aceitar os 2, veio %d", len(got))
	}

	inicio = dataDia(2026, time.March, 6)
	fim = dataDia(2026, time.March, 10)
	got = Filtrar(pedidos, Filtro{Inicio: &inicio, Fim: &fim})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("esperava só o pedido 2 no recorte 6–10")
	}
}

func TestFiltroRepresentanteECliente(t *testing.T) {
	pedidos := pedidosParaFiltro()

	got := Filtrar(pedidos, Filtro{RepresentanteID: 10})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("filtro por representante falhou")
	}

	got = Filtrar(pedidos, Filtro{ClienteID: 200})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("filtro por cliente falhou")
	}

	// dimensões compõem por E
	got = Filtrar(pedidos, Filtro{RepresentanteID: 10, ClienteID: 200})
	if len(got) != 0 {
		t.Errorf("combinação sem interseção deveria vir vazia, veio %d", len(got))
	}
}

func TestFiltroSituacao(t *testing.T) {
	pedidos := pedidosParaFiltro()

	got := Filtrar(pedidos, Filtro{Situacao: Abertos})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("filtro de abertos falhou")
	}

	got = Filtrar(pedidos, Filtro{Situacao: Finalizados})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("filtro de finalizados falhou")
	}

	got = Filtrar(pedidos, Filtro{Situacao: Todas})
	if len(got) != 2 {
		t.Errorf("situação TODAS deveria aceitar os 2, veio %d", len(got))
	}
}

func TestFiltroBusca(t *testing.T) {
	pedidos := pedidosParaFiltro()

	// substring sem caixa sobre referência e cor dos itens
	got := Filtrar(pedidos, Filtro{Busca: "azu"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("busca por cor falhou")
	}

	got = Filtrar(pedidos, Filtro{Busca: "y2"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("busca por referência falhou")
	}

	got = Filtrar(pedidos, Filtro{Busca: "INEXISTENTE"})
	if len(got) != 0 {
		t.Errorf("busca sem resultado deveria vir vazia")
	}
}
