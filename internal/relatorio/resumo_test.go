package relatorio

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

func TestGerarResumoVazio(t *testing.T) {
	resumo := GerarResumo(nil, nil, nil)
	if resumo.Pedidos != 0 || resumo.Pecas != 0 {
		t.Errorf("resumo de entrada vazia deveria vir zerado")
	}
	if !resumo.Faturamento.IsZero() || !resumo.Custo.IsZero() {
		t.Errorf("valores de entrada vazia deveriam vir zerados")
	}
	if len(resumo.Representantes) != 0 || len(resumo.Clientes) != 0 {
		t.Errorf("rankings de entrada vazia deveriam vir vazios")
	}
}

func TestGerarResumoRollups(t *testing.T) {
	a := pedidoAberto(pedido.Item{Referencia: "X1", Cor: "AZUL", Grade: grade.Normal, Quantidades: map[string]int{"P": 5, "M": 3}, TotalPecas: 8})
	a.RepresentanteID = 10
	a.RepresentanteNome = "Ana"
	a.ClienteID = 100
	a.ClienteNome = "Loja Centro"
	a.ValorFinal = decimal.NewFromInt(400)

	itemB := pedido.Item{Referencia: "X1", Cor: "AZUL", Grade: grade.Normal, Quantidades: map[string]int{"P": 5, "M": 3}, TotalPecas: 8, Separado: map[string]int{"P": 4}}
	b := pedidoFinalizado(itemB)
	b.RepresentanteID = 10
	b.RepresentanteNome = "Ana"
	b.ClienteID = 200
	b.ClienteNome = "Loja Norte"
	b.ValorFinal = decimal.NewFromInt(150)

	representantes := []usuario.Usuario{
		{ID: 10, Nome: "Ana"},
		{ID: 20, Nome: "Bruno"},
	}

	resumo := GerarResumo([]pedido.Pedido{a, b}, exemploCatalogo(), representantes)

	if resumo.Pedidos != 2 {
		t.Errorf("pedidos: esperava 2, veio %d", resumo.Pedidos)
	}
	// aberto conta a projeção (8), finalizado só o separado (4)
	if resumo.Pecas != 12 {
		t.Errorf("peças: esperava 12, veio %d", resumo.Pecas)
	}
	if esperado := decimal.NewFromInt(550); !resumo.Faturamento.Equal(esperado) {
		t.Errorf("faturamento: esperava %s, veio %s", esperado, resumo.Faturamento)
	}
	if esperado := decimal.NewFromInt(120); !resumo.Custo.Equal(esperado) {
		t.Errorf("custo: esperava %s, veio %s", esperado, resumo.Custo)
	}

	// a curva de tamanhos acompanha os totais por coluna da matriz
	if resumo.CurvaTamanhos["P"] != 9 || resumo.CurvaTamanhos["M"] != 3 {
		t.Errorf("curva inesperada: %v", resumo.CurvaTamanhos)
	}

	if len(resumo.Representantes) != 2 {
		t.Fatalf("esperava 2 representantes, veio %d", len(resumo.Representantes))
	}
	ana := resumo.Representantes[0]
	if ana.ID != 10 || ana.Pedidos != 2 || ana.Pecas != 12 {
		t.Errorf("rollup da Ana inesperado: %+v", ana)
	}
	// representante sem pedido no período aparece zerado
	bruno := resumo.Representantes[1]
	if bruno.ID != 20 || bruno.Pedidos != 0 || !bruno.Valor.IsZero() {
		t.Errorf("rollup do Bruno inesperado: %+v", bruno)
	}

	if len(resumo.Clientes) != 2 {
		t.Fatalf("esperava 2 clientes, veio %d", len(resumo.Clientes))
	}
	// ranking por faturamento, maiores primeiro
	if resumo.Clientes[0].ID != 100 || resumo.Clientes[1].ID != 200 {
		t.Errorf("ordem do ranking de clientes inesperada: %+v", resumo.Clientes)
	}
}

func TestGerarResumoRepresentanteRemovido(t *testing.T) {
	a := pedidoAberto(pedido.Item{Referencia: "X1", Cor: "AZUL", Grade: grade.Normal, Quantidades: map[string]int{"P": 1}, TotalPecas: 1})
	a.RepresentanteID = 99
	a.RepresentanteNome = "Antigo"
	a.ClienteID = 100
	a.ClienteNome = "Loja"
	a.ValorFinal = decimal.NewFromInt(10)

	// o cadastro do representante 99 não existe mais; o nome vem do snapshot
	resumo := GerarResumo([]pedido.Pedido{a}, nil, nil)
	if len(resumo.Representantes) != 1 {
		t.Fatalf("esperava 1 representante, veio %d", len(resumo.Representantes))
	}
	if resumo.Representantes[0].Nome != "Antigo" || resumo.Representantes[0].Pedidos != 1 {
		t.Errorf("rollup do removido inesperado: %+v", resumo.Representantes[0])
	}
}
