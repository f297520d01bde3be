package relatorio

import "github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"

// QuantidadeRelevanteTamanho resolve quantas peças de um tamanho valem hoje
// para um item. Com o romaneio gerado só o separado conta — um tamanho sem
// entrada no mapa responde zero, mesmo que tenha sido pedido. Em pedido
// aberto uma separação parcial, quando existe, prevalece sobre o pedido.
func QuantidadeRelevanteTamanho(item pedido.Item, p pedido.Pedido, tamanho string) int {
	if p.Finalizado() {
		return item.Separado[tamanho]
	}
	if qtd, ok := item.Separado[tamanho]; ok {
		return qtd
	}
	return item.Quantidades[tamanho]
}

// QuantidadeRelevante resolve o total do item. Pedido aberto responde a
// projeção original (TotalPecas), ignorando separação parcial; pedido
// finalizado responde a soma do que foi separado, zero se nada foi.
//
// Os dois ramos não são simétricos com o cálculo por tamanho de propósito:
// projeção e realizado são estados de negócio distintos e os relatórios
// dependem dessa distinção.
func QuantidadeRelevante(item pedido.Item, p pedido.Pedido) int {
	if p.Finalizado() {
		total := 0
		for _, qtd := range item.Separado {
			total += qtd
		}
		return total
	}
	return item.TotalPecas
}
