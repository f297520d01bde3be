package pedido

import (
	"encoding/json"
	"fmt"
)

// Os itens e o romaneio vivem serializados em JSON dentro da linha do pedido.
// A decodificação acontece só na borda do repositório, para que uma carga
// malformada degrade para lista vazia em vez de derrubar a consulta inteira.

func codificarItens(itens []Item) (string, error) {
	raw, err := json.Marshal(itens)
	if err != nil {
		return "", fmt.Errorf("codificar itens: %w", err)
	}
	return string(raw), nil
}

func decodificarItens(raw string) ([]Item, error) {
	var itens []Item
	if err := json.Unmarshal([]byte(raw), &itens); err != nil {
		return nil, fmt.Errorf("decodificar itens: %w", err)
	}
	return itens, nil
}

func codificarRomaneio(r *Romaneio) (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("codificar romaneio: %w", err)
	}
	return string(raw), nil
}
