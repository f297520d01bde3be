package grade

import "testing"

func TestTamanhosOrdem(t *testing.T) {
	normal := Tamanhos(Normal)
	esperado := []string{"P", "M", "G", "GG"}
	if len(normal) != len(esperado) {
		t.Fatalf("grade normal com %d tamanhos, esperava %d", len(normal), len(esperado))
	}
	for i, s := range esperado {
		if normal[i] != s {
			t.Errorf("posição %d: esperava %s, veio %s", i, s, normal[i])
		}
	}

	plus := Tamanhos(Plus)
	if len(plus) != 3 || plus[0] != "G1" || plus[2] != "G3" {
		t.Errorf("grade plus inesperada: %v", plus)
	}
}

func TestColunasCobremAsDuasGrades(t *testing.T) {
	for _, tipo := range []Tipo{Normal, Plus} {
		for _, tam := range Tamanhos(tipo) {
			achou := false
			for _, c := range Colunas {
				if c == tam {
					achou = true
					break
				}
			}
			if !achou {
				t.Errorf("tamanho %s da grade %s ausente em Colunas", tam, tipo)
			}
		}
	}
}

func TestValidarQuantidades(t *testing.T) {
	tests := []struct {
		nome        string
		tipo        Tipo
		quantidades map[string]int
		esperaErro  bool
	}{
		{"grade normal válida", Normal, map[string]int{"P": 5, "M": 3}, false},
		{"grade plus válida", Plus, map[string]int{"G1": 2}, false},
		{"tamanho de outra grade", Normal, map[string]int{"G1": 2}, true},
		{"tamanho desconhecido", Normal, map[string]int{"XG": 1}, true},
		{"quantidade zero", Normal, map[string]int{"P": 0}, true},
		{"quantidade negativa", Plus, map[string]int{"G2": -1}, true},
		{"mapa vazio", Normal, map[string]int{}, true},
		{"grade desconhecida", Tipo("GIGANTE"), map[string]int{"P": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			err := ValidarQuantidades(tt.tipo, tt.quantidades)
			if tt.esperaErro && err == nil {
				t.Errorf("esperava erro, veio nil")
			}
			if !tt.esperaErro && err != nil {
				t.Errorf("erro inesperado: %v", err)
			}
		})
	}
}
