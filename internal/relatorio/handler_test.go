package relatorio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/auth"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/produto"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := usuario.Migrate(db); err != nil {
		t.Fatalf("migrate usuarios: %v", err)
	}
	if err := produto.Migrate(db); err != nil {
		t.Fatalf("migrate produtos: %v", err)
	}
	if err := pedido.Migrate(db); err != nil {
		t.Fatalf("migrate pedidos: %v", err)
	}
	return db
}

func seedPedido(t *testing.T, db *gorm.DB, repID uint) *pedido.Pedido {
	t.Helper()
	p := &pedido.Pedido{
		RepresentanteID: repID,
		ClienteID:       100,
		ClienteNome:     "Loja",
		Itens: []pedido.Item{{
			Referencia:    "X1",
			Cor:           "AZUL",
			Grade:         grade.Normal,
			Quantidades:   map[string]int{"P": 5, "M": 3},
			PrecoUnitario: decimal.NewFromInt(20),
		}},
	}
	if err := p.Normalizar(); err != nil {
		t.Fatalf("normalizar: %v", err)
	}
	if err := pedido.NewRepository(db).Criar(p); err != nil {
		t.Fatalf("criar pedido: %v", err)
	}
	return p
}

func comAuth(req *http.Request, userID uint, isAdmin bool) *http.Request {
	ctx := context.WithValue(req.Context(), auth.CtxUsuarioID, userID)
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, isAdmin)
	return req.WithContext(ctx)
}

func TestMatrizProducaoEndpoint(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	seedPedido(t, db, 1)
	seedPedido(t, db, 2)
	if err := db.Create(&produto.Produto{Referencia: "X1", Cor: "AZUL", Grade: grade.Normal, PrecoBase: decimal.NewFromInt(10)}).Error; err != nil {
		t.Fatalf("seed produto: %v", err)
	}

	// admin enxerga os dois pedidos
	req := comAuth(httptest.NewRequest(http.MethodGet, "/relatorios/producao", nil), 99, true)
	w := httptest.NewRecorder()
	h.MatrizProducao(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var m Matriz
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.TotalPecas != 16 {
		t.Errorf("admin: esperava 16 peças, veio %d", m.TotalPecas)
	}
	if esperado := decimal.NewFromInt(160); !m.CustoTotal.Equal(esperado) {
		t.Errorf("custo: esperava %s, veio %s", esperado, m.CustoTotal)
	}

	// representante só enxerga o próprio recorte, mesmo pedindo outro filtro
	req = comAuth(httptest.NewRequest(http.MethodGet, "/relatorios/producao?representante=2", nil), 1, false)
	w = httptest.NewRecorder()
	h.MatrizProducao(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.TotalPecas != 8 {
		t.Errorf("representante: esperava 8 peças, veio %d", m.TotalPecas)
	}
}

func TestConsolidarEndpoint(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	p1 := seedPedido(t, db, 1)
	seedPedido(t, db, 1)

	body := `{"pedidoIds":[` + strconv.FormatUint(uint64(p1.ID), 10) + `]}`
	req := httptest.NewRequest(http.MethodPost, "/relatorios/consolidacao", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Consolidar(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var m Matriz
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.TotalPecas != 8 {
		t.Errorf("esperava só o pedido selecionado (8 peças), veio %d", m.TotalPecas)
	}
}

func TestResumoEndpointVazio(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/relatorios/resumo", nil)
	w := httptest.NewRecorder()
	h.Resumo(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resumo Resumo
	if err := json.Unmarshal(w.Body.Bytes(), &resumo); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resumo.Pedidos != 0 || resumo.Pecas != 0 {
		t.Errorf("banco vazio deveria render resumo zerado: %+v", resumo)
	}
}
