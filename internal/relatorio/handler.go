package relatorio

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/auth"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/produto"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

// Handler busca as coleções e roda a agregação pura sobre o snapshot de cada
// requisição — nenhum estado vive entre chamadas.
type Handler struct {
	DB       *gorm.DB
	Pedidos  *pedido.Repository
	Produtos *produto.Repository
	Usuarios usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Pedidos:  pedido.NewRepository(db),
		Produtos: produto.NewRepository(db),
		Usuarios: usuario.NewRepository(),
	}
}

// buscarColecoes traz pedidos, produtos e representantes em paralelo. Uma
// busca que falha degrada para coleção vazia com log; a agregação é total
// sobre entrada vazia, então o relatório sai zerado em vez de dar erro.
func (h *Handler) buscarColecoes(comUsuarios bool) ([]pedido.Pedido, []produto.Produto, []usuario.Usuario) {
	var (
		pedidos  []pedido.Pedido
		catalogo []produto.Produto
		reps     []usuario.Usuario
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if pedidos, err = h.Pedidos.ListarTodos(); err != nil {
			log.Printf("relatorio: falha ao buscar pedidos: %v", err)
			pedidos = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if catalogo, err = h.Produtos.ListarTodos(); err != nil {
			log.Printf("relatorio: falha ao buscar produtos: %v", err)
			catalogo = nil
		}
		return nil
	})
	if comUsuarios {
		g.Go(func() error {
			var err error
			if reps, err = h.Usuarios.ListarRepresentantes(h.DB); err != nil {
				log.Printf("relatorio: falha ao buscar representantes: %v", err)
				reps = nil
			}
			return nil
		})
	}
	_ = g.Wait()

	return pedidos, catalogo, reps
}

// filtroDaQuery monta o Filtro a partir da query string. Parâmetro ausente ou
// ilegível significa "não filtrar por essa dimensão".
func filtroDaQuery(r *http.Request) Filtro {
	q := r.URL.Query()
	f := Filtro{
		Situacao: Todas,
		Busca:    q.Get("busca"),
	}
	if t, err := time.Parse("2006-01-02", q.Get("inicio")); err == nil {
		f.Inicio = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("fim")); err == nil {
		f.Fim = &t
	}
	if id, err := strconv.Atoi(q.Get("representante")); err == nil {
		f.RepresentanteID = uint(id)
	}
	if id, err := strconv.Atoi(q.Get("cliente")); err == nil {
		f.ClienteID = uint(id)
	}
	switch Situacao(q.Get("situacao")) {
	case Abertos:
		f.Situacao = Abertos
	case Finalizados:
		f.Situacao = Finalizados
	}
	return f
}

// GET /relatorios/producao — matriz de produção do recorte filtrado.
// Representante só enxerga os próprios pedidos.
func (h *Handler) MatrizProducao(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	f := filtroDaQuery(r)
	if !isAdmin {
		f.RepresentanteID = userID
	}

	pedidos, catalogo, _ := h.buscarColecoes(false)
	matriz := GerarMatriz(Filtrar(pedidos, f), catalogo)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matriz)
}

// GET /relatorios/resumo (rota de admin) — rollups por representante e
// cliente, curva de tamanhos e totais de faturamento e custo.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	f := filtroDaQuery(r)

	pedidos, catalogo, reps := h.buscarColecoes(true)
	resumo := GerarResumo(Filtrar(pedidos, f), catalogo, reps)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}

// POST /relatorios/consolidacao (rota de admin) — grade consolidada dos
// pedidos marcados na tela, sempre com as quantidades pedidas.
func (h *Handler) Consolidar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PedidoIDs []uint `json:"pedidoIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	pedidos, catalogo, _ := h.buscarColecoes(false)
	matriz := ConsolidarSelecao(pedidos, req.PedidoIDs, catalogo)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matriz)
}
