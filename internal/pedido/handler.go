package pedido

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/auth"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/cliente"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

// Handler encapsula DB e repositories
type Handler struct {
	DB       *gorm.DB
	Repo     *Repository
	Clientes *cliente.Repository
	Usuarios usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Repo:     NewRepository(db),
		Clientes: cliente.NewRepository(db),
		Usuarios: usuario.NewRepository(),
	}
}

type criarPedidoRequest struct {
	ClienteID      uint            `json:"clienteId"`
	DataEntrega    time.Time       `json:"dataEntrega"`
	FormaPagamento string          `json:"formaPagamento"`
	TipoDesconto   string          `json:"tipoDesconto"`
	ValorDesconto  decimal.Decimal `json:"valorDesconto"`
	Itens          []Item          `json:"itens"`
}

// POST /pedidos — cria o pedido com snapshot do cliente e do representante.
// O número sequencial sai da sequência no banco, nunca do payload.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	var req criarPedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	cli, err := h.Clientes.BuscarPorID(req.ClienteID)
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusBadRequest)
		return
	}
	if !isAdmin && cli.RepresentanteID != userID {
		http.Error(w, "cliente de outra carteira", http.StatusForbidden)
		return
	}

	repNome := ""
	if rep, err := h.Usuarios.BuscarPorID(h.DB, cli.RepresentanteID); err == nil {
		repNome = rep.Nome
	}

	p := Pedido{
		RepresentanteID:   cli.RepresentanteID,
		RepresentanteNome: repNome,
		ClienteID:         cli.ID,
		ClienteNome:       cli.Nome,
		ClienteCidade:     cli.Cidade,
		ClienteEstado:     cli.Estado,
		DataEntrega:       req.DataEntrega,
		FormaPagamento:    req.FormaPagamento,
		TipoDesconto:      req.TipoDesconto,
		ValorDesconto:     req.ValorDesconto,
		Itens:             req.Itens,
	}

	if err := p.Normalizar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "erro ao salvar pedido", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /pedidos — admin vê todos, representante só os próprios; ?inicio= e
// ?fim= (AAAA-MM-DD) recortam por data de criação, inclusivo nas duas pontas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	var pedidos []Pedido
	var err error
	if isAdmin {
		pedidos, err = h.Repo.ListarTodos()
	} else {
		pedidos, err = h.Repo.ListarPorRepresentante(userID)
	}
	if err != nil {
		http.Error(w, "erro ao listar pedidos", http.StatusInternalServerError)
		return
	}

	inicio, errInicio := time.Parse("2006-01-02", r.URL.Query().Get("inicio"))
	fim, errFim := time.Parse("2006-01-02", r.URL.Query().Get("fim"))
	if errInicio == nil || errFim == nil {
		filtrados := make([]Pedido, 0, len(pedidos))
		for _, p := range pedidos {
			dia := time.Date(p.CreatedAt.Year(), p.CreatedAt.Month(), p.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
			if errInicio == nil && dia.Before(inicio) {
				continue
			}
			if errFim == nil && dia.After(fim) {
				continue
			}
			filtrados = append(filtrados, p)
		}
		pedidos = filtrados
	}

	json.NewEncoder(w).Encode(pedidos)
}

// GET /pedidos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "pedido não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && p.RepresentanteID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /pedidos/{id}/situacao (rota de admin)
func (h *Handler) AtualizarSituacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		Situacao string `json:"situacao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Situacao != SituacaoAberto && req.Situacao != SituacaoImpresso {
		http.Error(w, "situação inválida", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		http.Error(w, "pedido não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.AtualizarSituacao(uint(id), req.Situacao); err != nil {
		http.Error(w, "erro ao atualizar situação", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PUT /pedidos/{id}/romaneio (rota de admin) — grava a separação final e
// finaliza o pedido; a partir daí os relatórios contam só o separado
func (h *Handler) GerarRomaneio(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		Separado []map[string]int `json:"separado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	geradoPor := ""
	if u, err := h.Usuarios.BuscarPorID(h.DB, userID); err == nil {
		geradoPor = u.Nome
	}

	p, err := h.Repo.GerarRomaneio(uint(id), req.Separado, geradoPor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(p)
}
