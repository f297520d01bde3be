package produto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/grade"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarProdutoRequest struct {
	Referencia string          `json:"referencia"`
	Cor        string          `json:"cor"`
	Grade      grade.Tipo      `json:"grade"`
	PrecoBase  decimal.Decimal `json:"precoBase"`
}

// POST /produtos (rota de admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// referência e cor entram sempre em caixa alta; a agregação compara como gravado
	req.Referencia = strings.ToUpper(strings.TrimSpace(req.Referencia))
	req.Cor = strings.ToUpper(strings.TrimSpace(req.Cor))
	if req.Referencia == "" || req.Cor == "" {
		http.Error(w, "referência e cor são obrigatórias", http.StatusBadRequest)
		return
	}
	if !grade.Valida(req.Grade) {
		http.Error(w, "grade inválida", http.StatusBadRequest)
		return
	}
	if req.PrecoBase.IsNegative() {
		http.Error(w, "preço base não pode ser negativo", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.BuscarPorReferenciaECor(req.Referencia, req.Cor); err == nil {
		http.Error(w, "referência e cor já cadastradas", http.StatusConflict)
		return
	}

	p := Produto{
		Referencia: req.Referencia,
		Cor:        req.Cor,
		Grade:      req.Grade,
		PrecoBase:  req.PrecoBase,
	}

	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "erro ao salvar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /produtos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar produtos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(produtos)
}

// DELETE /produtos/{id} (rota de admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "produto não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Deletar(existente); err != nil {
		http.Error(w, "erro ao deletar produto", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
