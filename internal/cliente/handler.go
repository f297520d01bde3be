package cliente

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/auth"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type clienteRequest struct {
	Nome            string `json:"nome"`
	Cidade          string `json:"cidade"`
	Bairro          string `json:"bairro"`
	Estado          string `json:"estado"`
	RepresentanteID uint   `json:"representanteId"`
}

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	// representante cadastra na própria carteira; admin pode indicar o dono
	repID := userID
	if isAdmin && req.RepresentanteID != 0 {
		repID = req.RepresentanteID
	}

	c := Cliente{
		RepresentanteID: repID,
		Nome:            req.Nome,
		Cidade:          req.Cidade,
		Bairro:          req.Bairro,
		Estado:          strings.ToUpper(req.Estado),
	}

	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clientes — admin vê todos (ou filtra por ?representante=), representante
// vê só a própria carteira
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	if !isAdmin {
		clientes, err := h.Repo.ListarPorRepresentante(userID)
		if err != nil {
			http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(clientes)
		return
	}

	if repParam := r.URL.Query().Get("representante"); repParam != "" {
		repID, err := strconv.Atoi(repParam)
		if err != nil {
			http.Error(w, "representante inválido", http.StatusBadRequest)
			return
		}
		clientes, err := h.Repo.ListarPorRepresentante(uint(repID))
		if err != nil {
			http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(clientes)
		return
	}

	clientes, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && c.RepresentanteID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && existente.RepresentanteID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = req.Nome
	existente.Cidade = req.Cidade
	existente.Bairro = req.Bairro
	existente.Estado = strings.ToUpper(req.Estado)

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && existente.RepresentanteID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repo.Deletar(existente); err != nil {
		http.Error(w, "erro ao deletar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
