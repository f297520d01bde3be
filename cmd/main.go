package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/auth"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/cliente"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/config"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/database"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/pedido"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/produto"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/relatorio"
	"github.com/r80gustavo-coder/gestao-confeccao-api/internal/usuario"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}
	cfg := config.Load()

	db, err := database.Conectar(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := usuario.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := cliente.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := produto.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := pedido.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db, cfg)
	clienteHandler := cliente.NewHandler(cliente.NewRepository(db))
	produtoHandler := produto.NewHandler(produto.NewRepository(db))
	pedidoHandler := pedido.NewHandler(db)
	relatorioHandler := relatorio.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware(cfg.JWTSecret))

	// Rotas de admin
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	// Rotas de usuários
	admin.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")
	api.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarUsuario).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas do catálogo de produtos
	admin.HandleFunc("/produtos", produtoHandler.Criar).Methods("POST")
	api.HandleFunc("/produtos", produtoHandler.Listar).Methods("GET")
	admin.HandleFunc("/produtos/{id}", produtoHandler.Deletar).Methods("DELETE")

	// Rotas de pedidos
	api.HandleFunc("/pedidos", pedidoHandler.Criar).Methods("POST")
	api.HandleFunc("/pedidos", pedidoHandler.Listar).Methods("GET")
	api.HandleFunc("/pedidos/{id}", pedidoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/pedidos/{id}/situacao", pedidoHandler.AtualizarSituacao).Methods("PUT")
	admin.HandleFunc("/pedidos/{id}/romaneio", pedidoHandler.GerarRomaneio).Methods("PUT")

	// Rotas de relatórios
	api.HandleFunc("/relatorios/producao", relatorioHandler.MatrizProducao).Methods("GET")
	admin.HandleFunc("/relatorios/resumo", relatorioHandler.Resumo).Methods("GET")
	admin.HandleFunc("/relatorios/consolidacao", relatorioHandler.Consolidar).Methods("POST")

	// CORS
	origins := strings.Split(cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, handler))
}
