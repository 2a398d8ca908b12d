package httpadapter

import (
	"net/http"

	"github.com/vrstep/geomaster/internal/adapters/http/handlers"
	"github.com/vrstep/geomaster/internal/adapters/http/middlewares"
	"github.com/vrstep/geomaster/internal/adapters/websocket"
	"github.com/vrstep/geomaster/internal/ports"

	_ "github.com/vrstep/geomaster/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter configura as rotas e middlewares.
func NewRouter(
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	rankHandler *handlers.RankHandler,
	wsHandler *websocket.WebSocketHandler,
	tokenService ports.TokenService,
) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Configuração CORS (o cliente Next.js roda em outra origem)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Rota de Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Assinatura do stream de snapshots (token via query string)
	r.Get("/ws", wsHandler.HandleWS)

	// Grupo de rotas de Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Rotas protegidas (Auth)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenService))
			r.Get("/me", authHandler.GetMe)
		})
	})

	// Ranking global e resultados recentes (públicos)
	r.Get("/leaderboard", rankHandler.Leaderboard)
	r.Get("/results", rankHandler.RecentResults)

	// Grupo de rotas de Salas
	r.Route("/rooms", func(r chi.Router) {
		// Leitura pontual é pública: os clientes buscam o snapshot antes
		// de assinar o stream
		r.Get("/{code}", gameHandler.GetRoom)

		// Todas as mutações exigem autenticação
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenService))

			r.Post("/", gameHandler.CreateRoom)
			r.Post("/{code}/join", gameHandler.JoinRoom)
			r.Post("/{code}/ready", gameHandler.ToggleReady)
			r.Post("/{code}/start", gameHandler.StartGame)
			r.Post("/{code}/answer", gameHandler.SubmitAnswer)
			r.Post("/{code}/leave", gameHandler.LeaveRoom)
		})
	})

	return r
}
