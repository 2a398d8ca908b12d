package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	httpadapter "github.com/vrstep/geomaster/internal/adapters/http"
	"github.com/vrstep/geomaster/internal/adapters/http/handlers"
	"github.com/vrstep/geomaster/internal/adapters/persistence"
	"github.com/vrstep/geomaster/internal/adapters/security"
	"github.com/vrstep/geomaster/internal/adapters/websocket"
	"github.com/vrstep/geomaster/internal/application/usecases"
	"github.com/vrstep/geomaster/internal/infra/config"
	infraDB "github.com/vrstep/geomaster/internal/infra/db"
	"github.com/vrstep/geomaster/internal/infra/logger"

	_ "github.com/vrstep/geomaster/docs"
)

// @title GeoMaster API
// @version 1.0
// @description Backend do GeoMaster (trivia multiplayer de geografia).
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuração e Logger
	logger.Init()
	cfg := config.Load()

	// 2. Banco de Dados
	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		logger.Error("Não foi possível conectar ao banco", "erro", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := infraDB.RunMigrations(db, "migrations"); err != nil {
		logger.Error("Falha na migração", "erro", err)
		os.Exit(1)
	}

	// 3a. Adapters (Persistence)
	userRepo := persistence.NewSQLiteUserRepository(db)
	quizRepo := persistence.NewSQLiteQuizRepository(db)
	resultRepo := persistence.NewSQLiteResultRepository(db)

	// Registro de salas vive em memória
	roomRepo := persistence.NewInMemoryRoomRepository()

	hasher := security.NewBcryptHasher()
	tokenService := security.NewJWTService(cfg.JWTSecret)

	// 3b. Adapters (WebSocket Hub)
	wsHub := websocket.NewHub()
	// Inicia o Hub em background
	go wsHub.Run()

	// 4. Application (Use Cases)
	registerUC := usecases.NewRegisterUserUseCase(userRepo, hasher, tokenService)
	loginUC := usecases.NewLoginUserUseCase(userRepo, hasher, tokenService)
	getMeUC := usecases.NewGetMeUseCase(userRepo)
	leaderboardUC := usecases.NewLeaderboardUseCase(userRepo)

	resultUC := usecases.NewResultUseCases(resultRepo, userRepo)
	gameUC := usecases.NewGameUseCases(roomRepo, quizRepo, userRepo, wsHub, resultUC)
	gameUC.RoundDelay = time.Duration(cfg.RoundDelayMs) * time.Millisecond

	// 5. Adapters (Handlers)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getMeUC)
	gameHandler := handlers.NewGameHandler(gameUC)
	rankHandler := handlers.NewRankHandler(leaderboardUC, resultUC)

	wsHandler := websocket.NewWebSocketHandler(wsHub, gameUC, tokenService)

	// 6. Router
	router := httpadapter.NewRouter(
		authHandler,
		gameHandler,
		rankHandler,
		wsHandler,
		tokenService,
	)

	// 7. Servidor
	logger.Info("Iniciando servidor", "porta", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router); err != nil {
		logger.Error("Falha no servidor HTTP", "erro", err)
	}
}
