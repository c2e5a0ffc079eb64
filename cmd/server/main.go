package main

import (
	"flag"
	"strings"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
	"github.com/benbeisheim/chessmaster-backend/internal/controller"
	"github.com/benbeisheim/chessmaster-backend/internal/middleware"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(logLevel(cfg.LogLevel))

	app := newApp(cfg, service.NewGameService(service.NewGameManager()))
	log.Infof("listening on %s", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}

func newApp(cfg *config.Config, gameService *service.GameService) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// WebSocket routes
	app.Use("/ws", middleware.EnsureClientID())
	app.Get("/ws/match/:matchId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         cfg.AllowedOrigins,
	}))

	// REST routes
	api := app.Group("/api", middleware.EnsureClientID())
	api.Get("/square/:tile", gameController.TranslateSquare)

	matchRoutes := api.Group("/match")
	matchRoutes.Post("/", gameController.CreateGame)
	matchRoutes.Get("/:matchId", gameController.GetGameState)
	matchRoutes.Post("/:matchId/move", gameController.MakeMove)
	matchRoutes.Post("/:matchId/reset", gameController.ResetGame)
	matchRoutes.Get("/:matchId/log", gameController.GetLog)
	matchRoutes.Get("/:matchId/legal", gameController.IsLegalMove)
	matchRoutes.Get("/:matchId/targets/:piece", gameController.LegalTargets)

	return app
}

func logLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
