package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"

	"github.com/warblerhq/warbler/internal/config"
	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/handlers"
	"github.com/warblerhq/warbler/internal/logging"
	"github.com/warblerhq/warbler/internal/pubsub"
	"github.com/warblerhq/warbler/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E              *echo.Echo
	DB             *surrealdb.DB
	Cfg            config.Provider
	userStore      domain.UserRepository
	messageStore   domain.MessageRepository
	publisher      *pubsub.WatermillBridge
	homeHandler    *handlers.HomeHandler
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	messageHandler *handlers.MessageHandler
}

// New creates a new Server instance with all dependencies wired.
func New() *Server {
	logging.New()
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	userClient, err := database.NewClient[domain.User](db, cfg)
	if err != nil {
		slog.Error("Failed to create user client", "error", err)
		os.Exit(1)
	}
	messageClient, err := database.NewClient[domain.Message](db, cfg)
	if err != nil {
		slog.Error("Failed to create message client", "error", err)
		os.Exit(1)
	}

	userStore := database.NewUserStore(userClient)
	messageStore := database.NewMessageStore(messageClient)

	bridge := pubsub.NewWatermillBridge()
	if err := pubsub.StartActivityLog(context.Background(), bridge); err != nil {
		slog.Error("Failed to start activity log", "error", err)
		os.Exit(1)
	}

	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = renderer

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:              e,
		DB:             db,
		Cfg:            cfg,
		userStore:      userStore,
		messageStore:   messageStore,
		publisher:      bridge,
		homeHandler:    handlers.NewHomeHandler(userStore, messageStore, renderer),
		authHandler:    handlers.NewAuthHandler(userStore, renderer),
		userHandler:    handlers.NewUserHandler(userStore, messageStore, bridge, renderer),
		messageHandler: handlers.NewMessageHandler(userStore, messageStore, bridge, renderer),
	}
}

// UserStore is a getter for the server's user store, useful for testing.
func (s *Server) UserStore() domain.UserRepository {
	return s.userStore
}

// MessageStore is a getter for the server's message store, useful for testing.
func (s *Server) MessageStore() domain.MessageRepository {
	return s.messageStore
}
