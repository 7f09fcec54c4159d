package setup

import (
	"github.com/mkosinov/taskboard/internal/config"
	"github.com/mkosinov/taskboard/internal/handler"
	"github.com/mkosinov/taskboard/internal/jwt"
	"github.com/mkosinov/taskboard/internal/realtime"
	"github.com/mkosinov/taskboard/internal/service"
	"github.com/mkosinov/taskboard/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
	Hub     *realtime.Hub
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	hub := realtime.NewHub(storage)

	auth := service.NewAuth(storage, jwtService)
	board := service.NewBoard(storage)
	list := service.NewList(storage, hub)
	card := service.NewCard(storage, hub)
	comment := service.NewComment(storage, hub)

	h := handler.New(auth, board, list, card, comment)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
		Hub:     hub,
		Jwt:     jwtService,
	}, nil
}
