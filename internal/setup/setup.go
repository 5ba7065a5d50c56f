package setup

import (
	"github.com/flowspace-dev/flowspace/internal/config"
	"github.com/flowspace-dev/flowspace/internal/handler"
	"github.com/flowspace-dev/flowspace/internal/jwt"
	"github.com/flowspace-dev/flowspace/internal/middleware"
	"github.com/flowspace-dev/flowspace/internal/service"
	"github.com/flowspace-dev/flowspace/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	board := service.NewBoard(storage, storage)
	card := service.NewCard(storage, storage, storage)
	invite := service.NewInvite(storage, storage, storage, cfg.Public.AppURL)
	activity := service.NewActivity(storage, cfg.Public.ActivityPageLimit, cfg.Public.ActivityPageMax)

	h := handler.New(auth, board, card, invite, activity, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
