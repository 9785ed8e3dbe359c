package router

import (
	"github.com/sessionworks/authsvc/internal/application"
	"github.com/sessionworks/authsvc/internal/container"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	pginfra "github.com/sessionworks/authsvc/internal/infrastructure/postgres"
	"github.com/sessionworks/authsvc/internal/infrastructure/redisstore"
	handlers "github.com/sessionworks/authsvc/internal/interface/http"
	"github.com/sessionworks/authsvc/internal/interface/middleware"
	"github.com/sessionworks/authsvc/internal/router/modules"
)

type AuthModuleDeps struct {
	Repo     repository.UserRepository
	Service  *application.Service
	Handler  *handlers.AuthHandler
	Strategy middleware.Strategy
}

func buildAuthDeps() AuthModuleDeps {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	sessions := redisstore.NewSessionStore(container.GetRedis(), cfg.SessionTTL)

	service := application.NewService(
		repo,
		sessions,
		container.GetRabbitPub(),
		container.GetLogger(),
		cfg.ResetPasswordURL,
		cfg.MailSendEnabled,
	)

	handler := handlers.NewAuthHandler(
		service,
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
		cfg.SessionTTL,
	)

	var strategy middleware.Strategy
	switch cfg.AuthType {
	case "basic":
		strategy = middleware.NewBasicAuthStrategy(service.Auth, repo)
	default:
		strategy = middleware.NewSessionAuthStrategy(service.Sessions)
	}

	return AuthModuleDeps{
		Repo:     repo,
		Service:  service,
		Handler:  handler,
		Strategy: strategy,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildAuthDeps()
	r.Use(middleware.Authenticated(deps.Strategy, container.GetConfig().ExcludedPathList()))
	r.Add(modules.NewAuthModule(deps.Handler))
}
