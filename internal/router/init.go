package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/mithaighar/sweetshop/internal/application"
	pginfra "github.com/mithaighar/sweetshop/internal/infrastructure/postgres"
	handlers "github.com/mithaighar/sweetshop/internal/interface/http"
	"github.com/mithaighar/sweetshop/internal/router/modules"
	"github.com/mithaighar/sweetshop/pkg/helpers"
)

// Deps carries the process-wide collaborators constructed in main. Passing
// them explicitly keeps test instances isolated: no package-level singletons.
type Deps struct {
	Pool   *pgxpool.Pool
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

// InitModules wires repositories, services, and handlers, then registers all
// feature modules with the registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.Pool)
	sweets := pginfra.NewSweetRepository(d.Pool)

	authSvc := application.NewAuthService(users, d.JWT, d.Logger)
	invSvc := application.NewInventoryService(sweets, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger)))
	r.Add(modules.NewSweetModule(handlers.NewSweetHandler(invSvc, d.Logger), users, d.JWT))
}
