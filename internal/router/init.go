package router

import (
	"github.com/dkovalev/news-api/internal/application"
	"github.com/dkovalev/news-api/internal/container"
	pginfra "github.com/dkovalev/news-api/internal/infrastructure/postgres"
	handlers "github.com/dkovalev/news-api/internal/interface/http"
	"github.com/dkovalev/news-api/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := application.NewUserService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())
	return modules.NewUserModule(handler)
}

func buildNewsModule() *modules.NewsModule {
	repo := pginfra.NewNewsRepository(container.GetPGPool())
	service := application.NewNewsService(repo, container.GetLogger())
	handler := handlers.NewNewsHandler(service, container.GetLogger())
	return modules.NewNewsModule(handler)
}

// InitModules wires all feature modules into the router registry. Called
// once during startup.
func InitModules(r *Registry) {
	r.Add(modules.NewHealthModule())
	r.Add(buildUserModule())
	r.Add(buildNewsModule())
}
