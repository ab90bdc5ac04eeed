package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/dkovalev/news-api/internal/container"
	handlers "github.com/dkovalev/news-api/internal/interface/http"
	"github.com/dkovalev/news-api/internal/interface/middleware"
)

// UserModule wires the user CRUD handlers into routes. Mutating verbs get a
// per-IP rate limit; reads are unthrottled.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	writeLimiter := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/users/:id", m.Handler.Get)
	rg.POST("/users", writeLimiter, m.Handler.Create)
	rg.PATCH("/users/:id", writeLimiter, m.Handler.Patch)
	rg.DELETE("/users/:id", writeLimiter, m.Handler.Delete)
}
