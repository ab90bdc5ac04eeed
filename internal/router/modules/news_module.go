package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/dkovalev/news-api/internal/container"
	handlers "github.com/dkovalev/news-api/internal/interface/http"
	"github.com/dkovalev/news-api/internal/interface/middleware"
)

// NewsModule wires the news CRUD handlers into routes. Creation runs behind
// the optional identity middleware so a valid bearer token attaches the
// author, while anonymous posts stay allowed.
type NewsModule struct {
	Handler *handlers.NewsHandler
}

func NewNewsModule(h *handlers.NewsHandler) *NewsModule {
	return &NewsModule{Handler: h}
}

func (m *NewsModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	writeLimiter := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP(), middleware.AllowPrivateIP())
	identity := middleware.OptionalIdentity(container.GetTokens())

	rg.GET("/news/:id", m.Handler.Get)
	rg.POST("/news", writeLimiter, identity, m.Handler.Create)
	rg.PATCH("/news/:id", writeLimiter, m.Handler.Patch)
	rg.DELETE("/news/:id", writeLimiter, m.Handler.Delete)
}
