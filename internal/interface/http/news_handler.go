package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkovalev/news-api/internal/application"
	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/interface/middleware"
	"github.com/dkovalev/news-api/pkg/response"
	"github.com/dkovalev/news-api/pkg/validation"
)

type NewsHandler struct {
	Svc    *application.NewsService
	Logger *logrus.Logger
}

func NewNewsHandler(svc *application.NewsService, logger *logrus.Logger) *NewsHandler {
	return &NewsHandler{Svc: svc, Logger: logger}
}

type createNewsRequest struct {
	Title   string `json:"title" binding:"required,min=3"`
	Content string `json:"content" binding:"required"`
}

type patchNewsRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=3"`
	Content *string `json:"content" binding:"omitempty"`
}

// newsBody serializes the public fields of a post. The owner comes out as
// a bare id ("user"), nullable when the post is unowned.
func newsBody(n *entity.News) gin.H {
	return gin.H{
		"id":      n.ID,
		"title":   n.Title,
		"content": n.Content,
		"date":    n.CreatedAt.Format(time.RFC3339),
		"user":    n.UserID,
	}
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	n, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, newsBody(n))
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToFieldErrors(err))
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), application.CreateNewsInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  middleware.IdentityFromContext(c),
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, newsBody(n))
}

func (h *NewsHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req patchNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToFieldErrors(err))
		return
	}
	n, err := h.Svc.Patch(c.Request.Context(), id, application.PatchNewsInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, newsBody(n))
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Deleted(c)
}
