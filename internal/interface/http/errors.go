package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkovalev/news-api/internal/application"
	"github.com/dkovalev/news-api/pkg/response"
)

// renderError is the single place where application failures become HTTP
// responses. Internal failures are logged with their cause but reach the
// client as an opaque 500.
func renderError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrNewsNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the numeric :id path parameter. A missing or non-numeric
// value is a client error, reported through the envelope.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
