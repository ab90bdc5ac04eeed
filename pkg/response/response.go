package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the fixed shape of every non-2xx response. Description is
// either a plain string or a list of field errors.
type Envelope struct {
	Status      string `json:"status"`
	Description any    `json:"description"`
}

// Error writes the error envelope and aborts the handler chain.
func Error(c *gin.Context, status int, description any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, Envelope{Status: "error", Description: description})
}

// Deleted writes the success body for delete operations.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
