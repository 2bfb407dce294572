package handlers

import (
	"net/http"

	"github.com/webfolio/portfolio-backend/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HelloHandler serves the liveness greetings
type HelloHandler struct{}

// NewHelloHandler creates a new hello handler
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Root handles GET /
func (h *HelloHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, common.MessageResponse{Message: "Hello from the backend!"})
}

// Hello handles GET /api/hello
func (h *HelloHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, common.MessageResponse{Message: "Hello from the backend API!"})
}
