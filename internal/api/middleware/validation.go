package middleware

import (
	"net/http"

	"github.com/webfolio/portfolio-backend/internal/api/constants"
	"github.com/webfolio/portfolio-backend/internal/api/dto/v1/contact"
	"github.com/webfolio/portfolio-backend/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validator.New(),
	}
}

// ValidateContactRequest binds and validates a contact form submission.
// On failure the request is rejected before any side effect; the bound
// request is stored in the context for the handler.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			c.Abort()
			return
		}

		if err := m.validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Validation failed",
				"errors": validation.FormatValidationError(err),
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
