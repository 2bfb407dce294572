package handlers

import (
	"net/http"
	"time"

	"github.com/webfolio/portfolio-backend/internal/api/constants"
	"github.com/webfolio/portfolio-backend/internal/api/dto/common"
	"github.com/webfolio/portfolio-backend/internal/api/dto/v1/contact"
	"github.com/webfolio/portfolio-backend/internal/logging"
	"github.com/webfolio/portfolio-backend/internal/model"
	"github.com/webfolio/portfolio-backend/internal/repository"
	"github.com/webfolio/portfolio-backend/internal/service"
	"github.com/webfolio/portfolio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions: persist first, then
// best-effort notify the owner.
type ContactHandler struct {
	contacts repository.ContactRepository
	notifier service.Notifier
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts repository.ContactRepository, notifier service.Notifier) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		notifier: notifier,
	}
}

// Submit stores a validated contact message and acknowledges with its id.
// The WhatsApp notification is fire-and-forget: its outcome never changes
// the response.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		c.JSON(http.StatusInternalServerError, common.ErrorDetail{Detail: "Contact data not found in context"})
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, common.ErrorDetail{Detail: "Invalid contact data format"})
		return
	}

	msg := &model.ContactMessage{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.contacts.Create(c.Request.Context(), msg)
	if err != nil {
		logging.GetLogger().Error("failed to store contact message: %v", err)
		c.JSON(http.StatusInternalServerError, common.ErrorDetail{
			Detail: "Database error: " + utils.Truncate(err.Error(), 120),
		})
		return
	}

	if !h.notifier.SendContactMessage(msg) {
		logging.GetLogger().Warn("whatsapp notification not delivered for contact %s", id)
	}

	c.JSON(http.StatusOK, contact.ContactResponse{OK: true, ID: id})
}
