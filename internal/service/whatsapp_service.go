package service

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/webfolio/portfolio-backend/internal/config"
	"github.com/webfolio/portfolio-backend/internal/model"
	"github.com/webfolio/portfolio-backend/internal/utils"
)

const twilioAPIBase = "https://api.twilio.com"

// Notifier delivers a best-effort notification about a contact message.
// The returned boolean only reports delivery; it must never influence the
// outcome of the operation that triggered it.
type Notifier interface {
	SendContactMessage(msg *model.ContactMessage) bool
}

// WhatsAppService sends WhatsApp messages through the Twilio REST API.
type WhatsAppService struct {
	cfg     config.WhatsAppConfig
	client  *http.Client
	baseURL string
}

// NewWhatsAppService creates a new WhatsApp service from the given
// configuration.
func NewWhatsAppService(cfg config.WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: twilioAPIBase,
	}
}

var _ Notifier = (*WhatsAppService)(nil)

// SendContactMessage formats a contact message and sends it to the owner.
// The message text is capped at 500 characters; a missing email is shown
// as a dash.
func (s *WhatsAppService) SendContactMessage(msg *model.ContactMessage) bool {
	email := msg.Email
	if email == "" {
		email = "-"
	}

	body := fmt.Sprintf(
		"New Contact Message\nName: %s\nPhone: %s\nEmail: %s\nMessage: %s",
		msg.Name, msg.Phone, email, utils.Truncate(msg.Message, 500),
	)

	return s.Send(body)
}

// Send submits a single WhatsApp message body. It never returns an error:
// a disabled feature flag, missing credentials, transport failures and
// non-2xx responses all collapse to false.
func (s *WhatsAppService) Send(body string) bool {
	if !s.cfg.Enabled {
		return false
	}
	if s.cfg.AccountSID == "" || s.cfg.AuthToken == "" || s.cfg.From == "" || s.cfg.To == "" {
		return false
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.cfg.AccountSID)

	data := url.Values{}
	data.Set("From", s.cfg.From)
	data.Set("To", s.cfg.To)
	data.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return false
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
}
