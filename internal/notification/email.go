package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"
)

const defaultBrevoURL = "https://api.brevo.com/v3/smtp/email"

type EmailMessage struct {
	ToEmail       string
	ToName        string
	Subject       string
	HTMLBody      string
	AttachmentICS string
}

type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// BrevoClient sends transactional email through the Brevo HTTP API. An
// empty API key disables sending, which keeps local development working
// without credentials.
type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	baseURL     string
	httpClient  *http.Client
	logger      logger.Logger
}

func NewBrevoClient(apiKey, senderEmail, senderName, baseURL string, log logger.Logger) *BrevoClient {
	if apiKey == "" {
		log.Warn("brevo api key is empty, email notifications disabled")
	}
	if baseURL == "" {
		baseURL = defaultBrevoURL
	}

	return &BrevoClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      log,
	}
}

type brevoAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
	Attachment  []brevoAttachment   `json:"attachment,omitempty"`
}

func (c *BrevoClient) Send(ctx context.Context, msg EmailMessage) error {
	if c.apiKey == "" {
		c.logger.Debug("email skipped (client disabled)",
			logger.String("subject", msg.Subject),
		)
		return nil
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": c.senderName, "email": c.senderEmail},
		To:          []map[string]string{{"email": msg.ToEmail, "name": msg.ToName}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
	}
	if msg.AttachmentICS != "" {
		payload.Attachment = []brevoAttachment{{
			Name:    "invite.ics",
			Content: base64.StdEncoding.EncodeToString([]byte(msg.AttachmentICS)),
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo api status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
