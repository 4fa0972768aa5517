package contact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultEndpoint is the public EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// SendRequest is the EmailJS send payload. The public key travels as
// user_id.
type SendRequest struct {
	ServiceID      string            `json:"service_id" binding:"required"`
	TemplateID     string            `json:"template_id" binding:"required"`
	UserID         string            `json:"user_id" binding:"required"`
	TemplateParams map[string]string `json:"template_params" binding:"required"`
}

// EmailJS is a Relay speaking the EmailJS REST API.
type EmailJS struct {
	endpoint string
	client   *http.Client
}

// NewEmailJS returns a client for endpoint. Empty endpoint means the public
// API; a nil client means http.DefaultClient.
func NewEmailJS(endpoint string, client *http.Client) *EmailJS {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJS{endpoint: endpoint, client: client}
}

// Send implements Relay.
func (e *EmailJS) Send(ctx context.Context, serviceID, templateID string, form Form, publicKey string) error {
	params := make(map[string]string, len(FieldNames))
	values := form.Values()
	for _, name := range FieldNames {
		params[name] = values[name]
	}

	body, err := json.Marshal(SendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
