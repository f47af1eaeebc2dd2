package sendgrid_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

// sendTimeout ограничивает каждую отправку письма.
const sendTimeout = 10 * time.Second

// Client отправляет письма через SendGrid v3 API.
type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// mailSendRequest - тело запроса /v3/mail/send.
type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Content          []mailContent     `json:"content"`
}

type personalization struct {
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
}

type emailAddress struct {
	Email string `json:"email"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send отправляет письмо. Успехом SendGrid считает только 202.
func (c *Client) Send(ctx context.Context, msg domain.EmailMessage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "SendGridClient",
		"method":    "Send",
		"to":        msg.To,
	})

	payload := mailSendRequest{
		Personalizations: []personalization{
			{
				To:      []emailAddress{{Email: msg.To}},
				Subject: msg.Subject,
			},
		},
		From: emailAddress{Email: constants.ContactEmail},
		Content: []mailContent{
			{Type: "text/plain", Value: msg.PlainText},
		},
	}
	if msg.HTML != "" {
		payload.Content = append(payload.Content, mailContent{Type: "text/html", Value: msg.HTML})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		clientLogger.Error("Failed to marshal mail payload", err, nil)
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	url := fmt.Sprintf("%s/v3/mail/send", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	clientLogger.Debug("Sending email via SendGrid", nil)

	httpClient := &http.Client{Timeout: sendTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to SendGrid", err, nil)
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("sendgrid returned status code %d: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received error response from SendGrid", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Email sent successfully", nil)
	return nil
}
