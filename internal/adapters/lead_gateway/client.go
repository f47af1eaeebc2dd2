package lead_gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/port"
)

// deliverTimeout ограничивает каждый запрос к эндпоинту партнера.
const deliverTimeout = 10 * time.Second

// Client доставляет лиды на HTTP-эндпоинты партнеров.
// Эндпоинт задается партнером как шаблон с местом подстановки {text}.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Deliver подставляет сообщение в шаблон и выполняет GET.
// Партнер подтверждает получение статусом 200 с непустым телом.
func (c *Client) Deliver(ctx context.Context, endpointTemplate, message string) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "LeadGatewayClient",
		"method":    "Deliver",
	})

	// Сообщение уходит внутри query, поэтому экранируется как параметр.
	requestURL := strings.ReplaceAll(endpointTemplate, "{text}", url.QueryEscape(message))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		clientLogger.Error("Failed to create request to partner endpoint", err, nil)
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	clientLogger.Debug("Sending lead to partner endpoint", port.Fields{"url": requestURL})

	httpClient := &http.Client{Timeout: deliverTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to partner endpoint", err, nil)
		return false, fmt.Errorf("failed to deliver lead: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK || len(body) == 0 {
		clientLogger.Warn("Partner endpoint did not confirm the lead", port.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		})
		return false, nil
	}

	clientLogger.Info("Lead successfully sent via endpoint.", nil)
	return true, nil
}
