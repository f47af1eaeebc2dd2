package listings_api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

// missedCountPath - фиксированный путь счетчика новых объявлений.
const missedCountPath = "/api/v1/listings/new/count"

// Client ходит во внешнее API объявлений.
type Client struct {
	baseURL   string
	endpoint  string
	timeout   time.Duration
	districts port.DistrictNameCachePort
	regions   port.RegionNameCachePort
}

func NewClient(baseURL, endpoint string, timeout time.Duration, districts port.DistrictNameCachePort, regions port.RegionNameCachePort) *Client {
	return &Client{
		baseURL:   baseURL,
		endpoint:  endpoint,
		timeout:   timeout,
		districts: districts,
		regions:   regions,
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	// 1. Извлекаем trace_id из контекста
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// 2. Устанавливаем заголовок для трассировки
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Accept", "application/json")

	// Клиент одноразовый, живет в рамках вызова и несет его таймаут.
	httpClient := &http.Client{Timeout: c.timeout}
	return httpClient.Do(req)
}

// FetchListings запрашивает страницу объявлений.
// Неуспешный статус и нечитаемый ответ считаются пустой страницей,
// ошибки транспорта возвращаются типизированными.
func (c *Client) FetchListings(ctx context.Context, filter *domain.Filter, page domain.PageRequest) ([]domain.Advert, error) {
	// 1. Извлекаем и обогащаем логгер
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "ListingsApiClient",
		"method":    "FetchListings",
	})

	requestURL, err := c.buildRequestURL(c.endpoint, c.buildPageParams(ctx, filter, page))
	if err != nil {
		clientLogger.Error("Failed to build listings API URL", err, nil)
		return nil, err
	}

	clientLogger.Debug("Sending request to listings API", port.Fields{"url": requestURL})

	resp, err := c.doRequest(ctx, requestURL)
	if err != nil {
		err = classifyTransportError(err)
		clientLogger.Error("Failed to perform request to listings API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		// Пустая страница, а не ошибка: клиент покажет "ничего не найдено".
		clientLogger.Warn("Listings API returned non-success status code", port.Fields{
			"status_code": resp.StatusCode,
			"body":        string(bodyBytes),
		})
		return []domain.Advert{}, nil
	}

	var payload listingsPageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		clientLogger.Error("Failed to decode response from listings API", err, nil)
		return []domain.Advert{}, nil
	}

	// Маппим записи по одной, битая запись пропускается и не валит страницу.
	adverts := make([]domain.Advert, 0, len(payload.Items))
	for _, raw := range payload.Items {
		advert, mapErr := mapListing(raw, clientLogger)
		if mapErr != nil {
			clientLogger.Warn("Skipping listing that could not be mapped", port.Fields{"error": mapErr.Error()})
			continue
		}
		adverts = append(adverts, *advert)
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{
		"items_count":   len(payload.Items),
		"adverts_count": len(adverts),
	})

	return adverts, nil
}

// FetchMissedCount запрашивает число объявлений новее последнего просмотренного.
func (c *Client) FetchMissedCount(ctx context.Context, filter *domain.Filter, page domain.PageRequest) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "ListingsApiClient",
		"method":    "FetchMissedCount",
	})

	requestURL, err := c.buildRequestURL(missedCountPath, c.buildMissedParams(ctx, filter, page))
	if err != nil {
		clientLogger.Error("Failed to build listings API URL", err, nil)
		return 0, err
	}

	clientLogger.Debug("Sending request to listings API", port.Fields{"url": requestURL})

	resp, err := c.doRequest(ctx, requestURL)
	if err != nil {
		err = classifyTransportError(err)
		clientLogger.Error("Failed to perform request to listings API", err, nil)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		clientLogger.Warn("Listings API returned non-success status code", port.Fields{
			"status_code": resp.StatusCode,
			"body":        string(bodyBytes),
		})
		return 0, nil
	}

	var payload missedCountResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		clientLogger.Error("Failed to decode response from listings API", err, nil)
		return 0, nil
	}

	clientLogger.Info("Successfully received missed count", port.Fields{"total": payload.Total})

	return payload.Total, nil
}

func (c *Client) buildRequestURL(path string, params url.Values) (string, error) {
	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("failed to parse listings API URL: %w", err)
	}
	parsed.RawQuery = params.Encode()
	return parsed.String(), nil
}

// classifyTransportError разделяет таймаут и прочие сетевые ошибки.
// Таймаут для вызывающего кода отличим от "провайдер ничего не вернул".
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
}
