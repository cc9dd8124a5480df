package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger
}

// overpassResponse - конверт ответа Overpass API
type overpassResponse struct {
	Elements []domain.Element `json:"elements"`
}

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.GeodataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.RetryBaseDelay,
		logger:     logger,
	}
}

// QueryElements выполняет текстовый запрос и декодирует элементы ответа
func (c *client) QueryElements(ctx context.Context, query string) ([]domain.Element, error) {
	resp, err := c.fetchWithRetry(ctx, query)
	if err != nil {
		c.logger.Error("Overpass request failed", zap.Error(err))
		return nil, apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamUnavailable
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Error("Failed to decode Overpass response", zap.Error(err))
		return nil, apperrors.ErrUpstreamUnavailable
	}

	c.logger.Debug("Overpass query successful",
		zap.Int("elements_count", len(decoded.Elements)))

	return decoded.Elements, nil
}

// fetchWithRetry выполняет POST запроса с ограниченными повторами.
// Повторяются только 429/5xx и транспортные ошибки, задержка линейная:
// baseDelay * номер попытки. Любой другой статус возвращается сразу;
// после исчерпания попыток возвращается последний неуспешный ответ.
func (c *client) fetchWithRetry(ctx context.Context, query string) (*http.Response, error) {
	form := "data=" + url.QueryEscape(query)

	var resp *http.Response
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt < c.maxRetries {
				c.logger.Warn("Overpass request error, retrying",
					zap.Int("attempt", attempt),
					zap.Error(err))
				if berr := c.backoff(ctx, attempt); berr != nil {
					return nil, berr
				}
				continue
			}
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		if (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) && attempt < c.maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.logger.Warn("Overpass returned retryable status",
				zap.Int("status_code", resp.StatusCode),
				zap.Int("attempt", attempt))
			if berr := c.backoff(ctx, attempt); berr != nil {
				return nil, berr
			}
			continue
		}

		// Неретраябельный статус либо попытки исчерпаны - решение за вызывающим
		return resp, nil
	}

	return resp, nil
}

func (c *client) backoff(ctx context.Context, attempt int) error {
	select {
	case <-time.After(c.baseDelay * time.Duration(attempt)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
