package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// searchResult - элемент ответа /search; координаты Nominatim отдает строками
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// reverseResult - ответ /reverse
type reverseResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// NewNominatimClient создает новый клиент для Nominatim API
func NewNominatimClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Geocode переводит название локации в координаты, limit=1
func (c *client) Geocode(ctx context.Context, location string) (*domain.GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=1",
		c.baseURL, url.QueryEscape(location))

	var results []searchResult
	if err := c.getJSON(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Debug("Nominatim returned no matches", zap.String("location", location))
		return nil, apperrors.ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		c.logger.Error("Failed to parse latitude", zap.String("lat", results[0].Lat), zap.Error(err))
		return nil, apperrors.ErrUpstreamUnavailable
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		c.logger.Error("Failed to parse longitude", zap.String("lon", results[0].Lon), zap.Error(err))
		return nil, apperrors.ErrUpstreamUnavailable
	}

	return &domain.GeocodeResult{
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
	}, nil
}

// ReverseGeocode переводит координаты в адрес.
// Город выбирается по цепочке city -> town -> village -> "Unknown".
func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.ReverseGeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, lat, lon)

	var result reverseResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}
	if city == "" {
		city = "Unknown"
	}

	return &domain.ReverseGeocodeResult{
		City:        city,
		State:       result.Address.State,
		Country:     result.Address.Country,
		DisplayName: result.DisplayName,
	}, nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return apperrors.ErrUpstreamUnavailable
	}
	// Nominatim требует идентифицирующий User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Nominatim request failed", zap.Error(err))
		return apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return apperrors.ErrUpstreamUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode Nominatim response", zap.Error(err))
		return apperrors.ErrUpstreamUnavailable
	}

	return nil
}
