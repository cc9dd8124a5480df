package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
)

// GeocodeUseCase - прямое и обратное геокодирование через внешний провайдер
type GeocodeUseCase struct {
	geocodingRepo repository.GeocodingRepository
	logger        *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(geocodingRepo repository.GeocodingRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodingRepo: geocodingRepo,
		logger:        logger,
	}
}

// Geocode - координаты по текстовому названию локации
func (uc *GeocodeUseCase) Geocode(ctx context.Context, location string) (*domain.GeocodeResult, error) {
	result, err := uc.geocodingRepo.Geocode(ctx, location)
	if err != nil {
		uc.logger.Error("Failed to geocode location",
			zap.String("location", location),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}

// ReverseGeocode - адрес по координатам
func (uc *GeocodeUseCase) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.ReverseGeocodeResult, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	result, err := uc.geocodingRepo.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}
