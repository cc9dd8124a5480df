package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// GeocodingRepository - доступ к провайдеру геокодирования (Nominatim API)
type GeocodingRepository interface {
	// Geocode переводит текстовое название локации в координаты
	Geocode(ctx context.Context, location string) (*domain.GeocodeResult, error)

	// ReverseGeocode переводит координаты в адрес
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.ReverseGeocodeResult, error)
}
