package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// GeodataRepository - доступ к пространственному провайдеру (Overpass API)
type GeodataRepository interface {
	// QueryElements выполняет текстовый запрос и возвращает сырые элементы
	QueryElements(ctx context.Context, query string) ([]domain.Element, error)
}
