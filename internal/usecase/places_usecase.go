package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase/dto"
)

const (
	defaultSearchRadius = 5000
	defaultPage         = 1
	defaultLimit        = 10
	featuredRadius      = 3000
	featuredMaxPlaces   = 4
)

// PlacesUseCase - оркестрация поиска мест: построение запроса, вызов
// геопровайдера, нормализация тегов, сортировка по дистанции, пагинация
type PlacesUseCase struct {
	geodataRepo  repository.GeodataRepository
	cacheRepo    repository.CacheRepository // nil, если кеш выключен
	normalizer   *TagNormalizer
	logger       *zap.Logger
	cacheTTL     time.Duration
	queryTimeout int
}

// NewPlacesUseCase - создание нового PlacesUseCase
func NewPlacesUseCase(
	geodataRepo repository.GeodataRepository,
	cacheRepo repository.CacheRepository,
	normalizer *TagNormalizer,
	logger *zap.Logger,
	cacheTTL time.Duration,
	queryTimeout int,
) *PlacesUseCase {
	return &PlacesUseCase{
		geodataRepo:  geodataRepo,
		cacheRepo:    cacheRepo,
		normalizer:   normalizer,
		logger:       logger,
		cacheTTL:     cacheTTL,
		queryTimeout: queryTimeout,
	}
}

// SearchPlaces - поиск мест вокруг точки с пагинацией.
// Дистанция каждого места считается от координаты запроса.
func (uc *PlacesUseCase) SearchPlaces(ctx context.Context, req dto.SearchPlacesRequest) (*domain.SearchResult, error) {
	if req.Radius <= 0 {
		req.Radius = defaultSearchRadius
	}
	if req.Page <= 0 {
		req.Page = defaultPage
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	cacheKey := fmt.Sprintf("places:search:%.6f:%.6f:%s:%d:%d:%d",
		req.Lat, req.Lon, strings.ToLower(req.Query), req.Radius, req.Page, req.Limit)

	if cached := uc.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	query := buildSearchQuery(req.Lat, req.Lon, req.Radius, req.Query, uc.queryTimeout)

	elements, err := uc.geodataRepo.QueryElements(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to query geodata provider",
			zap.String("category", req.Query),
			zap.Error(err))
		return nil, err
	}

	categoryLabel := capitalizeFirst(req.Query)

	allPlaces := make([]domain.Place, 0, len(elements))
	for _, element := range elements {
		lat, lon, ok := element.Coordinate()
		if !ok {
			// Элемент без координат бесполезен для выдачи по дистанции
			continue
		}

		distance := utils.HaversineDistance(req.Lat, req.Lon, lat, lon)
		allPlaces = append(allPlaces, uc.buildSearchPlace(element, lat, lon, distance, categoryLabel))
	}

	sort.Slice(allPlaces, func(i, j int) bool {
		return allPlaces[i].DistanceValue < allPlaces[j].DistanceValue
	})

	result := &domain.SearchResult{
		Places:     paginate(allPlaces, req.Page, req.Limit),
		Pagination: buildPagination(len(allPlaces), req.Page, req.Limit),
	}

	uc.cacheSet(ctx, cacheKey, result)

	return result, nil
}

// GetPlaceByID - детальная карточка места по идентификатору.
// Отсутствие элемента - не ошибка: возвращается (nil, nil).
func (uc *PlacesUseCase) GetPlaceByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := buildDetailQuery(id, uc.queryTimeout)

	elements, err := uc.geodataRepo.QueryElements(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to fetch place details", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if len(elements) == 0 {
		return nil, nil
	}

	place := uc.buildDetailPlace(elements[0])
	return &place, nil
}

// GetFeaturedPlaces - ближайшее место по каждой featured-категории.
// Категории опрашиваются параллельно; упавшая категория пропускается,
// порядок выдачи повторяет порядок списка категорий.
func (uc *PlacesUseCase) GetFeaturedPlaces(ctx context.Context, lat, lon float64) ([]domain.Place, error) {
	results := make([]*domain.Place, len(domain.FeaturedCategories))

	var wg sync.WaitGroup
	for i, category := range domain.FeaturedCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()

			res, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
				Lat:    lat,
				Lon:    lon,
				Query:  category,
				Radius: featuredRadius,
			})
			if err != nil {
				uc.logger.Warn("Featured category search failed, skipping",
					zap.String("category", category),
					zap.Error(err))
				return
			}
			if len(res.Places) == 0 {
				return
			}

			top := res.Places[0]
			top.Category = capitalizeFirst(category)
			results[i] = &top
		}(i, category)
	}
	wg.Wait()

	featured := make([]domain.Place, 0, featuredMaxPlaces)
	for _, p := range results {
		if p == nil {
			continue
		}
		if len(featured) == featuredMaxPlaces {
			break
		}
		featured = append(featured, *p)
	}

	return featured, nil
}

// Categories - статический список публичных категорий
func (uc *PlacesUseCase) Categories() []domain.Category {
	return domain.Categories
}

// buildSearchPlace - поисковая проекция места
func (uc *PlacesUseCase) buildSearchPlace(element domain.Element, lat, lon, distance float64, category string) domain.Place {
	tags := element.Tags
	address := uc.normalizer.SearchAddress(tags)

	return domain.Place{
		ID:            element.ID,
		Name:          placeName(tags),
		Lat:           lat,
		Lon:           lon,
		Category:      category,
		Address:       &address,
		Distance:      fmt.Sprintf("%.1f mi", distance),
		DistanceValue: distance,
		Rating:        uc.normalizer.Rating(tags),
		ReviewCount:   uc.normalizer.ReviewCount(tags),
		PriceLevel:    uc.normalizer.PriceLevel(tags),
		Status:        uc.normalizer.OpenStatus(tags.Get("opening_hours")),
		Image:         uc.normalizer.Image(tags),
		Phone:         optionalTag(tags, "phone", "contact:phone"),
		Website:       optionalTag(tags, "website", "contact:website"),
		OpeningHours:  optionalTag(tags, "opening_hours"),
		Description:   optionalTag(tags, "description"),
	}
}

// buildDetailPlace - детальная проекция: добавляет email, кухню, бренд,
// оператора, разобранные часы, фотографии и список удобств
func (uc *PlacesUseCase) buildDetailPlace(element domain.Element) domain.Place {
	tags := element.Tags
	lat, lon, _ := element.Coordinate()

	categoryType := tags.GetAny("amenity", "leisure", "tourism", "shop")
	if categoryType == "" {
		categoryType = "place"
	}

	return domain.Place{
		ID:           element.ID,
		Name:         placeName(tags),
		Lat:          lat,
		Lon:          lon,
		Category:     strings.ReplaceAll(capitalizeFirst(categoryType), "_", " "),
		Address:      uc.normalizer.DetailAddress(tags),
		Rating:       uc.normalizer.Rating(tags),
		ReviewCount:  uc.normalizer.ReviewCount(tags),
		PriceLevel:   uc.normalizer.PriceLevel(tags),
		Status:       uc.normalizer.OpenStatus(tags.Get("opening_hours")),
		Image:        uc.normalizer.Image(tags),
		Phone:        optionalTag(tags, "phone", "contact:phone"),
		Website:      optionalTag(tags, "website", "contact:website"),
		Email:        optionalTag(tags, "email", "contact:email"),
		OpeningHours: optionalTag(tags, "opening_hours"),
		Hours:        uc.normalizer.ParseOpeningHours(tags.Get("opening_hours")),
		Description:  optionalTag(tags, "description", "note"),
		Amenities:    uc.normalizer.Amenities(tags),
		Photos:       uc.normalizer.Photos(tags),
		Cuisine:      optionalTag(tags, "cuisine"),
		Brand:        optionalTag(tags, "brand"),
		Operator:     optionalTag(tags, "operator"),
	}
}

func (uc *PlacesUseCase) cacheGet(ctx context.Context, key string) *domain.SearchResult {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		uc.logger.Warn("Failed to unmarshal cached search result", zap.String("key", key), zap.Error(err))
		return nil
	}

	uc.logger.Debug("Search cache hit", zap.String("key", key))
	return &result
}

func (uc *PlacesUseCase) cacheSet(ctx context.Context, key string, result *domain.SearchResult) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		uc.logger.Warn("Failed to marshal search result for cache", zap.Error(err))
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search result", zap.String("key", key), zap.Error(err))
	}
}

func placeName(tags domain.Tags) string {
	if name := tags.Get("name"); name != "" {
		return name
	}
	return "Unnamed Place"
}

// optionalTag возвращает первое непустое значение из ключей или nil
func optionalTag(tags domain.Tags, keys ...string) *string {
	if v := tags.GetAny(keys...); v != "" {
		return &v
	}
	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func paginate(places []domain.Place, page, limit int) []domain.Place {
	start := (page - 1) * limit
	if start >= len(places) {
		return []domain.Place{}
	}

	end := start + limit
	if end > len(places) {
		end = len(places)
	}
	return places[start:end]
}

func buildPagination(totalCount, page, limit int) domain.Pagination {
	totalPages := (totalCount + limit - 1) / limit

	return domain.Pagination{
		Page:        page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
