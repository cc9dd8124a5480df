package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlacesHandler - обработчик для поиска и карточек мест
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

// NewPlacesHandler - создание нового PlacesHandler
func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск мест вокруг точки
// @Description Ищет места в радиусе от координаты. Известная категория (restaurants, cafes, ...) разворачивается в tag-фильтры геопровайдера, любой другой текст ищется по названию. Выдача отсортирована по дистанции и пагинирована.
// @Tags Places
// @Accept json
// @Produce json
// @Param lat query number true "Широта точки поиска"
// @Param lon query number true "Долгота точки поиска"
// @Param q query string true "Категория или свободный текст"
// @Param radius query int false "Радиус поиска в метрах" default(5000)
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/search [get]
func (h *PlacesHandler) Search(c *fiber.Ctx) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	query := c.Query("q")
	if query == "" {
		return utils.SendError(c, errors.ErrMissingQuery)
	}

	req := dto.SearchPlacesRequest{
		Lat:    lat,
		Lon:    lon,
		Query:  query,
		Radius: c.QueryInt("radius"),
		Page:   c.QueryInt("page"),
		Limit:  c.QueryInt("limit"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placesUC.SearchPlaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Places, &result.Pagination)
}

// GetPlace godoc
// @Summary Карточка места по ID
// @Description Возвращает детальную карточку места по OSM-идентификатору node/way
// @Tags Places
// @Accept json
// @Produce json
// @Param id path int true "OSM идентификатор места"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/{id} [get]
func (h *PlacesHandler) GetPlace(c *fiber.Ctx) error {
	rawID := c.Params("id")
	if rawID == "" {
		return utils.SendError(c, errors.ErrInvalidPlaceID)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPlaceID)
	}

	place, err := h.placesUC.GetPlaceByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	if place == nil {
		return utils.SendError(c, errors.ErrPlaceNotFound)
	}

	return utils.SendSuccess(c, place, nil)
}

// Featured godoc
// @Summary Featured-места вокруг точки
// @Description Возвращает ближайшее место по каждой featured-категории (restaurants, cafes, bars, parks), не более 4 записей
// @Tags Places
// @Accept json
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/featured [get]
func (h *PlacesHandler) Featured(c *fiber.Ctx) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.FeaturedPlacesRequest{Lat: lat, Lon: lon}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	places, err := h.placesUC.GetFeaturedPlaces(c.Context(), lat, lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, places, nil)
}

// GetCategories godoc
// @Summary Список категорий
// @Description Возвращает статический список публичных категорий поиска
// @Tags Places
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Category}
// @Router /api/places/categories [get]
func (h *PlacesHandler) GetCategories(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.placesUC.Categories(), nil)
}

// parseCoordinates извлекает обязательные lat/lon из query-параметров
func parseCoordinates(c *fiber.Ctx) (float64, float64, error) {
	rawLat := c.Query("lat")
	rawLon := c.Query("lon")
	if rawLat == "" || rawLon == "" {
		return 0, 0, errors.ErrMissingCoordinates
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates
	}

	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates
	}

	return lat, lon, nil
}
