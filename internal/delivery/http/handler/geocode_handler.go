package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик прямого и обратного геокодирования
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Прямое геокодирование
// @Description Переводит текстовое название локации в координаты через провайдер геокодирования
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param location query string true "Название локации"
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return utils.SendError(c, errors.ErrMissingLocation)
	}

	req := dto.GeocodeRequest{Location: location}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.geocodeUC.Geocode(c.Context(), location)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Description Определяет город, регион и страну по координатам
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReverseGeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/reverse-geocode [get]
func (h *GeocodeHandler) ReverseGeocode(c *fiber.Ctx) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ReverseGeocodeRequest{Lat: lat, Lon: lon}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.geocodeUC.ReverseGeocode(c.Context(), lat, lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
