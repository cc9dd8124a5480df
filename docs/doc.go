// Package docs Places Microservice API.
//
// Шлюз поиска мест поверх Overpass API и Nominatim.
// Принимает географические поисковые запросы, транслирует их в запросы
// к внешним геопровайдерам и приводит сырые элементы к единому формату
// места с пагинацией.
//
// Основные возможности:
// - Поиск мест по категории или свободному тексту в радиусе от точки
// - Детальная карточка места по OSM-идентификатору
// - Featured-выдача: ближайшее место по каждой из фиксированных категорий
// - Прямое и обратное геокодирование
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
