package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/places-microservice/internal/domain"
)

// escapeQueryValue экранирует значение для вставки в Overpass QL строку
var escapeQueryValue = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace

// buildSearchQuery строит Overpass QL запрос вокруг точки.
// Известная категория разворачивается в конъюнкцию tag-фильтров; любая
// другая строка трактуется как регистронезависимый поиск по тегу name.
// Неизвестная категория - не ошибка: каждый входной текст допустим.
func buildSearchQuery(lat, lon float64, radiusMeters int, category string, timeoutSec int) string {
	filters, ok := domain.CategoryFilters[strings.ToLower(category)]
	if !ok {
		term := escapeQueryValue(strings.ToLower(category))
		nameFilter := fmt.Sprintf(`["name"~"%s",i]`, term)
		return fmt.Sprintf(
			"[out:json][timeout:%d];(node%s(around:%d,%f,%f);way%s(around:%d,%f,%f););out center body;",
			timeoutSec,
			nameFilter, radiusMeters, lat, lon,
			nameFilter, radiusMeters, lat, lon,
		)
	}

	// Сортировка ключей ради детерминированного текста запроса
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tagFilters strings.Builder
	for _, k := range keys {
		tagFilters.WriteString(fmt.Sprintf(`["%s"="%s"]`, k, filters[k]))
	}

	return fmt.Sprintf(
		"[out:json][timeout:%d];(node%s(around:%d,%f,%f);way%s(around:%d,%f,%f););out center body;",
		timeoutSec,
		tagFilters.String(), radiusMeters, lat, lon,
		tagFilters.String(), radiusMeters, lat, lon,
	)
}

// buildDetailQuery строит запрос конкретного node/way по идентификатору
func buildDetailQuery(id int64, timeoutSec int) string {
	return fmt.Sprintf(
		"[out:json][timeout:%d];(node(%d);way(%d););out center body;",
		timeoutSec, id, id,
	)
}
