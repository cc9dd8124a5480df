package usecase

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/places-microservice/internal/domain"
)

// Фолбэки для полей, которых нет в тегах. Провайдер часто не знает ни цен,
// ни статуса - контракт выдачи требует эти поля всегда, поэтому при
// отсутствии данных значение выбирается случайно (см. SPEC_FULL §9).
var (
	fallbackPriceLevels  = []string{"$", "$$", "$$$"}
	fallbackOpenStatuses = []string{"open", "open", "open", "closing-soon", "closed"}
)

// amenityCheck - одна позиция чеклиста удобств
type amenityCheck struct {
	matches func(domain.Tags) bool
	badge   domain.Amenity
}

// Чеклист фиксированный, порядок бейджей в выдаче повторяет порядок здесь
var amenityChecklist = []amenityCheck{
	{
		matches: func(t domain.Tags) bool {
			v := t.Get("internet_access")
			return v == "wlan" || v == "yes"
		},
		badge: domain.Amenity{Icon: "wifi", Label: "Free Wi-Fi"},
	},
	{
		matches: func(t domain.Tags) bool { return t.Get("wheelchair") == "yes" },
		badge:   domain.Amenity{Icon: "accessible", Label: "Wheelchair Accessible"},
	},
	{
		matches: func(t domain.Tags) bool {
			return t.Get("payment:credit_cards") == "yes" || t.Get("payment:visa") == "yes"
		},
		badge: domain.Amenity{Icon: "credit_card", Label: "Cards Accepted"},
	},
	{
		matches: func(t domain.Tags) bool { return t.Has("parking") },
		badge:   domain.Amenity{Icon: "local_parking", Label: "Parking Available"},
	},
	{
		matches: func(t domain.Tags) bool { return t.Get("outdoor_seating") == "yes" },
		badge:   domain.Amenity{Icon: "deck", Label: "Outdoor Seating"},
	},
	{
		matches: func(t domain.Tags) bool { return t.Get("takeaway") == "yes" },
		badge:   domain.Amenity{Icon: "takeout_dining", Label: "Takeaway"},
	},
	{
		matches: func(t domain.Tags) bool { return t.Get("delivery") == "yes" },
		badge:   domain.Amenity{Icon: "delivery_dining", Label: "Delivery"},
	},
}

// TagNormalizer - чистые функции извлечения типизированных полей из тегов.
// Источник случайности инжектируется, чтобы тесты могли его зафиксировать.
type TagNormalizer struct {
	intn func(n int) int
}

// NewTagNormalizer - нормализатор со стандартным источником случайности
func NewTagNormalizer() *TagNormalizer {
	return &TagNormalizer{intn: rand.Intn}
}

// NewTagNormalizerWithSource - нормализатор с заданным источником (для тестов)
func NewTagNormalizerWithSource(intn func(n int) int) *TagNormalizer {
	return &TagNormalizer{intn: intn}
}

// Rating парсит тег stars; рейтинг никогда не выдумывается
func (n *TagNormalizer) Rating(tags domain.Tags) *float64 {
	raw := tags.Get("stars")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ReviewCount парсит тег review_count
func (n *TagNormalizer) ReviewCount(tags domain.Tags) *int {
	raw := tags.Get("review_count")
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// PriceLevel: бесплатный доступ -> "Free", иначе price:range,
// иначе случайное значение из фиксированного набора
func (n *TagNormalizer) PriceLevel(tags domain.Tags) string {
	if tags.Get("fee") == "no" || tags.Get("access") == "yes" {
		return "Free"
	}
	if v := tags.Get("price:range"); v != "" {
		return v
	}
	return fallbackPriceLevels[n.intn(len(fallbackPriceLevels))]
}

// OpenStatus: наличие opening_hours трактуется как "open",
// отсутствие - случайный статус со смещением к "open"
func (n *TagNormalizer) OpenStatus(openingHours string) string {
	if openingHours != "" {
		return "open"
	}
	return fallbackOpenStatuses[n.intn(len(fallbackOpenStatuses))]
}

// Amenities сканирует чеклист и возвращает бейджи в его порядке;
// при нуле совпадений - одиночный фолбэк-бейдж
func (n *TagNormalizer) Amenities(tags domain.Tags) []domain.Amenity {
	var amenities []domain.Amenity
	for _, check := range amenityChecklist {
		if check.matches(tags) {
			amenities = append(amenities, check.badge)
		}
	}
	if len(amenities) == 0 {
		return []domain.Amenity{{Icon: "info", Label: "Contact for details"}}
	}
	return amenities
}

// ParseOpeningHours разбивает строку часов работы по ";" на сегменты.
// Первый сегмент помечается highlight. Пустой вход - nil.
func (n *TagNormalizer) ParseOpeningHours(openingHours string) []domain.OpeningHoursSegment {
	if openingHours == "" {
		return nil
	}

	lines := strings.Split(openingHours, ";")
	segments := make([]domain.OpeningHoursSegment, 0, len(lines))
	for i, line := range lines {
		parts := strings.Fields(strings.TrimSpace(line))

		days := "Unknown"
		hours := "Hours vary"
		if len(parts) > 0 {
			days = parts[0]
		}
		if len(parts) > 1 {
			hours = strings.Join(parts[1:], " ")
		}

		segments = append(segments, domain.OpeningHoursSegment{
			Days:      days,
			Hours:     hours,
			Highlight: i == 0,
		})
	}
	return segments
}

// SearchAddress - адрес для поисковой проекции: дом+улица, затем addr:full,
// затем текстовая заглушка
func (n *TagNormalizer) SearchAddress(tags domain.Tags) string {
	if tags.Has("addr:street") && tags.Has("addr:housenumber") {
		return tags.Get("addr:housenumber") + " " + tags.Get("addr:street")
	}
	if v := tags.Get("addr:full"); v != "" {
		return v
	}
	return "Address not available"
}

// DetailAddress - адрес детальной проекции: дом+улица с опциональным
// городом, затем addr:full; при отсутствии данных адрес не подставляется
func (n *TagNormalizer) DetailAddress(tags domain.Tags) *string {
	if tags.Has("addr:street") && tags.Has("addr:housenumber") {
		addr := tags.Get("addr:housenumber") + " " + tags.Get("addr:street")
		if city := tags.Get("addr:city"); city != "" {
			addr += ", " + city
		}
		return &addr
	}
	if v := tags.Get("addr:full"); v != "" {
		return &v
	}
	return nil
}

// Image возвращает URL картинки только из явных тегов
func (n *TagNormalizer) Image(tags domain.Tags) *string {
	if v := tags.GetAny("image", "image:url"); v != "" {
		return &v
	}
	return nil
}

// Photos - список фотографий из явных тегов; ничего не выдумывается
func (n *TagNormalizer) Photos(tags domain.Tags) []string {
	if v := tags.GetAny("image", "image:url"); v != "" {
		return []string{v}
	}
	return nil
}
