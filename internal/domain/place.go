package domain

// Place - нормализованное место для выдачи клиенту.
// Поля детальной проекции (Email, Amenities, Hours, Photos, Cuisine, Brand,
// Operator) заполняются только при запросе места по ID.
type Place struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Lat           float64               `json:"lat"`
	Lon           float64               `json:"lon"`
	Category      string                `json:"category"`
	Address       *string               `json:"address"`
	Distance      string                `json:"distance,omitempty"`
	DistanceValue float64               `json:"distanceValue,omitempty"`
	Rating        *float64              `json:"rating"`
	ReviewCount   *int                  `json:"reviewCount"`
	PriceLevel    string                `json:"priceLevel"`
	Status        string                `json:"status"`
	Image         *string               `json:"image"`
	Phone         *string               `json:"phone"`
	Website       *string               `json:"website"`
	Email         *string               `json:"email,omitempty"`
	OpeningHours  *string               `json:"openingHours"`
	Hours         []OpeningHoursSegment `json:"hours,omitempty"`
	Description   *string               `json:"description"`
	Amenities     []Amenity             `json:"amenities,omitempty"`
	Photos        []string              `json:"photos,omitempty"`
	Cuisine       *string               `json:"cuisine,omitempty"`
	Brand         *string               `json:"brand,omitempty"`
	Operator      *string               `json:"operator,omitempty"`
}

// Amenity - бейдж удобства {icon, label}
type Amenity struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// OpeningHoursSegment - один сегмент распарсенных часов работы
type OpeningHoursSegment struct {
	Days      string `json:"days"`
	Hours     string `json:"hours"`
	Highlight bool   `json:"highlight"`
}

// Pagination - метаданные постраничной выдачи.
// Инварианты: hasNextPage = page < totalPages, hasPrevPage = page > 1.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// SearchResult - результат поиска: места по возрастанию дистанции + пагинация
type SearchResult struct {
	Places     []Place    `json:"places"`
	Pagination Pagination `json:"pagination"`
}
