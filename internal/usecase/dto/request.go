package dto

// SearchPlacesRequest - запрос поиска мест вокруг точки
type SearchPlacesRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Query  string  `json:"q" validate:"required"`
	Radius int     `json:"radius" validate:"omitempty,min=1,max=50000"`
	Page   int     `json:"page" validate:"omitempty,min=1"`
	Limit  int     `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FeaturedPlacesRequest - запрос featured-выдачи
type FeaturedPlacesRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// GeocodeRequest - запрос прямого геокодирования
type GeocodeRequest struct {
	Location string `json:"location" validate:"required"`
}

// ReverseGeocodeRequest - запрос обратного геокодирования
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}
