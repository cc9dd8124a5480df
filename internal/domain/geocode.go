package domain

// GeocodeResult - результат прямого геокодирования
type GeocodeResult struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

// ReverseGeocodeResult - результат обратного геокодирования
type ReverseGeocodeResult struct {
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	DisplayName string `json:"displayName"`
}
