package domain

// Tags - свободный набор key/value тегов элемента геоданных.
// Ключи произвольные, набор может полностью отсутствовать.
type Tags map[string]string

// Get возвращает значение тега или пустую строку
func (t Tags) Get(key string) string {
	if t == nil {
		return ""
	}
	return t[key]
}

// GetAny возвращает первое непустое значение из перечисленных ключей
func (t Tags) GetAny(keys ...string) string {
	for _, key := range keys {
		if v := t.Get(key); v != "" {
			return v
		}
	}
	return ""
}

// Has сообщает, присутствует ли тег с непустым значением
func (t Tags) Has(key string) bool {
	return t.Get(key) != ""
}

// Center - центроид way-геометрии
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element - сырой элемент ответа геопровайдера (node или way).
// У node координаты лежат в Lat/Lon, у way - в Center.
type Element struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat,omitempty"`
	Lon    float64 `json:"lon,omitempty"`
	Center *Center `json:"center,omitempty"`
	Tags   Tags    `json:"tags,omitempty"`
}

// Coordinate возвращает координату элемента: прямые lat/lon у node,
// центроид у way. ok=false если координат нет вовсе.
func (e Element) Coordinate() (lat, lon float64, ok bool) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}
