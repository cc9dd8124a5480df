package domain

// Category - публичная категория для фронтенда
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryFilters - таблица соответствия категории набору обязательных
// tag-равенств геопровайдера. Неизменяемая справочная таблица; ключи в
// нижнем регистре, поиск по ней регистронезависимый.
var CategoryFilters = map[string]map[string]string{
	"restaurants":   {"amenity": "restaurant"},
	"nightlife":     {"amenity": "bar"},
	"bars":          {"amenity": "bar"},
	"churches":      {"amenity": "place_of_worship", "religion": "christian"},
	"gyms":          {"leisure": "fitness_centre"},
	"cafes":         {"amenity": "cafe"},
	"parks":         {"leisure": "park"},
	"hospitals":     {"amenity": "hospital"},
	"pharmacies":    {"amenity": "pharmacy"},
	"schools":       {"amenity": "school"},
	"supermarkets":  {"shop": "supermarket"},
	"banks":         {"amenity": "bank"},
	"atms":          {"amenity": "atm"},
	"gas_stations":  {"amenity": "fuel"},
	"hotels":        {"tourism": "hotel"},
	"museums":       {"tourism": "museum"},
	"libraries":     {"amenity": "library"},
	"post_offices":  {"amenity": "post_office"},
	"police":        {"amenity": "police"},
	"fire_stations": {"amenity": "fire_station"},
}

// Categories - список категорий, отдаваемый GET /api/places/categories
var Categories = []Category{
	{ID: "restaurants", Name: "Restaurants", Icon: "restaurant"},
	{ID: "nightlife", Name: "Nightlife", Icon: "local_bar"},
	{ID: "churches", Name: "Churches", Icon: "church"},
	{ID: "gyms", Name: "Gyms", Icon: "fitness_center"},
	{ID: "cafes", Name: "Cafes", Icon: "local_cafe"},
	{ID: "parks", Name: "Parks", Icon: "park"},
	{ID: "hospitals", Name: "Hospitals", Icon: "local_hospital"},
	{ID: "pharmacies", Name: "Pharmacies", Icon: "local_pharmacy"},
	{ID: "supermarkets", Name: "Supermarkets", Icon: "local_grocery_store"},
	{ID: "banks", Name: "Banks", Icon: "account_balance"},
	{ID: "hotels", Name: "Hotels", Icon: "hotel"},
	{ID: "museums", Name: "Museums", Icon: "museum"},
}

// FeaturedCategories - фиксированный список категорий для featured-выдачи
var FeaturedCategories = []string{"restaurants", "cafes", "bars", "parks"}
