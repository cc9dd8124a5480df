package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
)

// MockGeodataRepository is a mock of GeodataRepository
type MockGeodataRepository struct {
	mock.Mock
}

func (m *MockGeodataRepository) QueryElements(ctx context.Context, query string) ([]domain.Element, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Element), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func newPlacesUseCase(geodata *MockGeodataRepository, cache *MockCacheRepository) *usecase.PlacesUseCase {
	normalizer := usecase.NewTagNormalizerWithSource(func(n int) int { return 0 })
	if cache == nil {
		// Типизированный nil в интерфейсе сломал бы проверку cacheRepo == nil
		return usecase.NewPlacesUseCase(geodata, nil, normalizer, zap.NewNop(), time.Minute, 25)
	}
	return usecase.NewPlacesUseCase(geodata, cache, normalizer, zap.NewNop(), time.Minute, 25)
}

// stubElements - пять безымянных node на известных смещениях к северу
func stubElements() []domain.Element {
	offsets := []float64{0.04, 0.01, 0.05, 0.02, 0.03}
	elements := make([]domain.Element, 0, len(offsets))
	for i, off := range offsets {
		elements = append(elements, domain.Element{
			Type: "node",
			ID:   int64(i + 1),
			Lat:  40.7 + off,
			Lon:  -74.0,
		})
	}
	return elements
}

func TestPlacesUseCase_SearchPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("paginated results sorted by distance", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(stubElements(), nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:    40.7,
			Lon:    -74.0,
			Query:  "restaurants",
			Radius: 1000,
			Page:   1,
			Limit:  2,
		})

		require.NoError(t, err)
		require.Len(t, result.Places, 2)

		// Ближайшие первыми: node с минимальными смещениями
		assert.Equal(t, int64(2), result.Places[0].ID)
		assert.Equal(t, int64(4), result.Places[1].ID)
		assert.LessOrEqual(t, result.Places[0].DistanceValue, result.Places[1].DistanceValue)

		assert.Equal(t, 1, result.Pagination.Page)
		assert.Equal(t, 2, result.Pagination.Limit)
		assert.Equal(t, 5, result.Pagination.TotalCount)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPrevPage)

		assert.Equal(t, "Unnamed Place", result.Places[0].Name)
		assert.Equal(t, "Restaurants", result.Places[0].Category)
		assert.True(t, strings.HasSuffix(result.Places[0].Distance, " mi"))

		mockGeodata.AssertExpectations(t)
	})

	t.Run("page beyond range yields empty slice", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(stubElements(), nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "restaurants",
			Page:  10,
			Limit: 2,
		})

		require.NoError(t, err)
		assert.Empty(t, result.Places)
		assert.False(t, result.Pagination.HasNextPage)
		assert.True(t, result.Pagination.HasPrevPage)
		assert.Equal(t, 3, result.Pagination.TotalPages)
	})

	t.Run("defaults applied for zero radius, page and limit", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, "around:5000,")
		})).Return(stubElements(), nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "restaurants",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Pagination.Page)
		assert.Equal(t, 10, result.Pagination.Limit)
		assert.Len(t, result.Places, 5)

		mockGeodata.AssertExpectations(t)
	})

	t.Run("way geometry resolves via center", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		elements := []domain.Element{
			{Type: "way", ID: 7, Center: &domain.Center{Lat: 40.71, Lon: -74.01}},
			{Type: "node", ID: 8}, // без координат - должен быть пропущен
		}
		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(elements, nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "parks",
		})

		require.NoError(t, err)
		require.Len(t, result.Places, 1)
		assert.Equal(t, int64(7), result.Places[0].ID)
		assert.Equal(t, 40.71, result.Places[0].Lat)
		assert.Equal(t, -74.01, result.Places[0].Lon)
	})

	t.Run("unknown category searches by name without error", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, `["name"~"totally made up",i]`)
		})).Return([]domain.Element{}, nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "Totally Made Up",
		})

		require.NoError(t, err)
		assert.Empty(t, result.Places)
		assert.Equal(t, 0, result.Pagination.TotalPages)

		mockGeodata.AssertExpectations(t)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(nil, errors.ErrUpstreamUnavailable)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "restaurants",
		})

		assert.Nil(t, result)
		assert.Equal(t, errors.ErrUpstreamUnavailable, err)
	})
}

func TestPlacesUseCase_SearchPlaces_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the provider", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		mockCache := &MockCacheRepository{}
		uc := newPlacesUseCase(mockGeodata, mockCache)

		cached := domain.SearchResult{
			Places:     []domain.Place{{ID: 42, Name: "Cached Cafe"}},
			Pagination: domain.Pagination{Page: 1, Limit: 10, TotalCount: 1, TotalPages: 1},
		}
		data, err := json.Marshal(&cached)
		require.NoError(t, err)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(data, nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "cafes",
		})

		require.NoError(t, err)
		require.Len(t, result.Places, 1)
		assert.Equal(t, int64(42), result.Places[0].ID)

		mockGeodata.AssertNotCalled(t, "QueryElements", mock.Anything, mock.Anything)
	})

	t.Run("cache miss stores the fresh result", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		mockCache := &MockCacheRepository{}
		uc := newPlacesUseCase(mockGeodata, mockCache)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)
		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(stubElements(), nil)

		result, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{
			Lat:   40.7,
			Lon:   -74.0,
			Query: "cafes",
		})

		require.NoError(t, err)
		assert.Len(t, result.Places, 5)

		mockCache.AssertExpectations(t)
		mockGeodata.AssertExpectations(t)
	})
}

func TestPlacesUseCase_GetPlaceByID(t *testing.T) {
	ctx := context.Background()

	t.Run("detail projection", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		elements := []domain.Element{{
			Type: "node",
			ID:   555,
			Lat:  40.71,
			Lon:  -74.02,
			Tags: domain.Tags{
				"name":          "Blue Bottle",
				"amenity":       "cafe",
				"opening_hours": "Mo-Fr 07:00-19:00; Sa-Su 08:00-17:00",
				"contact:email": "hello@bluebottle.example",
				"cuisine":       "coffee_shop",
				"takeaway":      "yes",
			},
		}}

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, "node(555);")
		})).Return(elements, nil)

		place, err := uc.GetPlaceByID(ctx, 555)

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "Blue Bottle", place.Name)
		assert.Equal(t, "Cafe", place.Category)
		assert.Equal(t, "open", place.Status)
		require.NotNil(t, place.Email)
		assert.Equal(t, "hello@bluebottle.example", *place.Email)
		require.NotNil(t, place.Cuisine)
		assert.Equal(t, "coffee_shop", *place.Cuisine)

		require.Len(t, place.Hours, 2)
		assert.True(t, place.Hours[0].Highlight)
		assert.False(t, place.Hours[1].Highlight)

		require.Len(t, place.Amenities, 1)
		assert.Equal(t, "takeout_dining", place.Amenities[0].Icon)

		// Дистанция в детальной проекции не считается
		assert.Empty(t, place.Distance)

		mockGeodata.AssertExpectations(t)
	})

	t.Run("category label from tag type with underscores", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		elements := []domain.Element{{
			Type: "node",
			ID:   556,
			Lat:  40.7,
			Lon:  -74.0,
			Tags: domain.Tags{"amenity": "place_of_worship"},
		}}
		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(elements, nil)

		place, err := uc.GetPlaceByID(ctx, 556)

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "Place of worship", place.Category)
	})

	t.Run("absent place is nil without error", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return([]domain.Element{}, nil)

		place, err := uc.GetPlaceByID(ctx, 999)

		assert.NoError(t, err)
		assert.Nil(t, place)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return(nil, errors.ErrUpstreamUnavailable)

		place, err := uc.GetPlaceByID(ctx, 999)

		assert.Nil(t, place)
		assert.Equal(t, errors.ErrUpstreamUnavailable, err)
	})
}

func TestPlacesUseCase_GetFeaturedPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("nearest per category, failed category skipped", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		near := func(id int64, off float64) []domain.Element {
			return []domain.Element{
				{Type: "node", ID: id, Lat: 40.7 + off, Lon: -74.0},
				{Type: "node", ID: id + 100, Lat: 40.7 + off*3, Lon: -74.0},
			}
		}

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, `"amenity"="restaurant"`)
		})).Return(near(1, 0.01), nil)

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, `"amenity"="cafe"`)
		})).Return(near(2, 0.02), nil)

		// bars падают - категория должна быть молча пропущена
		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, `"amenity"="bar"`)
		})).Return(nil, errors.ErrUpstreamUnavailable)

		mockGeodata.On("QueryElements", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, `"leisure"="park"`)
		})).Return(near(4, 0.03), nil)

		places, err := uc.GetFeaturedPlaces(ctx, 40.7, -74.0)

		require.NoError(t, err)
		require.Len(t, places, 3)

		// Порядок повторяет список категорий, не кросс-категорийную дистанцию
		assert.Equal(t, "Restaurants", places[0].Category)
		assert.Equal(t, int64(1), places[0].ID)
		assert.Equal(t, "Cafes", places[1].Category)
		assert.Equal(t, int64(2), places[1].ID)
		assert.Equal(t, "Parks", places[2].Category)
		assert.Equal(t, int64(4), places[2].ID)

		mockGeodata.AssertExpectations(t)
	})

	t.Run("empty categories are omitted", func(t *testing.T) {
		mockGeodata := &MockGeodataRepository{}
		uc := newPlacesUseCase(mockGeodata, nil)

		mockGeodata.On("QueryElements", ctx, mock.AnythingOfType("string")).
			Return([]domain.Element{}, nil)

		places, err := uc.GetFeaturedPlaces(ctx, 40.7, -74.0)

		require.NoError(t, err)
		assert.Empty(t, places)
	})
}

func TestPlacesUseCase_Categories(t *testing.T) {
	uc := newPlacesUseCase(&MockGeodataRepository{}, nil)

	categories := uc.Categories()

	require.NotEmpty(t, categories)
	assert.Equal(t, "restaurants", categories[0].ID)
	assert.Equal(t, "Restaurants", categories[0].Name)
	assert.Equal(t, len(domain.Categories), len(categories))
}
