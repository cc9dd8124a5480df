package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/places-microservice/internal/domain"
)

// pinned возвращает нормализатор с зафиксированным источником случайности
func pinned(value int) *TagNormalizer {
	return NewTagNormalizerWithSource(func(n int) int { return value % n })
}

func TestTagNormalizer_Rating(t *testing.T) {
	n := pinned(0)

	t.Run("parses stars tag", func(t *testing.T) {
		rating := n.Rating(domain.Tags{"stars": "4.5"})
		require.NotNil(t, rating)
		assert.Equal(t, 4.5, *rating)
	})

	t.Run("never fabricated", func(t *testing.T) {
		assert.Nil(t, n.Rating(domain.Tags{}))
		assert.Nil(t, n.Rating(nil))
		assert.Nil(t, n.Rating(domain.Tags{"stars": "not-a-number"}))
	})
}

func TestTagNormalizer_ReviewCount(t *testing.T) {
	n := pinned(0)

	count := n.ReviewCount(domain.Tags{"review_count": "128"})
	require.NotNil(t, count)
	assert.Equal(t, 128, *count)

	assert.Nil(t, n.ReviewCount(nil))
	assert.Nil(t, n.ReviewCount(domain.Tags{"review_count": "many"}))
}

func TestTagNormalizer_PriceLevel(t *testing.T) {
	t.Run("free access wins", func(t *testing.T) {
		n := pinned(2)
		assert.Equal(t, "Free", n.PriceLevel(domain.Tags{"fee": "no"}))
		assert.Equal(t, "Free", n.PriceLevel(domain.Tags{"access": "yes"}))
	})

	t.Run("explicit price range", func(t *testing.T) {
		n := pinned(2)
		assert.Equal(t, "$10-20", n.PriceLevel(domain.Tags{"price:range": "$10-20"}))
	})

	t.Run("fallback is taken from the fixed set", func(t *testing.T) {
		assert.Equal(t, "$", pinned(0).PriceLevel(nil))
		assert.Equal(t, "$$", pinned(1).PriceLevel(nil))
		assert.Equal(t, "$$$", pinned(2).PriceLevel(nil))
	})
}

func TestTagNormalizer_OpenStatus(t *testing.T) {
	t.Run("opening hours present means open", func(t *testing.T) {
		assert.Equal(t, "open", pinned(4).OpenStatus("Mo-Fr 09:00-18:00"))
	})

	t.Run("absent hours pick a fallback status", func(t *testing.T) {
		assert.Equal(t, "open", pinned(0).OpenStatus(""))
		assert.Equal(t, "closing-soon", pinned(3).OpenStatus(""))
		assert.Equal(t, "closed", pinned(4).OpenStatus(""))
	})
}

func TestTagNormalizer_Amenities(t *testing.T) {
	n := pinned(0)

	t.Run("checklist order is preserved", func(t *testing.T) {
		amenities := n.Amenities(domain.Tags{
			"delivery":        "yes",
			"internet_access": "wlan",
			"wheelchair":      "yes",
		})

		require.Len(t, amenities, 3)
		assert.Equal(t, domain.Amenity{Icon: "wifi", Label: "Free Wi-Fi"}, amenities[0])
		assert.Equal(t, domain.Amenity{Icon: "accessible", Label: "Wheelchair Accessible"}, amenities[1])
		assert.Equal(t, domain.Amenity{Icon: "delivery_dining", Label: "Delivery"}, amenities[2])
	})

	t.Run("payment variants", func(t *testing.T) {
		amenities := n.Amenities(domain.Tags{"payment:visa": "yes"})
		require.Len(t, amenities, 1)
		assert.Equal(t, "credit_card", amenities[0].Icon)
	})

	t.Run("parking matches on presence", func(t *testing.T) {
		amenities := n.Amenities(domain.Tags{"parking": "surface"})
		require.Len(t, amenities, 1)
		assert.Equal(t, "local_parking", amenities[0].Icon)
	})

	t.Run("no matches yields single fallback badge", func(t *testing.T) {
		amenities := n.Amenities(nil)
		require.Len(t, amenities, 1)
		assert.Equal(t, domain.Amenity{Icon: "info", Label: "Contact for details"}, amenities[0])
	})
}

func TestTagNormalizer_ParseOpeningHours(t *testing.T) {
	n := pinned(0)

	t.Run("splits segments and highlights the first", func(t *testing.T) {
		segments := n.ParseOpeningHours("Mo-Fr 09:00-18:00; Sa 10:00-14:00")

		require.Len(t, segments, 2)
		assert.Equal(t, domain.OpeningHoursSegment{Days: "Mo-Fr", Hours: "09:00-18:00", Highlight: true}, segments[0])
		assert.Equal(t, domain.OpeningHoursSegment{Days: "Sa", Hours: "10:00-14:00", Highlight: false}, segments[1])
	})

	t.Run("missing pieces fall back to placeholders", func(t *testing.T) {
		segments := n.ParseOpeningHours("24/7")
		require.Len(t, segments, 1)
		assert.Equal(t, "24/7", segments[0].Days)
		assert.Equal(t, "Hours vary", segments[0].Hours)
	})

	t.Run("absent input yields absent result", func(t *testing.T) {
		assert.Nil(t, n.ParseOpeningHours(""))
	})
}

func TestTagNormalizer_Addresses(t *testing.T) {
	n := pinned(0)

	t.Run("house number plus street preferred", func(t *testing.T) {
		tags := domain.Tags{"addr:housenumber": "221B", "addr:street": "Baker Street"}
		assert.Equal(t, "221B Baker Street", n.SearchAddress(tags))
	})

	t.Run("falls back to full address", func(t *testing.T) {
		tags := domain.Tags{"addr:full": "1 Main St, Springfield"}
		assert.Equal(t, "1 Main St, Springfield", n.SearchAddress(tags))
	})

	t.Run("search projection marks unavailable", func(t *testing.T) {
		assert.Equal(t, "Address not available", n.SearchAddress(nil))
	})

	t.Run("detail projection appends city and omits when absent", func(t *testing.T) {
		tags := domain.Tags{
			"addr:housenumber": "10",
			"addr:street":      "Downing Street",
			"addr:city":        "London",
		}
		addr := n.DetailAddress(tags)
		require.NotNil(t, addr)
		assert.Equal(t, "10 Downing Street, London", *addr)

		assert.Nil(t, n.DetailAddress(nil))
	})
}

func TestTagNormalizer_Images(t *testing.T) {
	n := pinned(0)

	t.Run("image tags only, never fabricated", func(t *testing.T) {
		img := n.Image(domain.Tags{"image": "https://example.com/a.jpg"})
		require.NotNil(t, img)
		assert.Equal(t, "https://example.com/a.jpg", *img)

		img = n.Image(domain.Tags{"image:url": "https://example.com/b.jpg"})
		require.NotNil(t, img)
		assert.Equal(t, "https://example.com/b.jpg", *img)

		assert.Nil(t, n.Image(nil))
	})

	t.Run("photos wrap the same source", func(t *testing.T) {
		photos := n.Photos(domain.Tags{"image": "https://example.com/a.jpg"})
		assert.Equal(t, []string{"https://example.com/a.jpg"}, photos)

		assert.Nil(t, n.Photos(domain.Tags{}))
	})
}
