package errors

import "net/http"

var (
	ErrMissingCoordinates = New(
		"MISSING_COORDINATES",
		"Latitude and longitude are required",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrMissingQuery = New(
		"MISSING_QUERY",
		"Search query (q) is required",
		http.StatusBadRequest,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Location query is required",
		http.StatusBadRequest,
	)

	ErrInvalidPlaceID = New(
		"INVALID_PLACE_ID",
		"Place ID must be a numeric OSM identifier",
		http.StatusBadRequest,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_ERROR",
		"Upstream provider request failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
