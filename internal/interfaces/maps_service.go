package interfaces

import (
	"context"

	"github.com/ternarybob/locus/internal/models"
)

// PlaceHandle represents one search result before detail enrichment.
// Title, URL and Coords are available immediately from the result list;
// everything else requires a Details call.
type PlaceHandle interface {
	// Title returns the place name from the result list.
	Title() string

	// URL returns the Google Maps URL for the place.
	URL() string

	// Coords returns the coordinates parsed from the result URL, or nil
	// when they could not be determined.
	Coords() *models.Coordinates

	// Details fetches the full detail fields for the place (address,
	// website, phone number, rating, opening hours).
	Details(ctx context.Context) (*models.PlaceRecord, error)
}

// MapsService defines the external search collaborator.
//
// Search returns an ordered sequence of place handles for the query and
// page. Implementations enforce a fixed inter-request delay between
// network interactions and only emit per-request logs when log is true.
type MapsService interface {
	Search(ctx context.Context, query string, page int, log bool) ([]PlaceHandle, error)
}
