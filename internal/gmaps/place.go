package gmaps

import (
	"context"
	"fmt"

	"github.com/ternarybob/locus/internal/interfaces"
	"github.com/ternarybob/locus/internal/models"
)

// placeHandle is one search result before detail enrichment. It keeps
// the owning client so Details shares the same rate limiter.
type placeHandle struct {
	client *Client
	title  string
	url    string
	coords *models.Coordinates
	log    bool
}

var _ interfaces.PlaceHandle = (*placeHandle)(nil)

func (p *placeHandle) Title() string { return p.title }

func (p *placeHandle) URL() string { return p.url }

func (p *placeHandle) Coords() *models.Coordinates { return p.coords }

// Details fetches the place page and extracts the full detail fields.
// The returned record always carries the handle's title, URL and
// coordinates even when individual detail fields are missing.
func (p *placeHandle) Details(ctx context.Context) (*models.PlaceRecord, error) {
	if p.log {
		p.client.logger.Debug().
			Str("place", p.title).
			Msg("Fetching place details")
	}

	body, err := p.client.get(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("detail request for %q failed: %w", p.title, err)
	}

	record := parsePlaceDetails(body)
	record.Title = p.title
	record.URL = p.url
	record.Coords = p.coords

	// Prefer the title from the place page when the list entry had none
	if record.Title == "" {
		record.Title = titleFromPage(body)
	}

	return record, nil
}
