// -----------------------------------------------------------------------
// Search client - drives the maps collaborator and normalizes results
// -----------------------------------------------------------------------

package search

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/locus/internal/interfaces"
	"github.com/ternarybob/locus/internal/models"
)

// Client runs a place search against the maps collaborator and produces
// normalized PlaceRecords. Collaborator failures are absorbed: every path
// through Search yields a (possibly empty) result slice, never an error.
type Client struct {
	maps     interfaces.MapsService
	logger   arbor.ILogger
	validate *validator.Validate
}

// NewClient creates a search client around the given collaborator.
func NewClient(maps interfaces.MapsService, logger arbor.ILogger) *Client {
	return &Client{
		maps:     maps,
		logger:   logger,
		validate: validator.New(),
	}
}

// Search retrieves up to req.MaxResults places for the request and
// enriches each with detail fields. Per-place detail failures degrade to
// the basic fields already on the handle; a collaborator failure or an
// empty result page yields an empty slice.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) []models.PlaceRecord {
	if err := c.validate.Struct(req); err != nil {
		c.logger.Error().Err(err).Msg("Invalid search request")
		return nil
	}

	c.logger.Info().
		Str("query", req.Query).
		Int("page", req.Page).
		Msg("Searching Google Maps")

	// Collaborator logging stays off; progress is reported here instead
	handles, err := c.maps.Search(ctx, req.Query, req.Page, false)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error during search")
		return nil
	}

	if len(handles) == 0 {
		c.logger.Info().Str("query", req.Query).Msg("No results found")
		return nil
	}

	total := progressTotal(len(handles), req.MaxResults)
	results := make([]models.PlaceRecord, 0, req.MaxResults)
	for i, handle := range handles {
		if ctx.Err() != nil {
			break
		}

		c.logger.Info().
			Int("result", i+1).
			Int("total", total).
			Msg("Processing result")

		record, err := handle.Details(ctx)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Int("result", i+1).
				Str("place", handle.Title()).
				Msg("Could not get full details, keeping basic fields")
			record = basicRecord(handle)
		}

		results = append(results, *record)

		if len(results) >= req.MaxResults {
			break
		}
	}

	return results
}

// progressTotal is the number of results that will actually be processed:
// the result cap wins when the page returned more handles than requested.
func progressTotal(handles, maxResults int) int {
	if maxResults < handles {
		return maxResults
	}
	return handles
}

// basicRecord builds a degraded record from the fields available on the
// handle without a detail fetch.
func basicRecord(handle interfaces.PlaceHandle) *models.PlaceRecord {
	return &models.PlaceRecord{
		Title:     handle.Title(),
		URL:       handle.URL(),
		Coords:    handle.Coords(),
		OpenHours: models.OpenHours{Hours: map[string]string{}},
	}
}
