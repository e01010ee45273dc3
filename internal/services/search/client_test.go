package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/locus/internal/interfaces"
	"github.com/ternarybob/locus/internal/models"
)

// stubHandle is a canned place handle for client tests.
type stubHandle struct {
	title      string
	url        string
	coords     *models.Coordinates
	record     *models.PlaceRecord
	detailsErr error

	detailCalls int
}

func (h *stubHandle) Title() string               { return h.title }
func (h *stubHandle) URL() string                 { return h.url }
func (h *stubHandle) Coords() *models.Coordinates { return h.coords }

func (h *stubHandle) Details(ctx context.Context) (*models.PlaceRecord, error) {
	h.detailCalls++
	if h.detailsErr != nil {
		return nil, h.detailsErr
	}
	return h.record, nil
}

// stubMaps is a canned collaborator that counts Search invocations.
type stubMaps struct {
	handles     []interfaces.PlaceHandle
	err         error
	searchCalls int
}

func (m *stubMaps) Search(ctx context.Context, query string, page int, log bool) ([]interfaces.PlaceHandle, error) {
	m.searchCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.handles, nil
}

func newStubHandles(n int) []interfaces.PlaceHandle {
	handles := make([]interfaces.PlaceHandle, 0, n)
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("Place %d", i+1)
		handles = append(handles, &stubHandle{
			title: title,
			url:   fmt.Sprintf("https://www.google.com/maps/place/place-%d", i+1),
			record: &models.PlaceRecord{
				Title:     title,
				Address:   fmt.Sprintf("%d Main St", i+1),
				OpenHours: models.OpenHours{Hours: map[string]string{}},
			},
		})
	}
	return handles
}

func testRequest(query string, maxResults int) models.SearchRequest {
	return models.SearchRequest{
		Query:      query,
		Page:       1,
		MaxResults: maxResults,
	}
}

func TestSearch_TruncatesToMaxResults(t *testing.T) {
	maps := &stubMaps{handles: newStubHandles(30)}
	client := NewClient(maps, arbor.NewLogger())

	results := client.Search(context.Background(), testRequest("coffee", 5))

	require.Len(t, results, 5)
	assert.Equal(t, "Place 1", results[0].Title)
	assert.Equal(t, "Place 5", results[4].Title)

	// Detail enrichment stops once max results is reached
	for i, h := range maps.handles {
		stub := h.(*stubHandle)
		if i < 5 {
			assert.Equal(t, 1, stub.detailCalls, "handle %d", i)
		} else {
			assert.Zero(t, stub.detailCalls, "handle %d", i)
		}
	}
}

func TestProgressTotal(t *testing.T) {
	tests := []struct {
		name       string
		handles    int
		maxResults int
		want       int
	}{
		{"cap below page size", 20, 5, 5},
		{"cap above page size", 3, 20, 3},
		{"cap equals page size", 20, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progressTotal(tt.handles, tt.maxResults))
		})
	}
}

func TestSearch_CollaboratorErrorYieldsEmpty(t *testing.T) {
	maps := &stubMaps{err: errors.New("blocked")}
	client := NewClient(maps, arbor.NewLogger())

	results := client.Search(context.Background(), testRequest("coffee", 5))

	assert.Empty(t, results)
	assert.Equal(t, 1, maps.searchCalls)
}

func TestSearch_NoResultsYieldsEmpty(t *testing.T) {
	maps := &stubMaps{}
	client := NewClient(maps, arbor.NewLogger())

	results := client.Search(context.Background(), testRequest("coffee", 5))

	assert.Empty(t, results)
}

func TestSearch_DetailFailureDegradesToBasicFields(t *testing.T) {
	coords := &models.Coordinates{Latitude: "40.7", Longitude: "-74.0"}
	maps := &stubMaps{handles: []interfaces.PlaceHandle{
		&stubHandle{
			title:      "Broken Cafe",
			url:        "https://www.google.com/maps/place/broken-cafe",
			coords:     coords,
			detailsErr: errors.New("detail fetch failed"),
		},
	}}
	client := NewClient(maps, arbor.NewLogger())

	results := client.Search(context.Background(), testRequest("coffee", 5))

	require.Len(t, results, 1)
	got := results[0]
	assert.Equal(t, "Broken Cafe", got.Title)
	assert.Equal(t, "https://www.google.com/maps/place/broken-cafe", got.URL)
	assert.Equal(t, coords, got.Coords)
	assert.Empty(t, got.Address)
	assert.Empty(t, got.Website)
	assert.Empty(t, got.PhoneNumber)
	assert.Zero(t, got.Rating)
	assert.Empty(t, got.OpenHours.Currently)
	assert.Empty(t, got.OpenHours.Hours)
}

func TestSearch_DetailFailureDoesNotStopLoop(t *testing.T) {
	handles := newStubHandles(3)
	handles[1].(*stubHandle).detailsErr = errors.New("boom")
	maps := &stubMaps{handles: handles}
	client := NewClient(maps, arbor.NewLogger())

	results := client.Search(context.Background(), testRequest("coffee", 10))

	require.Len(t, results, 3)
	assert.Equal(t, "Place 2", results[1].Title)
	assert.Empty(t, results[1].Address)
	assert.Equal(t, "3 Main St", results[2].Address)
}

func TestSearch_InvalidRequestNeverHitsCollaborator(t *testing.T) {
	maps := &stubMaps{handles: newStubHandles(3)}
	client := NewClient(maps, arbor.NewLogger())

	tests := []struct {
		name string
		req  models.SearchRequest
	}{
		{"zero max results", models.SearchRequest{Query: "coffee", Page: 1, MaxResults: 0}},
		{"zero page", models.SearchRequest{Query: "coffee", Page: 0, MaxResults: 5}},
		{"empty query", models.SearchRequest{Page: 1, MaxResults: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := client.Search(context.Background(), tt.req)
			assert.Empty(t, results)
			assert.Zero(t, maps.searchCalls)
		})
	}
}

func TestSearch_CancelledContextStopsEnrichment(t *testing.T) {
	maps := &stubMaps{handles: newStubHandles(3)}
	client := NewClient(maps, arbor.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := client.Search(ctx, testRequest("coffee", 5))

	assert.Empty(t, results)
	for _, h := range maps.handles {
		assert.Zero(t, h.(*stubHandle).detailCalls)
	}
}
