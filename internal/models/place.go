package models

// SearchRequest represents a single place search invocation.
type SearchRequest struct {
	Query      string `json:"query" validate:"required"`
	ZipCode    string `json:"zip_code,omitempty"`
	Distance   int    `json:"distance_miles,omitempty" validate:"min=0"`
	Page       int    `json:"page" validate:"min=1"`
	MaxResults int    `json:"max_results" validate:"min=1"`
}

// Coordinates represents a geographic point. Values are kept as strings
// because scraped results may omit them entirely.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// OpenHours represents a place's opening hours as reported by Google Maps.
// Currently is the live status line ("Open", "Closed - Opens 9AM", ...);
// Hours maps full weekday names ("Monday") to their hours string.
type OpenHours struct {
	Currently string            `json:"currently,omitempty"`
	Hours     map[string]string `json:"hours,omitempty"`
}

// PlaceRecord represents a single place result after detail enrichment.
// Detail fields are empty strings when enrichment failed or the place
// does not publish them.
type PlaceRecord struct {
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Coords      *Coordinates `json:"coords,omitempty"`
	Address     string       `json:"address,omitempty"`
	Website     string       `json:"website,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	OpenHours   OpenHours    `json:"open_hours"`
}

// Weekdays lists weekday names in CSV column order (Monday-first).
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
