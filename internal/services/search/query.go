package search

import "fmt"

// BuildLocationQuery combines a free-text query with optional ZIP code and
// distance into a single search string.
//
// Google Maps does not support a distance operator directly, but phrasing
// the radius into the query biases results toward it.
func BuildLocationQuery(base, zipCode string, distance int) string {
	if zipCode == "" {
		return base
	}
	if distance > 0 {
		return fmt.Sprintf("%s within %d miles of %s", base, distance, zipCode)
	}
	return fmt.Sprintf("%s near %s", base, zipCode)
}
