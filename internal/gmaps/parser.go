package gmaps

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/locus/internal/models"
)

// searchResult is one entry parsed from a search page.
type searchResult struct {
	Title  string
	URL    string
	Coords *models.Coordinates
}

var (
	// Place links embedded in the search page carry the coordinates in
	// the /@lat,lng path segment.
	placeURLPattern = regexp.MustCompile(`https://www\.google\.com/maps/place/[^/"\\]+/@-?\d+\.\d+,-?\d+\.\d+[^"\\ ]*`)
	titlePattern    = regexp.MustCompile(`/maps/place/([^/"\\]+)/@`)
	coordsPattern   = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)

	ratingPattern = regexp.MustCompile(`([0-9](?:\.[0-9])?) stars`)
	statusPattern = regexp.MustCompile(`(Open 24 hours|Open(?: ⋅ [^<"]+)?|Closed(?: ⋅ [^<"]+)?|Temporarily closed|Permanently closed)`)
)

// parseSearchResults extracts place entries from a search page body.
// Order follows first appearance; duplicate place URLs are dropped.
func parseSearchResults(body string) []searchResult {
	var results []searchResult
	seen := make(map[string]struct{})

	for _, match := range placeURLPattern.FindAllString(body, -1) {
		placeURL := strings.TrimRight(match, `\`)

		key := placeURL
		if idx := strings.Index(placeURL, "/@"); idx > 0 {
			key = placeURL[:idx]
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		results = append(results, searchResult{
			Title:  titleFromURL(placeURL),
			URL:    placeURL,
			Coords: coordsFromURL(placeURL),
		})
	}

	return results
}

// titleFromURL recovers the place name from the /maps/place/<name> path
// segment.
func titleFromURL(placeURL string) string {
	m := titlePattern.FindStringSubmatch(placeURL)
	if m == nil {
		return ""
	}

	name := strings.ReplaceAll(m[1], "+", " ")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.TrimSpace(name)
}

// coordsFromURL parses the @lat,lng segment of a place URL.
func coordsFromURL(placeURL string) *models.Coordinates {
	m := coordsPattern.FindStringSubmatch(placeURL)
	if m == nil {
		return nil
	}
	return &models.Coordinates{
		Latitude:  m[1],
		Longitude: m[2],
	}
}

// parsePlaceDetails extracts detail fields from a place page. Fields that
// cannot be located are left empty; the caller fills in title, URL and
// coordinates from the search handle.
func parsePlaceDetails(body string) *models.PlaceRecord {
	record := &models.PlaceRecord{
		OpenHours: models.OpenHours{Hours: map[string]string{}},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return record
	}

	// Google Maps marks the detail rows with stable data-item-id hooks
	record.Address = ariaValue(doc, `[data-item-id="address"]`, "Address")
	record.PhoneNumber = ariaValue(doc, `[data-item-id^="phone:tel:"]`, "Phone")

	if href, ok := doc.Find(`a[data-item-id="authority"]`).Attr("href"); ok {
		record.Website = strings.TrimSpace(href)
	}

	if m := ratingPattern.FindStringSubmatch(body); m != nil {
		if rating, err := strconv.ParseFloat(m[1], 64); err == nil {
			record.Rating = rating
		}
	}

	record.OpenHours.Currently = currentStatus(doc)
	record.OpenHours.Hours = weekdayHours(doc)

	return record
}

// ariaValue returns the aria-label of the first matching element with the
// "<prefix>: " lead-in stripped.
func ariaValue(doc *goquery.Document, selector, prefix string) string {
	label, ok := doc.Find(selector).First().Attr("aria-label")
	if !ok {
		return ""
	}
	label = strings.TrimSpace(label)
	label = strings.TrimPrefix(label, prefix+": ")
	return strings.TrimSpace(label)
}

// currentStatus extracts the live open/closed status line.
func currentStatus(doc *goquery.Document) string {
	status := ""
	doc.Find("span, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if m := statusPattern.FindString(text); m != "" && m == text {
			status = m
			return false
		}
		return true
	})
	return status
}

// weekdayHours extracts per-day opening hours from the hours table.
func weekdayHours(doc *goquery.Document) map[string]string {
	hours := make(map[string]string)

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		day := normalizeWeekday(cells.First().Text())
		if day == "" {
			return
		}
		if _, ok := hours[day]; ok {
			return
		}

		hours[day] = strings.TrimSpace(cells.Eq(1).Text())
	})

	return hours
}

// normalizeWeekday maps a cell value onto a full weekday name, or ""
// when the cell is not a weekday.
func normalizeWeekday(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	for _, day := range models.Weekdays {
		if strings.HasPrefix(cell, strings.ToLower(day)) {
			return day
		}
	}
	return ""
}

// titleFromPage falls back to the og:title meta tag for the place name.
func titleFromPage(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	title = strings.TrimSuffix(strings.TrimSpace(title), " - Google Maps")
	return title
}
