// -----------------------------------------------------------------------
// CSV export - writes search results to a dated, query-named CSV file
// -----------------------------------------------------------------------

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/locus/internal/common"
	"github.com/ternarybob/locus/internal/models"
)

// csvHeader is the fixed 16-column schema of an export file.
var csvHeader = []string{
	"Place Name",
	"Address",
	"Latitude",
	"Longitude",
	"Phone Number",
	"Website",
	"Rating",
	"Google Maps URL",
	"Current Hours Status",
	"Monday Hours",
	"Tuesday Hours",
	"Wednesday Hours",
	"Thursday Hours",
	"Friday Hours",
	"Saturday Hours",
	"Sunday Hours",
}

var (
	invalidChars  = regexp.MustCompile(`[^\w-]`)
	repeatHyphens = regexp.MustCompile(`-+`)
)

// Service writes place records to CSV files in the configured directory.
type Service struct {
	outputDir string
	clock     common.Clock
	logger    arbor.ILogger
}

// NewService creates a CSV export service. The clock supplies the date
// used in generated filenames.
func NewService(outputDir string, clock common.Clock, logger arbor.ILogger) *Service {
	if outputDir == "" {
		outputDir = "."
	}
	return &Service{
		outputDir: outputDir,
		clock:     clock,
		logger:    logger,
	}
}

// ExportCSV writes the results to {YYYYMMDD}_{sanitized-query}.csv and
// returns the file path. An empty result set returns an empty path with
// no file created; a write failure returns the error so the caller can
// report it without aborting the run.
func (s *Service) ExportCSV(results []models.PlaceRecord, originalQuery string) (string, error) {
	if len(results) == 0 {
		s.logger.Info().Msg("No results to export")
		return "", nil
	}

	dateStamp := s.clock.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s.csv", dateStamp, SanitizeFilename(originalQuery))
	path := filepath.Join(s.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(recordToRow(result)); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file: %w", err)
	}

	s.logger.Info().
		Str("file", path).
		Int("rows", len(results)).
		Msg("Results exported")

	return path, nil
}

// recordToRow flattens one PlaceRecord into the 16-column schema.
// Missing coordinates and hours come out as empty strings.
func recordToRow(record models.PlaceRecord) []string {
	lat, lon := "", ""
	if record.Coords != nil {
		lat = record.Coords.Latitude
		lon = record.Coords.Longitude
	}

	rating := ""
	if record.Rating > 0 {
		rating = strconv.FormatFloat(record.Rating, 'f', -1, 64)
	}

	row := []string{
		record.Title,
		record.Address,
		lat,
		lon,
		record.PhoneNumber,
		record.Website,
		rating,
		record.URL,
		record.OpenHours.Currently,
	}

	for _, day := range models.Weekdays {
		row = append(row, record.OpenHours.Hours[day])
	}

	return row
}

// SanitizeFilename turns a raw query into a filename-safe slug: spaces
// become hyphens, everything outside word characters and hyphens is
// stripped, the result is lowercased, repeated hyphens collapse to one
// and leading/trailing hyphens are trimmed. Idempotent.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "-")
	name = invalidChars.ReplaceAllString(name, "")
	name = strings.ToLower(name)
	name = repeatHyphens.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
