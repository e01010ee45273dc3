package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/locus/internal/common"
	"github.com/ternarybob/locus/internal/gmaps"
	"github.com/ternarybob/locus/internal/interfaces"
	"github.com/ternarybob/locus/internal/models"
	"github.com/ternarybob/locus/internal/services/export"
	"github.com/ternarybob/locus/internal/services/search"
)

// summaryLimit caps how many results the post-export summary prints.
const summaryLimit = 5

// newMapsService builds the maps collaborator from configuration.
// Package-level so tests can substitute a stub.
var newMapsService = func(config *common.Config, logger arbor.ILogger) interfaces.MapsService {
	return gmaps.NewClient(
		gmaps.WithHTTPClient(&http.Client{Timeout: config.Search.TimeoutDuration()}),
		gmaps.WithDelay(config.Search.DelayDuration()),
		gmaps.WithUserAgent(config.Search.UserAgent),
		gmaps.WithLogger(logger),
	)
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Argument validation is fatal and happens before any search work
	if searchDistance != 0 && searchZip == "" {
		return fmt.Errorf("--distance requires --zip to be specified")
	}
	if searchMaxResults <= 0 {
		return fmt.Errorf("--max-results must be a positive number")
	}
	if searchPage <= 0 {
		return fmt.Errorf("--page must be a positive number")
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	runID := common.NewRunID()
	logger = logger.WithCorrelationId(runID)

	// Flag default wins unless the user left it untouched and the config
	// carries its own default
	maxResults := searchMaxResults
	if !cmd.Flags().Changed("max-results") && config.Search.MaxResults > 0 {
		maxResults = config.Search.MaxResults
	}

	originalQuery := args[0]
	query := search.BuildLocationQuery(originalQuery, searchZip, searchDistance)

	req := models.SearchRequest{
		Query:      query,
		ZipCode:    searchZip,
		Distance:   searchDistance,
		Page:       searchPage,
		MaxResults: maxResults,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	maps := newMapsService(config, logger)
	client := search.NewClient(maps, logger)
	exporter := export.NewService(config.Output.Directory, common.SystemClock(), logger)

	logger.Info().Str("query", query).Msg("Please wait, this may take a moment")

	results := client.Search(ctx, req)

	// User interrupt aborts cleanly with a zero exit
	if ctx.Err() != nil {
		fmt.Println("\nSearch cancelled by user.")
		return nil
	}

	if len(results) == 0 {
		fmt.Println("\nNo results found. Try adjusting your search query.")
		return nil
	}

	fmt.Printf("\nFound %d result(s)\n", len(results))

	path, err := exporter.ExportCSV(results, originalQuery)
	if err != nil {
		logger.Warn().Err(err).Msg("Error writing CSV file, no export performed")
	}

	if path != "" {
		fmt.Printf("\nSuccess! Results exported to: %s\n", path)
		printSummary(results)
	}

	logger.Info().Msg("Search complete")
	return nil
}

// printSummary prints the first few results and a count of the rest.
func printSummary(results []models.PlaceRecord) {
	fmt.Println("\nSummary of results:")
	fmt.Println("------------------------------")

	for i, result := range results {
		if i >= summaryLimit {
			break
		}

		title := result.Title
		if title == "" {
			title = "Unknown"
		}
		address := result.Address
		if address == "" {
			address = "No address available"
		}

		fmt.Printf("%d. %s\n", i+1, title)
		fmt.Printf("   %s\n", address)
		if result.Rating > 0 {
			fmt.Printf("   Rating: %g/5.0\n", result.Rating)
		}
		fmt.Println()
	}

	if len(results) > summaryLimit {
		fmt.Printf("... and %d more result(s) in the CSV file\n", len(results)-summaryLimit)
	}
}
