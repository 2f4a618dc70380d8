package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

func main() {
	configPath := flag.String("config", "fotodiario.yaml", "Path to configuration file")
	query := flag.String("q", "", "Search query (matched against date and filename)")
	date := flag.String("date", "", "Exact date filter (YYYY-MM-DD)")
	mediaType := flag.String("type", "", "Media type filter: photo or video")
	limit := flag.Int("limit", 50, "Maximum results to print")
	flag.Parse()

	if *query == "" && *date == "" && *mediaType == "" {
		fmt.Fprintln(os.Stderr, "Error: give at least one filter: -q, -date or -type")
		os.Exit(1)
	}
	if *date != "" && !app.ValidDate(*date) {
		fmt.Fprintln(os.Stderr, "Error: -date must be YYYY-MM-DD")
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	library := app.NewLibrary(cfg.Library, zerolog.Nop())

	criteria := models.SearchCriteria{
		Query: *query,
		Date:  *date,
	}
	switch *mediaType {
	case "":
	case "photo":
		criteria.Type = models.TypePhoto
	case "video":
		criteria.Type = models.TypeVideo
	default:
		fmt.Fprintln(os.Stderr, "Error: -type must be photo or video")
		os.Exit(1)
	}

	results := library.Search(criteria)
	if *limit > 0 && len(results) > *limit {
		results = results[:*limit]
	}

	for _, rec := range results {
		fmt.Println(rec.FullPath)
	}
}
