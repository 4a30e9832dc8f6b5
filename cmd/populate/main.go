package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/undergradassistant/backend/internal/config"
	"github.com/undergradassistant/backend/internal/logging"
	"github.com/undergradassistant/backend/internal/scraper"
	"github.com/undergradassistant/backend/internal/store"
)

func main() {
	baseURL := flag.String("base-url", "", "Directory base URL (overrides SCRAPER_BASE_URL)")
	pages := flag.Int("pages", 0, "Total listing pages to walk (overrides SCRAPER_TOTAL_PAGES)")
	storePath := flag.String("store", "", "SQLite database path (overrides STORE_PATH)")
	clear := flag.Bool("clear", false, "Clear existing professor data before inserting")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *baseURL != "" {
		cfg.Scraper.BaseURL = *baseURL
	}
	if *pages > 0 {
		cfg.Scraper.TotalPages = *pages
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	var logger *logging.Logger
	if *dev || cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	st, err := store.Open(cfg.Store.Path, logger, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if *clear {
		if err := st.ClearProfessors(); err != nil {
			log.Fatalf("Failed to clear professors: %v", err)
		}
		fmt.Println("Cleared existing professor data.")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sc := scraper.New(scraper.Config{
		BaseURL:      cfg.Scraper.BaseURL,
		TotalPages:   cfg.Scraper.TotalPages,
		FetchTimeout: cfg.Scraper.FetchTimeout,
		PageDelay:    cfg.Scraper.PageDelay,
		ShortPause:   cfg.Scraper.ShortPause,
		LongPause:    cfg.Scraper.LongPause,
	}, logger, nil)

	result, err := sc.Run(ctx)
	if err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}

	inserted := st.InsertProfessors(result.Professors)

	fmt.Println("\nScraping Summary:")
	fmt.Printf("  Professor names found: %d\n", result.Report.Discovered)
	fmt.Printf("  Successfully scraped:  %d\n", result.Report.Succeeded)
	fmt.Printf("  Failed to scrape:      %d\n", result.Report.Failed)
	fmt.Printf("  Success rate:          %.1f%%\n", result.Report.SuccessRate*100)
	fmt.Printf("  Inserted into store:   %d\n", inserted)
	if len(result.FailedPages) > 0 {
		fmt.Printf("  Failed pages:          %v\n", result.FailedPages)
	}
	if n := len(result.FailedSlugs); n > 0 && n <= 10 {
		fmt.Printf("  Failed slugs:          %v\n", result.FailedSlugs)
	}

	stats, err := st.Stats()
	if err != nil {
		log.Fatalf("Failed to read store stats: %v", err)
	}
	fmt.Println("\nDatabase Statistics:")
	fmt.Printf("  Total professors: %d\n", stats.TotalProfessors)
	fmt.Printf("  Unique locations: %d\n", stats.UniqueLocations)

	areas, err := st.PopularResearchAreas()
	if err != nil {
		log.Fatalf("Failed to read research areas: %v", err)
	}
	if len(areas) > 0 {
		fmt.Println("\nTop Research Areas:")
		for i, area := range areas {
			if i == 5 {
				break
			}
			fmt.Printf("  %d. %s: %d professors\n", i+1, area.ResearchArea, area.Count)
		}
	}
}
