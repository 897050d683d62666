package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"lawbridge-backend/config"
	"lawbridge-backend/lawapi"
)

// Command-line check for the National Law Information credential. Runs a
// statute search (or a single detail fetch) against the live DRF API.
func main() {
	keyword := flag.String("keyword", "근로기준법", "statute search keyword")
	lawID := flag.String("law-id", "", "fetch article details for one law ID instead of searching")
	count := flag.Int("count", 5, "number of search results to request")
	flag.Parse()

	cfg := config.Load()
	client := lawapi.NewClient(cfg.LawOC, cfg.LawSearchURL, cfg.LawServiceURL)
	if !client.Configured() {
		log.Fatal("LAW_GO_KR_OC is not set; request a key at https://open.law.go.kr and add it to .env")
	}

	ctx := context.Background()

	if *lawID != "" {
		detail, err := client.GetLawDetail(ctx, *lawID)
		if err != nil {
			log.Fatalf("Failed to fetch law detail: %v", err)
		}

		fmt.Printf("✅ %s (ID: %s)\n", detail.LawName, detail.LawID)
		fmt.Printf("   Promulgated: %s\n", detail.PromulgationDate)
		fmt.Printf("   Enforced: %s\n", detail.EnforcementDate)
		fmt.Printf("   Articles: %d\n", len(detail.Articles))
		for _, article := range detail.Articles {
			fmt.Printf("   - %s %s\n", article.Number, article.Title)
		}
		return
	}

	result, err := client.SearchLaws(ctx, *keyword, "law", 1, *count)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("✅ %d laws match %q\n", result.TotalCount, *keyword)
	for _, law := range result.Laws {
		fmt.Printf("   %s  %s (%s, enforced %s)\n", law.LawID, law.LawName, law.LawType, law.EnforcementDate)
	}
}
