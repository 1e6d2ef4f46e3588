package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main compares 2-5 products through the upstream ranking service.
// Usage: go run cmd/compare/main.go -ids 1,2,3 [-weights precio=40,calificacion=60]
// This is a standalone CLI tool, not part of the main application
func main() {
	idsFlag := flag.String("ids", "", "comma-separated product ids (2 to 5)")
	weightsFlag := flag.String("weights", "", "per-criterion weights, e.g. precio=40,calificacion=60 (unnamed criteria are disabled)")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FOCOSHOP - Product Comparator")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.Load()
	api := services.NewStoreAPI(config.APIBaseURL)

	ids, err := parseIDs(*idsFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := comparison.ValidateCandidates(ids); err != nil {
		log.Fatalf("❌ %v", err)
	}

	set, err := buildCriteria(*weightsFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := set.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✓ Criteria ready (%d active)", set.ActiveCount())

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	// Resolve every candidate so a typoed id fails fast with a clear message.
	for _, id := range ids {
		p, err := api.FetchProduct(ctx, id)
		if err != nil {
			log.Fatalf("❌ Product %d could not be loaded: %v", id, err)
		}
		log.Printf("✓ Candidate %d: %s ($%.2f)", p.ID, p.Name, p.Price)
	}

	result, err := api.Compare(ctx, models.CompareRequest{
		ProductIDs: ids,
		Criteria:   set.Payload(),
	})
	if err != nil {
		log.Fatalf("❌ Comparison failed: %v", err)
	}

	fmt.Println()
	printRanking(result)
}

func parseIDs(raw string) ([]int, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing -ids flag")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// buildCriteria starts from the default equal split. Naming any criterion in
// -weights switches to exactly those criteria with the given weights.
func buildCriteria(raw string) (comparison.Set, error) {
	set := comparison.DefaultSet()
	if raw == "" {
		return set, nil
	}

	wanted := map[string]int{}
	for _, pair := range strings.Split(raw, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return set, fmt.Errorf("invalid weight entry %q, expected name=value", pair)
		}
		w, err := strconv.Atoi(value)
		if err != nil {
			return set, fmt.Errorf("invalid weight for %q", name)
		}
		wanted[name] = w
	}

	for i := range set.Criteria {
		name := set.Criteria[i].Name
		if _, ok := wanted[name]; !ok {
			if err := set.Toggle(name); err != nil {
				return set, fmt.Errorf("cannot disable %s: %w", name, err)
			}
		}
	}
	// Zero everything first so assignment order cannot trip the 100% cap.
	for name := range wanted {
		if err := set.AdjustWeight(name, 0); err != nil {
			return set, fmt.Errorf("unknown criterion %q", name)
		}
	}
	for name, w := range wanted {
		if err := set.AdjustWeight(name, w); err != nil {
			return set, fmt.Errorf("weight for %s: %w", name, err)
		}
	}
	return set, nil
}

func printRanking(result *models.ComparisonResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tPRODUCT\tCLOSENESS")
	for _, row := range result.Ranking {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.4f\n", row.Position, row.ProductID, row.Name, row.Closeness)
	}
	w.Flush()

	if result.Winner != nil {
		fmt.Println()
		fmt.Printf("🏆 Winner: %s (closeness %.4f)\n", result.Winner.Name, result.Winner.Closeness)
	}
}
