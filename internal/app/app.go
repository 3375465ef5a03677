package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"grocery-optimizer/internal/catalog"
	"grocery-optimizer/internal/config"
	"grocery-optimizer/internal/metrics"
	"grocery-optimizer/internal/optimizer"
	"grocery-optimizer/internal/proposal"
)

// App holds the application's dependencies.
type App struct {
	cfg          *config.Config
	catalogRepo  *catalog.Repository
	proposalRepo *proposal.Repository
	metricsStore *metrics.Store
	orchestrator *optimizer.Orchestrator
}

// NewApp creates and initializes a new App instance.
func NewApp(
	cfg *config.Config,
	catalogRepo *catalog.Repository,
	proposalRepo *proposal.Repository,
	metricsStore *metrics.Store,
	orchestrator *optimizer.Orchestrator,
) *App {
	return &App{
		cfg:          cfg,
		catalogRepo:  catalogRepo,
		proposalRepo: proposalRepo,
		metricsStore: metricsStore,
		orchestrator: orchestrator,
	}
}

// Optimize loads the catalog, runs the three-pass optimization, prints the
// proposals and stores the bundle.
func (a *App) Optimize(ctx context.Context, req optimizer.Request) error {
	rows, err := a.catalogRepo.ListRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("catalog is empty; populate the products table first")
	}

	products := catalog.Normalize(rows, req.ExcludeCategories)
	if len(req.ExcludeCategories) > 0 {
		log.Printf("Excluded categories %v -> %d products remain", req.ExcludeCategories, len(products))
	}

	proposals, passes := a.orchestrator.Generate(ctx, products, req.Targets())

	for _, pm := range passes {
		if err := a.metricsStore.Record(metrics.SolveMetric{
			VersionLabel: pm.Label,
			Status:       pm.Status,
			NumProducts:  pm.NumProducts,
			NumColumns:   pm.NumColumns,
			NumRows:      pm.NumRows,
			LatencyMS:    pm.Latency.Milliseconds(),
		}); err != nil {
			log.Printf("Warning: failed to record solve metrics for version %s: %v", pm.Label, err)
		}
	}

	printProposals(proposals)

	data, err := json.Marshal(proposals)
	if err != nil {
		log.Printf("Warning: failed to marshal proposals to JSON for saving: %v", err)
		return nil
	}
	if err := a.proposalRepo.Save(ctx, "default_user", data); err != nil { // TODO: Replace "default_user" with actual user ID
		log.Printf("Warning: failed to save proposals: %v", err)
	}
	return nil
}

// ImportCatalog loads product rows from a JSON file into the products
// table. Rows without a name or with a non-positive price are skipped
// with a warning.
func (a *App) ImportCatalog(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var rows []catalog.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	imported := 0
	for _, r := range rows {
		if r.Name == "" || r.Price <= 0 {
			log.Printf("Warning: skipping invalid row %+v", r)
			continue
		}
		if _, err := a.catalogRepo.Insert(ctx, r); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.Name, err)
		}
		imported++
	}

	fmt.Printf("Imported %d products from %s\n", imported, path)
	return nil
}

// ShowRecentProposals prints the N most recent stored proposal bundles.
func (a *App) ShowRecentProposals(ctx context.Context, limit int) error {
	proposals, err := a.proposalRepo.ListRecentByUserID(ctx, "default_user", limit)
	if err != nil {
		return fmt.Errorf("failed to list proposals: %w", err)
	}
	if len(proposals) == 0 {
		fmt.Println("No stored proposals.")
		return nil
	}

	for _, p := range proposals {
		var bundle optimizer.Proposals
		if err := json.Unmarshal(p.Data, &bundle); err != nil {
			log.Printf("Warning: failed to unmarshal proposal %d: %v", p.ID, err)
			continue
		}
		fmt.Printf("\n#%d  %s\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"))
		for _, v := range []*optimizer.BasketVersion{bundle.A, bundle.B, bundle.C} {
			if v == nil {
				continue
			}
			if v.Err != "" {
				fmt.Printf("  %s: ERROR: %s\n", v.Version, v.Err)
				continue
			}
			fmt.Printf("  %s: %.2f | %d products | %.0f kcal/day | %.1fg protein/day\n",
				v.Version, v.PriceTotal, v.ProductCount, v.Macros.Kcal, v.Macros.Protein)
		}
	}
	return nil
}

// Health prints catalog size, recent solver runs and a system snapshot.
func (a *App) Health(ctx context.Context) error {
	count, err := a.catalogRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	fmt.Printf("Catalog: %d products\n", count)

	solves, err := a.metricsStore.RecentSolves(10)
	if err != nil {
		return fmt.Errorf("failed to load solve metrics: %w", err)
	}
	fmt.Printf("Recent solves (%d):\n", len(solves))
	for _, s := range solves {
		fmt.Printf("  %s  version %s  %-10s  %d products, %d cols, %d rows, %dms\n",
			s.Timestamp.Format("2006-01-02 15:04"), s.VersionLabel, s.Status,
			s.NumProducts, s.NumColumns, s.NumRows, s.LatencyMS)
	}

	h := metrics.GetSysHealth(a.cfg.DatabasePath)
	fmt.Printf("Memory: %dMB alloc, %dMB sys, %d GCs, %d goroutines\n",
		h.AllocMB, h.SysMB, h.NumGC, h.Goroutines)
	fmt.Printf("Database size: %s\n", h.DatabaseSize)
	return nil
}

var slotIcons = map[catalog.MealSlot]string{
	catalog.Breakfast: "🌅",
	catalog.Lunch:     "🍽️",
	catalog.Snack:     "🍪",
	catalog.Dinner:    "🌙",
}

func printProposals(p *optimizer.Proposals) {
	for _, v := range []*optimizer.BasketVersion{p.A, p.B, p.C} {
		if v.Err != "" {
			fmt.Printf("\n[%s] ERROR: %s\n", v.Version, v.Err)
			continue
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 60))
		fmt.Printf("VERSION %s | %.2f | %d products | %.0f kcal/day | %.1fg protein/day\n",
			v.Version, v.PriceTotal, v.ProductCount, v.Macros.Kcal, v.Macros.Protein)
		fmt.Printf("%s\n", strings.Repeat("=", 60))

		for _, slot := range catalog.Slots {
			items := v.Sections[slot]
			fmt.Printf("\n  %s %s (%d)\n", slotIcons[slot], strings.ToUpper(string(slot)), len(items))
			for _, it := range items {
				fmt.Printf("    %s %-47s %5.2f  (%s)\n", it.Icon, truncate(it.Name, 45), it.Price, it.Category)
			}
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
