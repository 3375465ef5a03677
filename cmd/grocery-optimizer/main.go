package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"grocery-optimizer/internal/app"
	"grocery-optimizer/internal/catalog"
	"grocery-optimizer/internal/config"
	"grocery-optimizer/internal/database"
	"grocery-optimizer/internal/metrics"
	"grocery-optimizer/internal/optimizer"
	"grocery-optimizer/internal/proposal"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	proposalRepo := proposal.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	solver := &optimizer.GLPKSolver{Verbose: cfg.SolverVerbose}
	orchestrator := optimizer.NewOrchestrator(solver)

	application := app.NewApp(cfg, catalogRepo, proposalRepo, metricsStore, orchestrator)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "optimize":
		optimizeCmd := flag.NewFlagSet("optimize", flag.ExitOnError)
		budget := optimizeCmd.Float64("budget", 0, "Weekly budget (required)")
		protein := optimizeCmd.Float64("protein", 0, "Daily protein target in grams (required)")
		kcal := optimizeCmd.Float64("kcal", 0, "Daily calorie ceiling in kcal (required)")
		carbs := optimizeCmd.Float64("carbs", 0, "Daily carbohydrate target in grams (optional)")
		fat := optimizeCmd.Float64("fat", 0, "Daily fat target in grams (optional)")
		exclude := optimizeCmd.String("exclude", "", "Comma-separated category tags to exclude")
		optimizeCmd.Parse(os.Args[2:])

		if *budget <= 0 || *protein <= 0 || *kcal <= 0 {
			fmt.Println("optimize requires positive -budget, -protein and -kcal values")
			optimizeCmd.Usage()
			os.Exit(1)
		}

		req := optimizer.Request{
			Budget:       *budget,
			DailyProtein: *protein,
			DailyKcal:    *kcal,
			DailyCarbs:   *carbs,
			DailyFat:     *fat,
		}
		if *exclude != "" {
			for _, c := range strings.Split(*exclude, ",") {
				req.ExcludeCategories = append(req.ExcludeCategories, strings.TrimSpace(c))
			}
		}

		if err := application.Optimize(ctx, req); err != nil {
			log.Fatalf("Optimization failed: %v", err)
		}
	case "import":
		importCmd := flag.NewFlagSet("import", flag.ExitOnError)
		file := importCmd.String("file", "", "Path to a JSON catalog file (required)")
		importCmd.Parse(os.Args[2:])

		if *file == "" {
			fmt.Println("import requires a -file path")
			importCmd.Usage()
			os.Exit(1)
		}

		if err := application.ImportCatalog(ctx, *file); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
	case "proposals":
		proposalsCmd := flag.NewFlagSet("proposals", flag.ExitOnError)
		limit := proposalsCmd.Int("limit", 5, "Number of recent proposals to show")
		proposalsCmd.Parse(os.Args[2:])

		if err := application.ShowRecentProposals(ctx, *limit); err != nil {
			log.Fatalf("Failed to show proposals: %v", err)
		}
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metricsStore.Cleanup(*days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	case "health":
		if err := application.Health(ctx); err != nil {
			log.Fatalf("Health check failed: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: grocery-optimizer <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  import             Load products from a JSON catalog file")
	fmt.Println("  optimize           Generate three weekly basket proposals")
	fmt.Println("  proposals          Show recently generated proposals")
	fmt.Println("  metrics-cleanup    Remove old solve metric records")
	fmt.Println("  health             Print catalog and system health")
}
