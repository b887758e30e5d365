// Command normalize rewrites messy purchase sources into their canonical
// form. Dry-run by default; pass -apply to write the changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/padraigob/resold/internal/config"
	"github.com/padraigob/resold/internal/database"
	"github.com/padraigob/resold/internal/normalize"
	normalizeStore "github.com/padraigob/resold/internal/normalize/store"
)

func main() {
	apply := flag.Bool("apply", false, "apply the changes instead of previewing them")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := normalize.NewService(normalizeStore.New(db))

	result, err := svc.Run(ctx, *apply)
	if err != nil {
		slog.Error("normalization failed", "error", err)
		os.Exit(1)
	}

	if len(result.Changes) == 0 {
		fmt.Println("all purchase sources are already canonical")
		return
	}

	for _, c := range result.Changes {
		if result.Applied {
			fmt.Printf("%-40s -> %-40s (%d items)\n", c.From, c.To, c.Items)
		} else {
			fmt.Printf("%-40s -> %s\n", c.From, c.To)
		}
	}

	if !result.Applied {
		fmt.Printf("\n%d sources would change; re-run with -apply to write them\n", len(result.Changes))
	}
}
