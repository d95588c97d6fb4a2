// Command migrate applies the versioned SQL files in migrations/ with Atlas.
// It needs the atlas binary on PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(cfg.DB, *dir, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dbCfg config.DBConfig, dir string, dryRun bool, logger *slog.Logger) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "file", f.Name, "dry_run", dryRun)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}
