// Command migrate applies migrations/ to the configured database with the atlas CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"fitcoach-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	flag.Parse()

	if err := run(*dir, *bin, *dryRun); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(dir, bin string, dryRun bool) error {
	// only the database settings are needed here
	_ = godotenv.Load()
	var db config.DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to load migration directory: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    atlasURL(db),
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("applied", "file", f.Name, "dry_run", dryRun)
	}
	slog.Info("マイグレーション完了", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

// atlasURL drops driver-specific parameters that the atlas CLI does not accept.
func atlasURL(c config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}, "search_path": {"public"}}.Encode(),
	}
	return u.String()
}
