package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
)

// Applies every migrations/*.sql file, in name order, to a Cloud Spanner
// database (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate -dir migrations
func main() {
	dir := flag.String("dir", "migrations", "directory holding *.sql DDL files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	files, err := migrationFiles(*dir)
	if err != nil {
		logger.Error("list migrations", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Error("no migrations found", "dir", *dir)
		os.Exit(1)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Error("database admin client", "error", err)
		os.Exit(1)
	}
	defer admin.Close()

	for _, f := range files {
		stmts, err := readDDLStatements(f)
		if err != nil {
			logger.Error("read DDL", "file", f, "error", err)
			os.Exit(1)
		}
		if len(stmts) == 0 {
			logger.Warn("migration has no statements", "file", f)
			continue
		}
		if err := apply(ctx, admin, cfg.SpannerDatabase, stmts); err != nil {
			logger.Error("apply migration", "file", f, "error", err)
			os.Exit(1)
		}
		logger.Info("migration applied", "file", filepath.Base(f), "statements", len(stmts), "database", cfg.SpannerDatabase)
	}
}

func apply(ctx context.Context, admin *database.DatabaseAdminClient, db string, stmts []string) error {
	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}
	return nil
}

func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitDDL(string(b)), nil
}

// splitDDL drops "--" comment lines and splits on ";". Spanner rejects a
// trailing semicolon, so statements are returned without it.
func splitDDL(sql string) []string {
	// Normalize line endings for Windows-authored files.
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
