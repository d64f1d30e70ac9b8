// Command jobboardctl is the operator CLI: migrations, moderation from the
// shell, promotion lookups, reports and development tokens.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/DukeRupert/jobboard/internal"
	"github.com/DukeRupert/jobboard/internal/repository"
	"github.com/DukeRupert/jobboard/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "jobboardctl",
	Short: "Operate the job board from the shell",
	Long: `jobboardctl - operator tooling for the job board.

Reads the same environment as the server (DATABASE_URL, ENV, LOG_LEVEL,
IDENTITY_TOKEN_SECRET, ...), including a .env file in the working directory.

Examples:
  jobboardctl migrate up                 # Apply pending migrations
  jobboardctl jobs pending               # List listings awaiting review
  jobboardctl jobs approve <job-id>      # Publish a listing
  jobboardctl promotion status <uid>     # Show an employer's push allowance
  jobboardctl report new-posts --range 6m
  jobboardctl token issue --sub uid-1    # Mint a development token`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(promotionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the wiring shared by commands that touch the database.
type app struct {
	cfg    *internal.Config
	logger *slog.Logger
	db     *sql.DB
	repo   *repository.Queries

	entitlements service.EntitlementService
	moderation   service.ModerationService
	promotions   service.PromotionService
	reports      service.ReportService
}

// openApp loads configuration and connects to the database. Logs go to
// stderr so command output stays machine-readable.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := internal.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("config initialization failed: %w", err)
	}
	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	repo := repository.New(db)
	return &app{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		repo:         repo,
		entitlements: service.NewEntitlementService(repo, logger),
		moderation:   service.NewModerationService(repo, logger),
		promotions:   service.NewPromotionService(db, repo, logger),
		reports:      service.NewReportService(repo, logger),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// withApp runs fn against an opened app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
