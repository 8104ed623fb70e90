package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ayurconnect/app"
	"ayurconnect/config"
	"ayurconnect/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	forceSync bool
	folderID  string
)

var rootCmd = &cobra.Command{
	Use:   "ayurconnect",
	Short: "AyurConnect catalog server",
	Long: `AyurConnect serves the herbal plants, remedies, articles and doctors
catalogs together with the patient and doctor booking pages.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadEnvFile()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var searchCmd = &cobra.Command{
	Use:   "search <kind> [query]",
	Short: "Search a catalog and print the matching cards",
	Long: `Runs the catalog search the pages use and prints one card per line.

Kinds: plants, remedies, articles, doctors. Without a query the whole catalog is listed.

Example:
  ayurconnect search plants skin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var syncImagesCmd = &cobra.Command{
	Use:   "sync-images",
	Short: "Download the catalog images from Google Drive into the image cache",
	RunE:  runSyncImages,
}

var seedDBCmd = &cobra.Command{
	Use:   "seed-db",
	Short: "Copy the seed catalogs into PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.CatalogSource != config.SourcePostgres {
			return fmt.Errorf("seed-db requires CATALOG_SOURCE=postgres")
		}
		return app.SeedDatabase(cmd.Context(), cfg, logger)
	},
}

func init() {
	syncImagesCmd.Flags().BoolVar(&forceSync, "force", false, "re-download images that are already cached")
	syncImagesCmd.Flags().StringVar(&folderID, "folder", "", "Drive folder id (defaults to CATALOG_IMAGES_FOLDER_ID)")

	rootCmd.AddCommand(serveCmd, searchCmd, syncImagesCmd, seedDBCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadEnvFile loads .env in development. In production, variables should be set directly.
func loadEnvFile() {
	if os.Getenv("ENV") == "production" {
		return
	}
	// Overload so .env values win over the system environment
	if err := godotenv.Overload(".env"); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables: %v", err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr), zap.String("base_url", cfg.BaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := app.Initialize(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	browser, ok := a.Catalogs.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown catalog %q (expected one of %s)", args[0], strings.Join(a.Catalogs.Kinds(), ", "))
	}

	cards, err := browser.Cards(cmd.Context(), strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), browser.Info().EmptyMessage)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\n", card.ID, card.Title, card.Preview)
	}
	return w.Flush()
}

func runSyncImages(cmd *cobra.Command, args []string) error {
	a, err := app.Initialize(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Sync == nil {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS must be set to sync images")
	}
	folder := folderID
	if folder == "" {
		folder = cfg.ImagesFolderID
	}
	if folder == "" {
		return fmt.Errorf("no Drive folder: pass --folder or set CATALOG_IMAGES_FOLDER_ID")
	}

	_, stats, err := a.Sync.SyncCatalogImages(cmd.Context(), folder, forceSync)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stored %d, skipped %d, failed %d of %d images\n",
		stats.Stored, stats.Skipped, stats.Failed, stats.Total)
	return nil
}
