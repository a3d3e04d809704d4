package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "banktrack",
		Short:   "Track bank balances, categories and transactions",
		Version: router.Version(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), router.Version())
		},
	})

	return rootCmd
}

// setupLogging configures the global zerolog logger.
func setupLogging() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	if _, ok := os.LookupEnv("GIN_MODE"); !ok {
		gin.SetMode(gin.ReleaseMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.Mode() == gin.DebugMode) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.Mode() == gin.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

func serve(ctx context.Context) error {
	setupLogging()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Error().Msg("environment variable API_URL must be set")
		return errors.New("API_URL is not set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Error().Err(err).Msg("could not parse API_URL")
		return err
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Error().Err(err).Str("path", dataDir).Msg("could not create data directory")
		return err
	}

	if err := models.Connect(filepath.Join(dataDir, "banktrack.db")); err != nil {
		log.Error().Err(err).Msg("database connection")
		return err
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Error().Err(err).Msg("router configuration")
		return err
	}
	router.AttachRoutes(r.Group("/"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", router.Version()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down server")

	// Give in-flight requests five seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
		return err
	}

	if sqlDB, err := models.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("server exited")
	return nil
}
