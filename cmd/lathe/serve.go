package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lathe-dev/lathe/internal/archive"
	"github.com/lathe-dev/lathe/internal/config"
	"github.com/lathe-dev/lathe/internal/server"
	"github.com/lathe-dev/lathe/internal/template"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		output     string
		s3Bucket   string
		s3Prefix   string
		archiveTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long: `Start the web UI and JSON API.

The server scaffolds projects into the output directory, packages each
one into a zip archive, and streams generation progress to the browser
over a WebSocket. Archives are kept on disk, or in S3 when --s3-bucket
is set (credentials come from the environment or a .env file).

Endpoints:
  GET  /                 Single-page UI
  GET  /api/templates    List templates
  POST /api/generate     Generate a project
  GET  /healthz          Health check
  GET  /metrics          Prometheus metrics

Examples:
  lathe serve
  lathe serve --addr=:9000 --output=/tmp/projects
  lathe serve --s3-bucket=my-archives --s3-prefix=lathe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, output, s3Bucket, s3Prefix, archiveTTL)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8640", "Listen address (or set LATHE_ADDR)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory for generated projects (default $LATHE_HOME/projects)")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "Store archives in this S3 bucket instead of on disk")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "lathe", "Key prefix for S3 archives")
	cmd.Flags().DurationVar(&archiveTTL, "archive-ttl", 24*time.Hour, "Remove archives older than this")

	return cmd
}

func runServe(addr, output, s3Bucket, s3Prefix string, archiveTTL time.Duration) error {
	// A .env file may carry AWS credentials, LATHE_HOME, and LATHE_ADDR.
	godotenv.Load()

	if addr == ":8640" {
		if env := os.Getenv("LATHE_ADDR"); env != "" {
			addr = env
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The server wants full request logs regardless of the CLI default.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	templatesRoot, err := cfg.TemplatesRoot()
	if err != nil {
		return err
	}
	registry := template.NewRegistry(templatesRoot)
	if err := registry.EnsureDefaults(cfg.DefaultAuthor); err != nil {
		return err
	}

	home, err := config.Home()
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(home, "projects")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store archive.Store
	if s3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("loading AWS configuration: %w", err)
		}
		store = archive.NewS3Store(s3.NewFromConfig(awsCfg), s3Bucket, s3Prefix)
		info("Archives stored in s3://%s/%s", s3Bucket, s3Prefix)
	} else {
		diskStore, err := archive.NewDiskStore(filepath.Join(home, "archives"))
		if err != nil {
			return err
		}
		store = diskStore
	}

	// Sweep expired archives in the background.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := store.Cleanup(archiveTTL); err != nil {
					warn("Archive cleanup failed: %v", err)
				}
			}
		}
	}()

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("Templates:  %s", registry.Root())
	info("Projects:   %s", output)
	info("Listening:  %s", serverURL(addr))
	fmt.Println()

	srv := server.New(cfg, registry, store, output)
	return srv.ListenAndServe(ctx, addr)
}

// serverURL renders an addr flag as a browsable URL for the startup
// message.
func serverURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + host + ":" + port
}
