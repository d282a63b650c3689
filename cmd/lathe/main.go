package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lathe-dev/lathe/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ┌─┐┌┬┐┬ ┬┌─┐
  ║  ├─┤ │ ├─┤├┤
  ╩═╝┴ ┴ ┴ ┴ ┴└─┘
`

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lathe",
		Short: "Scaffold web projects from templates",
		Long: `Lathe scaffolds web projects from reusable templates.

Pick a framework skeleton, layer optional features on top, and get a
ready-to-install project with a package manifest:

  • React, Vue, Express, vanilla, and generic skeletons
  • TypeScript, ESLint, Prettier, Jest, Tailwind, and Docker features
  • Reusable templates under ~/.lathe/templates
  • A web UI with live generation progress`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	// Add commands
	rootCmd.AddCommand(
		createCmd(),
		templatesCmd(),
		configCmd(),
		serveCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Lathe ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
