package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lathe-dev/lathe/internal/config"
	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/framework"
	"github.com/lathe-dev/lathe/internal/scaffold"
	"github.com/lathe-dev/lathe/internal/template"
)

func createCmd() *cobra.Command {
	var (
		frameworkID    string
		features       []string
		description    string
		packageManager string
		templateName   string
		output         string
		timeout        time.Duration
		skipPrompts    bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new project from a template",
		Long: `Create a new project with the specified name.

Frameworks:
  react     React application powered by Vite
  vue       Vue application powered by Vite
  express   Express REST API server
  vanilla   Plain HTML, CSS, and JavaScript
  generic   Minimal README-only skeleton

Features:
  typescript, eslint, prettier, jest, tailwind, docker

Examples:
  lathe create my-app
  lathe create my-app --framework=react --feature=typescript --feature=eslint
  lathe create my-api --framework=express --feature=docker -y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(createOptions{
				name:           args[0],
				framework:      frameworkID,
				features:       features,
				description:    description,
				packageManager: packageManager,
				template:       templateName,
				output:         output,
				timeout:        timeout,
				skipPrompts:    skipPrompts,
			})
		},
	}

	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "Framework (react, vue, express, vanilla, generic)")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "Feature to apply, repeatable")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&packageManager, "package-manager", "", "Package manager (npm, yarn, pnpm)")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "Pin a registry template by name")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Parent directory for the project")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort generation after this duration")
	cmd.Flags().BoolVarP(&skipPrompts, "yes", "y", false, "Skip prompts and use defaults")

	return cmd
}

type createOptions struct {
	name           string
	framework      string
	features       []string
	description    string
	packageManager string
	template       string
	output         string
	timeout        time.Duration
	skipPrompts    bool
}

func runCreate(opts createOptions) error {
	printBanner()
	fmt.Println("  Creating a new project...")
	fmt.Println()

	// Fail on a bad name before any prompting or filesystem work.
	if err := scaffold.ValidateName(opts.name); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	templatesRoot, err := cfg.TemplatesRoot()
	if err != nil {
		return err
	}
	registry := template.NewRegistry(templatesRoot)
	if err := registry.EnsureDefaults(cfg.DefaultAuthor); err != nil {
		return err
	}

	if opts.framework == "" {
		opts.framework = cfg.DefaultFramework
	}
	if opts.packageManager == "" {
		opts.packageManager = cfg.DefaultPackageManager
	}

	if !opts.skipPrompts {
		if err := promptForOptions(&opts); err != nil {
			return err
		}
	}
	if opts.framework == "" {
		opts.framework = "vanilla"
	}

	// Replacing an existing directory is destructive, so confirm unless -y.
	projectPath := opts.projectPath()
	if _, err := os.Stat(projectPath); err == nil && !opts.skipPrompts {
		ok, err := confirm(fmt.Sprintf("Directory %q exists. Replace it?", opts.name))
		if err != nil {
			return err
		}
		if !ok {
			info("Aborted.")
			return nil
		}
	}

	req := scaffold.Request{
		Name:           opts.name,
		Framework:      opts.framework,
		Features:       opts.features,
		PackageManager: opts.packageManager,
		Template:       opts.template,
		Description:    opts.description,
		TargetDir:      opts.output,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	gen := scaffold.NewGenerator(registry, scaffold.WithProgress(func(stage, detail string) {
		switch stage {
		case scaffold.StageResolve:
			info("Resolving a %s template...", detail)
		case scaffold.StageScaffold:
			info("Scaffolding from %q...", detail)
		case scaffold.StageCompose:
			info("Applying %s...", detail)
		case scaffold.StageManifest:
			info("Writing package.json...")
		}
	}))

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	success("Created %s/ (%d files)", opts.name, len(result.FilesWritten))
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    cd %s\n", opts.name)
	fmt.Printf("    %s\n", installCommand(opts.packageManager))
	if run := runCommand(opts.packageManager, opts.framework); run != "" {
		fmt.Printf("    %s\n", run)
	}
	fmt.Println()

	return nil
}

func (o createOptions) projectPath() string {
	req := scaffold.Request{Name: o.name, TargetDir: o.output}
	return req.ProjectPath()
}

// promptForOptions asks for values the flags left empty.
func promptForOptions(opts *createOptions) error {
	reader := bufio.NewReader(os.Stdin)

	if opts.framework == "" {
		fmt.Printf("? Framework (%s) [vanilla]: ", strings.Join(framework.IDs(), ", "))
		answer, err := reader.ReadString('\n')
		if err != nil {
			return errors.New("E101").Wrap(err)
		}
		opts.framework = strings.TrimSpace(answer)
	}

	if opts.description == "" {
		fmt.Printf("? Description: ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			return errors.New("E101").Wrap(err)
		}
		opts.description = strings.TrimSpace(answer)
	}

	if len(opts.features) == 0 {
		fmt.Printf("? Features (comma-separated, blank for none): ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			return errors.New("E101").Wrap(err)
		}
		for _, f := range strings.Split(answer, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.features = append(opts.features, f)
			}
		}
	}

	return nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(question string) (bool, error) {
	fmt.Printf("? %s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, errors.New("E101").Wrap(err)
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

func installCommand(packageManager string) string {
	switch packageManager {
	case "yarn":
		return "yarn"
	case "pnpm":
		return "pnpm install"
	default:
		return "npm install"
	}
}

// runCommand returns the post-install command to suggest, if any.
func runCommand(packageManager, frameworkID string) string {
	script := "start"
	switch frameworkID {
	case "react", "vue", "express":
		script = "dev"
	case "generic":
		return ""
	}

	switch packageManager {
	case "yarn":
		return "yarn " + script
	case "pnpm":
		return "pnpm " + script
	default:
		if script == "start" {
			return "npm start"
		}
		return "npm run " + script
	}
}
