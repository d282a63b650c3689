package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lathe-dev/lathe/internal/config"
	"github.com/lathe-dev/lathe/internal/template"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage project templates",
		Long: `List and create the templates projects are generated from.

Templates live under ~/.lathe/templates (or $LATHE_HOME/templates), one
directory per template with a template.json manifest describing it.`,
	}

	cmd.AddCommand(
		templatesListCmd(),
		templatesNewCmd(),
	)

	return cmd
}

func templatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			templates, err := registry.List()
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				info("No templates found under %s", registry.Root())
				return nil
			}

			fmt.Printf("  %-20s %-10s %-8s %s\n", "NAME", "FRAMEWORK", "VERSION", "DESCRIPTION")
			for _, t := range templates {
				fmt.Printf("  %-20s %-10s %-8s %s\n", t.Name, t.Framework, t.Version, t.Description)
			}

			return nil
		},
	}
}

func templatesNewCmd() *cobra.Command {
	var (
		frameworkID string
		description string
		features    []string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new template",
		Long: `Create a new template seeded with a framework's base files.

The template directory can then be edited by hand; every file in it is
copied into generated projects with {{projectName}} and
{{projectDescription}} substituted.

Examples:
  lathe templates new my-react --framework=react
  lathe templates new my-api --framework=express --feature=typescript`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			templatesRoot, err := cfg.TemplatesRoot()
			if err != nil {
				return err
			}
			registry := template.NewRegistry(templatesRoot)
			tmpl, err := registry.Create(template.CreateInput{
				Name:        args[0],
				Framework:   frameworkID,
				Description: description,
				Features:    features,
				Author:      cfg.DefaultAuthor,
			})
			if err != nil {
				return err
			}

			success("Created template %s (%d files)", tmpl.Name, len(tmpl.Files))
			info("Edit it under %s", tmpl.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "vanilla", "Framework for the base files")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Template description")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "Default feature for the template, repeatable")

	return cmd
}
