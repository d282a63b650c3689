package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lathe-dev/lathe/internal/config"
	"github.com/lathe-dev/lathe/internal/errors"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write settings",
		Long: `Read and write settings stored in ~/.lathe/config.json.

Keys:
  defaultAuthor          Author recorded in new templates
  defaultFramework       Framework used when none is given
  defaultPackageManager  npm, yarn, or pnpm
  templatesDir           Overrides the templates directory
  logLevel               debug, info, warn, or error
  editor                 Editor command for opening templates
  colorOutput            true or false`,
	}

	cmd.AddCommand(
		configListCmd(),
		configGetCmd(),
		configSetCmd(),
	)

	return cmd
}

func configListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			for _, key := range config.Keys() {
				value, _ := cfg.Get(key)
				fmt.Printf("  %-22s %s\n", key, value)
			}
			return nil
		},
	}
}

func configGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			value, ok := cfg.Get(args[0])
			if !ok {
				return errors.New("E100").
					WithDetail("Unknown setting " + args[0]).
					WithSuggestion("Run 'lathe config list' to see available keys")
			}
			fmt.Println(value)
			return nil
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			success("Set %s = %s", args[0], args[1])
			return nil
		},
	}
}
