package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigPathCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a value to the config file",
		Long:  "Save a value to the config file. Keys: backend_url, owner, max_comments, db, port, dev, timeout.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
				return err
			}

			// The file alone may be partial; validate what it would produce.
			effective := defaultConfig()
			mergeConfig(&effective, cfg)
			if err := effective.Validate(); err != nil {
				return err
			}

			if err := saveConfig(cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s.\n", args[0])
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// setConfigValue assigns value to the field named by its YAML key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "backend_url":
		cfg.BackendURL = value
	case "owner":
		cfg.Owner = value
	case "db":
		cfg.DBPath = value
	case "max_comments", "port":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		if key == "port" {
			cfg.Port = n
		} else {
			cfg.MaxComments = &n
		}
	case "dev":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("dev must be true or false: %w", err)
		}
		cfg.Dev = b
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("timeout must be a duration like 5s: %w", err)
		}
		cfg.Timeout = d
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
