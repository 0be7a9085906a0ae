package main

import (
	"fmt"
	"io"
	"os"

	"applauncher/internal/config"
	"applauncher/internal/tui/styles"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCmd prints the effective configuration, or writes it out.
func newConfigCmd(c *cli) *cobra.Command {
	var (
		write bool
		diff  bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  `Print the configuration in use after defaults are applied. --diff shows only what differs from the defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if write {
				path := c.cfgFile
				if path == "" {
					var err error
					if path, err = config.DefaultPath(); err != nil {
						return fmt.Errorf("error resolving config path: %w", err)
					}
				}
				if err := config.SaveConfig(c.cfg, path); err != nil {
					return err
				}
				fmt.Fprintf(out, "Configuration written to %s\n", path)
				return nil
			}

			if diff {
				text, err := config.Diff(config.New(), c.cfg)
				if err != nil {
					return fmt.Errorf("error comparing config: %w", err)
				}
				if text == "" {
					fmt.Fprintln(out, "Configuration matches the defaults.")
					return nil
				}
				_, err = io.WriteString(out, text)
				return err
			}

			data, err := yaml.Marshal(c.cfg)
			if err != nil {
				return fmt.Errorf("error encoding config: %w", err)
			}
			text := string(data)
			if isTerminal(out) {
				text = styles.HighlightYAML(text)
			}
			_, err = io.WriteString(out, text)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the effective configuration to the config file")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "Show differences from the default configuration")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
