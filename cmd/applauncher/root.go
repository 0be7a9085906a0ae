package main

import (
	"os"

	"applauncher/internal/catalog"
	"applauncher/internal/config"
	"applauncher/internal/desktop"
	"applauncher/internal/gui"
	"applauncher/internal/log"

	"github.com/spf13/cobra"
)

// cli holds what the persistent flags resolve to.
type cli struct {
	cfgFile string
	debug   bool
	logJSON bool
	cfg     *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// launcher window.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "applauncher",
		Short:         "A minimal application launcher",
		Long:          `applauncher lists the installed applications, filters them as you type and starts the one you pick.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.logJSON {
				log.Configure(log.WithOutput(cmd.ErrOrStderr()), log.WithJSON())
			}
			c.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				log.Warnf("GUI not available in this build, starting the terminal interface")
				return runTUI(c)
			}
			return runGUI(c.cfg, c.buildCatalog())
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.config/applauncher/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "write diagnostics as JSON")

	rootCmd.AddCommand(newTUICmd(c))
	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))

	return rootCmd
}

// loadConfig never fails: a broken config is reported and replaced by defaults.
func (c *cli) loadConfig() {
	var err error
	if c.cfgFile != "" {
		c.cfg, err = config.LoadConfigFile(c.cfgFile)
	} else {
		c.cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.LogWithError(err).Warn("Could not load config, using defaults")
		c.cfg = config.New()
	}
	log.SetDebug(c.debug || c.cfg.Debug)
}

func (c *cli) buildCatalog() *catalog.Catalog {
	dirs, err := c.cfg.ApplicationDirs(os.UserHomeDir)
	if err != nil {
		log.LogWithError(err).Warn("Skipping user applications directory")
	}

	scanner, err := desktop.NewScanner(c.cfg.Scan.Pattern)
	if err != nil {
		log.LogWithError(err).Warn("Invalid scan pattern, using default")
		scanner, _ = desktop.NewScanner(desktop.DefaultPattern)
	}
	return catalog.Build(scanner, dirs)
}
