package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DeBrosOfficial/groundstation/pkg/config"
)

// BuildInfo is version metadata populated via -ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	s := "groundstation " + b.Version
	if b.Commit != "" {
		s += " (commit " + b.Commit + ")"
	}
	if b.Date != "" {
		s += " built " + b.Date
	}
	return s
}

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
}

// NewRootCmd builds the groundstation command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "groundstation",
		Short:         "Broadcast messages from a ground station to its satellites",
		Long:          "Launch satellites, subscribe them to a ground station, and broadcast the configured messages.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStation(cmd, flags)
		},
	}

	root.Flags().StringVar(&flags.configPath, "config", "", "Path to config YAML file (overrides defaults)")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: console, json")
	root.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	})

	return root
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}
	if flags.noColor {
		cfg.Logging.Color = false
	}
	return cfg, nil
}

func runStation(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Run validates cfg and builds the logger on the command's stderr.
	// Subscription errors never fail the command.
	_, err = Run(Options{
		Config:     cfg,
		ConfigPath: flags.configPath,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		Color:      cfg.Logging.Color,
	})
	return err
}
