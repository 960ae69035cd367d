package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/DeBrosOfficial/groundstation/pkg/config"
	"github.com/DeBrosOfficial/groundstation/pkg/errors"
	"github.com/DeBrosOfficial/groundstation/pkg/groundstation"
	"github.com/DeBrosOfficial/groundstation/pkg/logging"
	"github.com/DeBrosOfficial/groundstation/pkg/satellite"
)

// Options wires a single ground station run. When Logger is nil, Run
// builds one from Config.Logging that writes to Stderr.
type Options struct {
	Config     *config.Config
	ConfigPath string // logged when set
	Logger     *logging.ColoredLogger
	Stdout     io.Writer // satellite output
	Stderr     io.Writer // subscription errors and logs
	Color      bool
}

// Summary describes what a run did.
type Summary struct {
	Subscribed []uint64
	Errors     []error
	Deliveries int
}

// Run launches the configured satellites, subscribes them, and broadcasts
// each configured message in order. Subscription errors are printed to
// Stderr and collected in the Summary; only an invalid configuration or an
// unusable log output makes Run return an error.
func Run(opts Options) (*Summary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.ValidateAll(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := opts.Logger
	if logger == nil {
		logOpts := cfg.LoggerOptions()
		logOpts.Output = opts.Stderr
		var err error
		if logger, err = logging.NewLogger(logOpts); err != nil {
			return nil, errors.Wrap(err, "failed to create logger")
		}
		defer func() { _ = logger.Close() }()
	}
	if opts.ConfigPath != "" {
		logger.ComponentInfo(logging.ComponentConfig, "Configuration loaded from YAML file", zap.String("path", opts.ConfigPath))
	}
	logger.ComponentDebug(logging.ComponentConfig, "Configuration validated",
		zap.Int("satellites", len(cfg.Station.SatelliteIDs)),
		zap.Int("messages", len(cfg.Station.Messages)))

	st := newStyles(opts.Stderr, opts.Color)

	station := groundstation.New(logger.Named(logging.ComponentStation))
	sats := groundstation.Launch(cfg.Station.SatelliteIDs,
		satellite.WithOutput(opts.Stdout),
		satellite.WithLogger(logger.Named(logging.ComponentSatellite)))

	logger.ComponentInfo(logging.ComponentCLI, "Launching satellites", zap.Int("count", len(sats)))

	errs := station.SubscribeAll(sats)
	for _, err := range errs {
		fmt.Fprintln(opts.Stderr, st.errorLine(errors.Debug(err)))
	}
	if err := groundstation.Report(errs); err != nil {
		logger.ComponentWarn(logging.ComponentCLI, "Subscription errors reported",
			zap.Int("count", len(errs)), zap.Error(err))
	}

	for _, msg := range cfg.Station.Messages {
		station.Notify(msg)
	}

	summary := &Summary{
		Subscribed: station.IDs(),
		Errors:     errs,
	}
	for _, sat := range sats {
		summary.Deliveries += sat.Received()
	}

	logger.ComponentInfo(logging.ComponentCLI, "Run complete",
		zap.Int("subscribed", len(summary.Subscribed)),
		zap.Int("errors", len(summary.Errors)),
		zap.Int("deliveries", summary.Deliveries))

	return summary, nil
}
