package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coreman2200/respeakerled/internal/config"
	"github.com/coreman2200/respeakerled/internal/dispatch"
	"github.com/coreman2200/respeakerled/internal/model"
	"github.com/coreman2200/respeakerled/internal/power"
	"github.com/coreman2200/respeakerled/internal/preview"
	"github.com/coreman2200/respeakerled/internal/spi"
)

type options struct {
	variant     string
	spiDev      string
	bus         string
	powerMethod string
	powerPin    string
	strictPower bool
	dryRun      bool
	configPath  string
	list        bool
	logLevel    string
}

// transmitterFunc builds the sink for the frame from the effective config.
type transmitterFunc func(cfg *config.Config, dryRun bool, logger zerolog.Logger) (dispatch.Transmitter, error)

func newTransmitter(cfg *config.Config, dryRun bool, logger zerolog.Logger) (dispatch.Transmitter, error) {
	if dryRun {
		return preview.NewConsole(logger), nil
	}
	pc, err := power.New(cfg.Power, logger)
	if err != nil {
		return nil, err
	}
	open, err := spi.NewOpener(cfg.SPI.Driver, logger)
	if err != nil {
		return nil, err
	}
	tr := spi.NewTransport(open, pc, logger)
	tr.StrictPower = cfg.Power.Strict
	return tr, nil
}

func newRootCmd(logger zerolog.Logger, build transmitterFunc) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "respeakerled [flags] pattern-name",
		Short: "Show a fixed LED pattern on a ReSpeaker microphone HAT",
		Long: `respeakerled writes one static color frame to the APA102 LEDs of a
ReSpeaker 2-mic or 4-mic HAT over SPI and exits.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &dispatch.UsageError{Err: fmt.Errorf("expected one pattern name, got %d arguments", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.list {
				printPatterns(cmd.OutOrStdout())
				return nil
			}

			cfg, err := effectiveConfig(cmd.Flags(), &o)
			if err != nil {
				return &dispatch.UsageError{Err: err}
			}
			lvl, err := zerolog.ParseLevel(cfg.Log.Level)
			if err != nil {
				return &dispatch.UsageError{Err: err}
			}
			lg := logger.Level(lvl)

			tx, err := build(cfg, o.dryRun, lg)
			if err != nil {
				return &dispatch.UsageError{Err: err}
			}

			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return dispatch.New(tx, cfg.SPI.Dev, lg).Run(cfg.Variant, pattern)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.variant, "device", "D", config.DefaultVariant, "hardware variant: 2mic or 4mic")
	f.StringVar(&o.spiDev, "spi-dev", config.DefaultDevice, "SPI device node")
	f.StringVar(&o.bus, "bus", config.DefaultSPIDriver, "SPI backend: spidev or periph")
	f.StringVar(&o.powerMethod, "power", "gpio", "power-enable method: gpio, command or none")
	f.StringVar(&o.powerPin, "power-pin", config.DefaultPowerPin, "GPIO line that enables the LED power rail")
	f.BoolVar(&o.strictPower, "strict-power", false, "abort when the LED power rail cannot be enabled")
	f.BoolVar(&o.dryRun, "dry-run", false, "render the frame on the terminal instead of sending it")
	f.StringVarP(&o.configPath, "config", "c", "", "optional YAML config file")
	f.BoolVarP(&o.list, "list", "l", false, "list pattern names and exit")
	f.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &dispatch.UsageError{Err: err}
	})
	return cmd
}

// effectiveConfig layers the config file over the defaults, then applies
// the flags the operator set explicitly.
func effectiveConfig(f *pflag.FlagSet, o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if f.Changed("device") {
		cfg.Variant = o.variant
	}
	if f.Changed("spi-dev") {
		cfg.SPI.Dev = o.spiDev
	}
	if f.Changed("bus") {
		cfg.SPI.Driver = o.bus
	}
	if f.Changed("power") {
		cfg.Power.Method = o.powerMethod
	}
	if f.Changed("power-pin") {
		cfg.Power.Pin = o.powerPin
	}
	if f.Changed("strict-power") {
		cfg.Power.Strict = o.strictPower
	}
	if f.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	return cfg, cfg.Validate()
}

func printPatterns(w io.Writer) {
	for _, p := range model.Patterns() {
		fmt.Fprintf(w, "  %-16s %s\n", p, p.Alias())
	}
}

func printUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprint(w, cmd.UsageString())
	fmt.Fprintln(w, "\npattern-name  LED pattern name (or its legacy alias):")
	printPatterns(w)
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer, logger zerolog.Logger, build transmitterFunc) int {
	cmd := newRootCmd(logger, build)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch code := dispatch.ExitStatus(err); code {
	case dispatch.ExitOK:
		return code
	case dispatch.ExitUsage:
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		printUsage(stdout, cmd)
		return code
	default:
		var ferr *dispatch.FatalError
		if !errors.As(err, &ferr) {
			err = &dispatch.FatalError{Err: err}
		}
		logger.Error().Err(err).Msg("LED control failed")
		return code
	}
}
