// Package dispatch resolves a variant and pattern name to a frame and hands
// it to a transmitter.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coreman2200/respeakerled/internal/frame"
	"github.com/coreman2200/respeakerled/internal/model"
)

// Process exit statuses.
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitFatal = 2
)

var ErrMissingPattern = errors.New("missing pattern name")

// Transmitter sends the frame segments to the device at devicePath.
type Transmitter interface {
	Transmit(devicePath string, segs []frame.Segment) error
}

type State int

const (
	Start State = iota
	VariantResolved
	PatternResolved
	FrameBuilt
	Transmitting
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case VariantResolved:
		return "variant-resolved"
	case PatternResolved:
		return "pattern-resolved"
	case FrameBuilt:
		return "frame-built"
	case Transmitting:
		return "transmitting"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// UsageError is bad operator input. Nothing was sent.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// FatalError is a bus or hardware failure. The frame may have been
// partially sent and must not be retried.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// ExitStatus maps the result of Run to a process exit status.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}
	return ExitFatal
}

type Dispatcher struct {
	tx         Transmitter
	devicePath string
	log        zerolog.Logger
	state      State
}

func New(tx Transmitter, devicePath string, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		tx:         tx,
		devicePath: devicePath,
		log:        logger.With().Str("component", "dispatch").Logger(),
	}
}

// State is the last state reached by Run.
func (d *Dispatcher) State() State {
	return d.state
}

// Run sends the pattern named patternToken for the variant variantToken.
// It returns nil, a *UsageError or a *FatalError.
func (d *Dispatcher) Run(variantToken, patternToken string) error {
	d.state = Start

	v, err := model.LookupVariant(variantToken)
	if err != nil {
		return d.abort(&UsageError{Err: err})
	}
	d.enter(VariantResolved)

	if patternToken == "" {
		return d.abort(&UsageError{Err: ErrMissingPattern})
	}
	c, err := model.LookupPattern(v, patternToken)
	if err != nil {
		return d.abort(&UsageError{Err: err})
	}
	d.enter(PatternResolved)

	segs := frame.Build(c)
	d.enter(FrameBuilt)

	d.enter(Transmitting)
	if err := d.tx.Transmit(d.devicePath, segs); err != nil {
		return d.abort(&FatalError{Err: err})
	}
	d.enter(Done)
	d.log.Info().
		Str("variant", v.String()).
		Str("pattern", patternToken).
		Str("dev", d.devicePath).
		Msg("pattern sent")
	return nil
}

func (d *Dispatcher) enter(s State) {
	d.state = s
	d.log.Debug().Stringer("state", s).Msg("dispatch")
}

func (d *Dispatcher) abort(err error) error {
	d.log.Debug().Stringer("from", d.state).Err(err).Msg("dispatch aborted")
	d.state = Aborted
	return err
}
