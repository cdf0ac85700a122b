// Package board loads the periph host drivers once per process.
package board

import (
	"sync"

	"github.com/rs/zerolog"
	"periph.io/x/host/v3"
)

var (
	once    sync.Once
	initErr error
)

// Init registers the host's SPI and GPIO drivers. It is safe to call more
// than once; only the first call does any work.
func Init(logger zerolog.Logger) error {
	once.Do(func() {
		state, err := host.Init()
		if err != nil {
			initErr = err
			return
		}
		for _, d := range state.Loaded {
			logger.Debug().Str("driver", d.String()).Msg("periph driver loaded")
		}
		for _, f := range state.Failed {
			logger.Debug().Str("driver", f.D.String()).Err(f.Err).Msg("periph driver failed")
		}
	})
	return initErr
}
