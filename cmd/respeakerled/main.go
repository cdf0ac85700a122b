// Command respeakerled lights the LEDs of a ReSpeaker microphone HAT with one
// of a fixed set of voice-assistant patterns.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, log.Logger, newTransmitter))
}
