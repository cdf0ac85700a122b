package model

import "fmt"

// Pattern is a named, fixed color assignment across all LEDs of a variant.
type Pattern uint8

const (
	Off Pattern = iota
	Listening
	Thinking
	Speaking
	TurnStarted
	SpeechFinished
	Responding
)

type patternInfo struct {
	name  string
	alias string // legacy ReSpeakerLED command token
}

// Insertion order is the order patterns are listed to the operator.
var patterns = [...]patternInfo{
	Off:            {"off", "LED_TURN_OFF"},
	Listening:      {"listening", "ALEXA_LISTENING"},
	Thinking:       {"thinking", "ALEXA_THINKING"},
	Speaking:       {"speaking", "ALEXA_SPEAKING"},
	TurnStarted:    {"turn-started", "GOOGLEASSISTANT_ON_CONVERSATION_TURN_STARTED"},
	SpeechFinished: {"speech-finished", "GOOGLEASSISTANT_ON_RECOGNIZING_SPEECH_FINISHED"},
	Responding:     {"responding", "GOOGLEASSISTANT_ON_RESPONDING_STARTED"},
}

// Patterns lists every registered pattern in insertion order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	for i := range patterns {
		out[i] = Pattern(i)
	}
	return out
}

func (p Pattern) String() string {
	if int(p) < len(patterns) {
		return patterns[p].name
	}
	return fmt.Sprintf("Pattern(%d)", uint8(p))
}

func (p Pattern) Alias() string {
	if int(p) < len(patterns) {
		return patterns[p].alias
	}
	return ""
}

// ParsePattern resolves a canonical name or a legacy alias. Matching is
// exact and case-sensitive.
func ParsePattern(name string) (Pattern, error) {
	for i, p := range patterns {
		if p.name == name || p.alias == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// LookupPattern returns a copy of the color frame registered for name on
// variant v.
func LookupPattern(v Variant, name string) (ColorFrame, error) {
	p, err := ParsePattern(name)
	if err != nil {
		return nil, err
	}
	return Frame(v, p)
}

// Frame returns a copy of the color frame registered for p on variant v.
func Frame(v Variant, p Pattern) (ColorFrame, error) {
	byPattern, ok := tables[v]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	f, ok := byPattern[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, p)
	}
	return f.clone(), nil
}

// Records are {0xFF, blue, green, red}. The byte values are the ones the
// ReSpeaker HAT firmware scripts ship with and must not be recoded.
var tables = map[Variant]map[Pattern]ColorFrame{
	TwoMic: {
		Off: {
			255, 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
		},
		Listening: {
			255, 48, 0, 0, 255, 255, 255, 255, 255, 48, 0, 0,
		},
		Thinking: {
			255, 48, 0, 0, 255, 24, 24, 0, 255, 48, 0, 0,
		},
		Speaking: {
			255, 12, 12, 0, 255, 12, 12, 0, 255, 12, 12, 0,
		},
		TurnStarted: {
			255, 0, 48, 0, 255, 0, 0, 0, 255, 0, 0, 0,
		},
		SpeechFinished: {
			255, 0, 48, 0, 255, 48, 0, 0, 255, 0, 0, 0,
		},
		Responding: {
			255, 0, 48, 0, 255, 48, 0, 0, 255, 0, 0, 48,
		},
	},
	FourMic: {
		Off: {
			255, 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
		},
		Listening: {
			255, 24, 0, 0, 255, 24, 0, 0, 255, 24, 0, 0,
			255, 24, 0, 0, 255, 24, 0, 0, 255, 24, 0, 0,
			255, 24, 48, 0, 255, 24, 0, 0, 255, 24, 0, 0,
			255, 24, 0, 0, 255, 24, 0, 0, 255, 24, 0, 0,
		},
		Thinking: {
			255, 12, 12, 0, 255, 24, 0, 0, 255, 12, 12, 0,
			255, 24, 0, 0, 255, 12, 12, 0, 255, 24, 0, 0,
			255, 12, 12, 0, 255, 24, 0, 0, 255, 12, 12, 0,
			255, 24, 0, 0, 255, 12, 12, 0, 255, 24, 0, 0,
		},
		Speaking: {
			255, 12, 12, 0, 255, 12, 12, 0, 255, 12, 12, 0,
			255, 12, 12, 0, 255, 12, 12, 0, 255, 12, 12, 0,
			255, 12, 12, 0, 255, 12, 12, 0, 255, 12, 12, 0,
			255, 12, 12, 0, 255, 12, 12, 0, 255, 12, 12, 0,
		},
		TurnStarted: {
			255, 48, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 0, 48, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 24, 24, 255, 0, 0, 0, 255, 0, 0, 0,
			255, 0, 48, 0, 255, 0, 0, 0, 255, 0, 0, 0,
		},
		SpeechFinished: {
			255, 48, 0, 0, 255, 48, 0, 0, 255, 0, 0, 0,
			255, 0, 0, 48, 255, 0, 0, 48, 255, 0, 0, 0,
			255, 0, 24, 24, 255, 0, 24, 24, 255, 0, 0, 0,
			255, 0, 48, 0, 255, 0, 48, 0, 255, 0, 0, 0,
		},
		Responding: {
			255, 48, 0, 0, 255, 48, 0, 0, 255, 48, 0, 0,
			255, 0, 0, 48, 255, 0, 0, 48, 255, 0, 0, 48,
			255, 0, 24, 24, 255, 0, 24, 24, 255, 0, 24, 24,
			255, 0, 48, 0, 255, 0, 48, 0, 255, 0, 48, 0,
		},
	},
}
