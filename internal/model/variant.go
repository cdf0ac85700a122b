package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Variant identifies a ReSpeaker HAT by its microphone count, which also
// fixes the number of LEDs on the board.
type Variant uint8

const (
	TwoMic Variant = iota
	FourMic
)

type variantInfo struct {
	token    string
	ledCount int
}

var variants = [...]variantInfo{
	TwoMic:  {token: "2mic", ledCount: 3},
	FourMic: {token: "4mic", ledCount: 12},
}

// Variants lists every supported variant in declaration order.
func Variants() []Variant {
	return []Variant{TwoMic, FourMic}
}

// LookupVariant matches token exactly against the known variant tokens.
func LookupVariant(token string) (Variant, error) {
	for i, v := range variants {
		if v.token == token {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, token)
}

func (v Variant) String() string {
	if int(v) < len(variants) {
		return variants[v].token
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func (v Variant) LEDCount() int {
	if int(v) < len(variants) {
		return variants[v].ledCount
	}
	return 0
}

// FrameLen is the size in bytes of every color frame for this variant.
func (v Variant) FrameLen() int {
	return v.LEDCount() * RecordSize
}
