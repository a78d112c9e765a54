// Package horde animates a crowd of sprite-sheet enemies on a 2D canvas. A World
// spawns variants on a timer, advances their motion and frame animation each tick,
// removes the ones that leave the canvas and draws the rest onto a Surface. A Loop
// turns timestamps into deltas and drives the World one frame at a time.
package horde

import "fmt"

//go:generate go tool stringer -type=Kind -linecomment

// Kind identifies an enemy variant.
type Kind uint8

const (
	KindWorm    Kind = iota // worm
	KindGhost               // ghost
	KindSpider              // spider
	KindOrbiter             // orbiter
)

// Kinds lists every built-in variant in declaration order.
var Kinds = []Kind{KindWorm, KindGhost, KindSpider, KindOrbiter}

// ParseKind returns the Kind whose name is s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
