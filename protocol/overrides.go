// Package protocol resolves key color overrides and encodes them into the
// vendor HID report sequence understood by the Omen Sequencer firmware.
package protocol

import (
	"fmt"

	"github.com/openomen/omenctl/keymap"
)

// Names reserved for the default fallback color. Both spellings are accepted;
// "base" matches the vendor tool, "all" reads better on the command line.
const (
	DefaultNameAll  = "all"
	DefaultNameBase = "base"
)

// ParseError describes an override argument list that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid override %q: %s", e.Token, e.Reason)
}

// Overrides is the resolved key to color table, immutable once built.
type Overrides struct {
	colors     map[string]Color
	def        Color
	hasDefault bool
}

// ResolveOverrides builds an override table from alternating name and hex
// color tokens. A name matching a group applies the color to every member;
// "all"/"base" set the default fallback; any other name is kept as a single
// key mapping, even when it does not exist in the layout. Pairs apply left to
// right, later pairs win.
func ResolveOverrides(args []string) (*Overrides, error) {
	if len(args)%2 != 0 {
		return nil, &ParseError{
			Token:  args[len(args)-1],
			Reason: "expected alternating name and color pairs, e.g. pkeys ff0000 home 00ff00",
		}
	}

	o := &Overrides{colors: make(map[string]Color, len(args)/2)}
	groups := keymap.Groups()
	for i := 0; i < len(args); i += 2 {
		name := args[i]
		color, err := ParseColor(args[i+1])
		if err != nil {
			return nil, err
		}
		switch {
		case name == DefaultNameAll || name == DefaultNameBase:
			o.def = color
			o.hasDefault = true
		default:
			if members, ok := groups[name]; ok {
				for _, m := range members {
					o.colors[m] = color
				}
				continue
			}
			o.colors[name] = color
		}
	}
	return o, nil
}

// ColorOf returns the resolved color for a key, falling back to the default.
func (o *Overrides) ColorOf(key string) Color {
	if c, ok := o.colors[key]; ok {
		return c
	}
	return o.Default()
}

// Default returns the fallback color: the "all"/"base" value if one was
// supplied, white otherwise.
func (o *Overrides) Default() Color {
	if o.hasDefault {
		return o.def
	}
	return White
}
