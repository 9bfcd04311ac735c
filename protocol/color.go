package protocol

import (
	"fmt"
	"strconv"
)

// Color is a 24-bit RGB value: red in bits 16-23, green in 8-15, blue in 0-7.
type Color uint32

// White is the fallback color for keys without an override or default.
const White Color = 0xffffff

// Channel byte offsets within a Color.
const (
	RedOffset   = 16
	GreenOffset = 8
	BlueOffset  = 0
)

// ParseColor parses a hexadecimal color token such as "ff8800". Tokens wider
// than 24 bits are rejected rather than truncated.
func ParseColor(token string) (Color, error) {
	v, err := strconv.ParseUint(token, 16, 24)
	if err != nil {
		return 0, &ParseError{Token: token, Reason: "not a 24-bit hexadecimal color"}
	}
	return Color(v), nil
}

// Channel extracts the single channel byte selected by a bit offset.
func (c Color) Channel(offset uint) byte {
	return byte(c >> offset)
}

func (c Color) String() string {
	return fmt.Sprintf("%06x", uint32(c))
}
