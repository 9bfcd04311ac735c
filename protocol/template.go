package protocol

import "encoding/hex"

// Wire templates captured from the vendor tool. The initiation report selects
// per-key color mode; each line header addresses one third of the matrix for
// one color channel. Body masks flag which byte positions of a line carry key
// data (non-zero) versus fixed zero padding.
const initTemplate = "04000200fcea00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"

const (
	body0 = "ffffffffffffffffffffffffffff00ffffffffff00ffff00ffffffffff00ffffffffffffffffffffffffffffff0000ffffffffffff00ffff00ffff00"
	body1 = "ffff0000ffffffffffffffff00ffff00ffff0000ffffffffff00ffffffffff00ffff0000ffffffffff00ffffff00ff00ffff0000ffffffffffffffff"
	body2 = "ffffff00ffff0000ffffffffffffffffffff0000ffff0000000000000000000000000000000000000000000000000000000000000000000000000000"
)

// lineTemplate pairs a fixed report header with a body mask and the channel
// bit offset its data bytes are taken from.
type lineTemplate struct {
	header string
	body   string
	offset uint
}

// lines is the fixed emission order: the three body masks cycled once per
// channel, red first, blue last.
var lines = [9]lineTemplate{
	{"05003c00", body0, RedOffset},
	{"05013c00", body1, RedOffset},
	{"05021800", body2, RedOffset},
	{"06003c00", body0, GreenOffset},
	{"06013c00", body1, GreenOffset},
	{"06021800", body2, GreenOffset},
	{"07003c00", body0, BlueOffset},
	{"07013c00", body1, BlueOffset},
	{"07021800", body2, BlueOffset},
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("protocol: bad template hex: " + err.Error())
	}
	return b
}

// InitReport returns a fresh copy of the fixed initiation report.
func InitReport() []byte {
	return mustDecodeHex(initTemplate)
}
