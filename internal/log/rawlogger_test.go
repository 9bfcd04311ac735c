package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openomen/omenctl/internal/log"
)

func TestRawLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)
	raw.Log(3, []byte{0x05, 0x00, 0x3c, 0x00, 0xff})

	out := buf.String()
	assert.Contains(t, out, "report 3: 5 bytes, hex: 05 00 3c 00 ff")
}

func TestRawLoggerNoOutput(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)
	raw.Log(0, nil)
	assert.Empty(t, buf.String())

	assert.NotPanics(t, func() {
		log.NewRaw(nil).Log(1, []byte{0x01})
	})
}
