package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openomen/omenctl/keymap"
	"github.com/openomen/omenctl/protocol"
)

func TestResolveOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]protocol.Color
	}{
		{
			name: "single key",
			args: []string{"q", "ff0000"},
			want: map[string]protocol.Color{"q": 0xff0000},
		},
		{
			name: "later pair wins",
			args: []string{"k", "ff0000", "k", "00ff00"},
			want: map[string]protocol.Color{"k": 0x00ff00},
		},
		{
			name: "group expands to every member",
			args: []string{"pkeys", "ff0000"},
			want: map[string]protocol.Color{
				"p1": 0xff0000, "p2": 0xff0000, "p3": 0xff0000, "p4": 0xff0000, "p5": 0xff0000,
			},
		},
		{
			name: "key pair after group overrides the member",
			args: []string{"pkeys", "ff0000", "p3", "0000ff"},
			want: map[string]protocol.Color{"p1": 0xff0000, "p3": 0x0000ff},
		},
		{
			name: "unknown key names are accepted",
			args: []string{"macropad", "123456"},
			want: map[string]protocol.Color{"macropad": 0x123456},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := protocol.ResolveOverrides(tt.args)
			require.NoError(t, err)
			for key, want := range tt.want {
				assert.Equal(t, want, o.ColorOf(key), "key %q", key)
			}
		})
	}
}

func TestResolveOverridesErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		token string
	}{
		{name: "odd token count", args: []string{"p1", "ff0000", "p2"}, token: "p2"},
		{name: "malformed hex", args: []string{"p1", "zzz"}, token: "zzz"},
		{name: "more than 24 bits", args: []string{"p1", "1ffffff"}, token: "1ffffff"},
		{name: "empty color token", args: []string{"p1", ""}, token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := protocol.ResolveOverrides(tt.args)
			require.Error(t, err)
			var perr *protocol.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.token, perr.Token)
		})
	}
}

func TestResolveDisjointGroupsOrderIndependent(t *testing.T) {
	ab, err := protocol.ResolveOverrides([]string{"pkeys", "ff0000", "arrows", "00ff00"})
	require.NoError(t, err)
	ba, err := protocol.ResolveOverrides([]string{"arrows", "00ff00", "pkeys", "ff0000"})
	require.NoError(t, err)

	for _, key := range keymap.Keys() {
		assert.Equal(t, ab.ColorOf(key), ba.ColorOf(key), "key %q", key)
	}
}

func TestDefaultFallback(t *testing.T) {
	o, err := protocol.ResolveOverrides([]string{"p1", "ff0000"})
	require.NoError(t, err)
	assert.Equal(t, protocol.White, o.Default())
	assert.Equal(t, protocol.White, o.ColorOf("enter"))

	for _, name := range []string{"all", "base"} {
		o, err := protocol.ResolveOverrides([]string{name, "010203"})
		require.NoError(t, err)
		assert.Equal(t, protocol.Color(0x010203), o.Default())
		assert.Equal(t, protocol.Color(0x010203), o.ColorOf("enter"))
	}
}

func TestColorChannels(t *testing.T) {
	c := protocol.Color(0x123456)
	assert.Equal(t, byte(0x12), c.Channel(protocol.RedOffset))
	assert.Equal(t, byte(0x34), c.Channel(protocol.GreenOffset))
	assert.Equal(t, byte(0x56), c.Channel(protocol.BlueOffset))
	assert.Equal(t, "123456", c.String())
}
