// Package keymap defines the fixed key matrix of the Omen Sequencer keyboard
// and the named key groups that expand to multiple matrix positions.
package keymap

import "sort"

// Unused marks a matrix slot that has no key behind it. Unused slots keep
// their exact position so that slot index stays the sole addressing scheme
// into the wire protocol.
const Unused = "????"

// NumSlots is the total number of matrix slots, including unused ones.
const NumSlots = 147

// layout lists every matrix slot in wire order. The order is dictated by the
// firmware's LED matrix and must never change.
var layout = [NumSlots]string{
	"esc", "\\", "tab", "capslock", "lshift", "lcontrol",
	"f12", "«", "f9", "9", "o", "l", ",", "<", Unused, "leftarrow",
	"f1", "1", "q", "a", Unused, "windows", "prtscrn", Unused,
	"f10", "0", "p", "ç", ".", Unused, "enter", "downarrow",
	"f2", "2", "w", "s", "z", "lalt", "sclock", "del",
	"f11", "'", "+", "º", "-", Unused, Unused, "rightarrow",
	"f3", "3", "e", "d", "x", Unused, "pause", "delete",
	Unused, "numpad7", "p1", Unused,
	"numlock", "numpad6", Unused, Unused,
	"f4", "4", "r", "f", "c", Unused, "insert", "end",
	Unused, "numpad8", "p2", Unused,
	"numpad/", "numpad1", Unused, Unused,
	"f5", "5", "t", "g", "v", Unused, "home", "pgdown",
	"stop", "numpad9", "p3", Unused,
	"numpad*", "numpad2", Unused, Unused,
	"f6", "6", "y", "h", "b", Unused, "pgup", "rshift",
	"playlast", Unused, "p4", Unused,
	"numpad-", "numpad3", Unused, Unused,
	"f7", "7", "u", "j", "n", "altgr", "´", "rctrl",
	"play", "numpad4", "p5", Unused,
	"numpad+", "numpad0", Unused, Unused,
	"f8", "8", "i", "k", "m", "fn", "~", "arrowup",
	"playnext", "numpad5", Unused, Unused,
	"numpadenter", "numpad.",
	Unused, Unused, Unused, Unused, Unused,
}

// groups maps a group name to the key names it expands to. Every member must
// exist verbatim in layout; keymap tests enforce this.
var groups = map[string][]string{
	"pkeys":  {"p1", "p2", "p3", "p4", "p5"},
	"fkeys":  {"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12"},
	"media":  {"play", "stop", "playlast", "playnext"},
	"arrows": {"arrowup", "downarrow", "leftarrow", "rightarrow"},
	"numpad": {
		"numlock", "numpad/", "numpad*", "numpad-", "numpad+", "numpadenter", "numpad.",
		"numpad0", "numpad1", "numpad2", "numpad3", "numpad4",
		"numpad5", "numpad6", "numpad7", "numpad8", "numpad9",
	},
	"system": {"prtscrn", "sclock", "pause", "insert", "del", "delete", "home", "end", "pgup", "pgdown"},
}

// Layout returns the full matrix layout in wire order, unused slots included.
func Layout() []string {
	out := make([]string, NumSlots)
	copy(out, layout[:])
	return out
}

// Groups returns the group table as a fresh map of fresh slices.
func Groups() map[string][]string {
	out := make(map[string][]string, len(groups))
	for name, members := range groups {
		out[name] = append([]string(nil), members...)
	}
	return out
}

// Keys returns every real key name, sorted, with unused slots omitted.
func Keys() []string {
	out := make([]string, 0, NumSlots)
	for _, k := range layout {
		if k != Unused {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
