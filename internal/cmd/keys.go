package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/openomen/omenctl/keymap"
)

// Keys lists every paintable key name and the named groups.
type Keys struct{}

func (k *Keys) Run() error {
	groups := keymap.Groups()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Groups:")
	for _, name := range names {
		members := groups[name]
		sort.Strings(members)
		fmt.Printf("    %s: %s\n", name, strings.Join(members, ", "))
	}

	fmt.Println("Keys:")
	printColumns(keymap.Keys())
	return nil
}

// printColumns lays the key names out in columns when stdout is a terminal,
// one per line otherwise.
func printColumns(keys []string) {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, _ = term.GetSize(int(os.Stdout.Fd()))
	}
	if width <= 0 {
		for _, k := range keys {
			fmt.Printf("    %s\n", k)
		}
		return
	}

	colWidth := 0
	for _, k := range keys {
		if len(k) > colWidth {
			colWidth = len(k)
		}
	}
	colWidth += 2
	perLine := (width - 4) / colWidth
	if perLine < 1 {
		perLine = 1
	}

	for i, k := range keys {
		if i%perLine == 0 {
			fmt.Print("    ")
		}
		fmt.Printf("%-*s", colWidth, k)
		if i%perLine == perLine-1 || i == len(keys)-1 {
			fmt.Println()
		}
	}
}
