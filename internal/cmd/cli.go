// Package cmd declares the omenctl command line surface. Commands are kong
// structs whose Run methods receive the bound logger.
package cmd

import "github.com/alecthomas/kong"

// LogConfig groups the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"OMENCTL_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"OMENCTL_LOG_FILE"`
	RawFile string `help:"Write raw report hex dumps to this file" env:"OMENCTL_LOG_RAW_FILE"`
}

// CLI is the root of the omenctl command tree.
type CLI struct {
	Log        LogConfig        `embed:"" prefix:"log."`
	ConfigPath string           `name:"config" help:"Path to a configuration file" env:"OMENCTL_CONFIG"`
	Version    kong.VersionFlag `short:"V" help:"Print version information and quit"`

	Paint  Paint         `cmd:"" default:"withargs" help:"Program the per-key RGB backlight"`
	Keys   Keys          `cmd:"" help:"List paintable key and group names"`
	Config ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
