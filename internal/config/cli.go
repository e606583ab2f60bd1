// Package config defines the metagen command line. Every flag can also be
// set from a JSON, YAML or TOML config file, and most from METAGEN_* env vars.
package config

import (
	"github.com/Alia5/CCereal/internal/cmd"

	"github.com/alecthomas/kong"
)

// Log holds logger settings shared by all commands.
type Log struct {
	Level  string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"METAGEN_LOG_LEVEL"`
	File   string `help:"Also write logs to this file" env:"METAGEN_LOG_FILE"`
	Format string `help:"Log format; auto picks text on a terminal and json otherwise" default:"text" enum:"auto,text,json" env:"METAGEN_LOG_FORMAT"`
}

// CLI is the root kong model.
type CLI struct {
	Config  string           `help:"Configuration file (json, yaml or toml)" env:"METAGEN_CONFIG" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version and exit"`
	Log     Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate StructScheme tables for annotated structs (default)"`
	Inspect  cmd.Inspect       `cmd:"" help:"Print the scanned structs, fields and enums"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
