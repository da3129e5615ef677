package config

// This file binds the CLI flags onto a Config. Only --root and --apply
// exist; --help comes from the cobra command that owns the flag set.

import (
	"github.com/spf13/pflag"
)

// BindFlags registers --root and --apply on fs, writing into cfg. Defaults
// are taken from cfg so that [DefaultConfig] stays the single source.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Root directory to scan (default: current directory)")
	fs.BoolVar(&cfg.Apply, "apply", cfg.Apply, "Actually perform the renames; without it the run is a dry run")
}
