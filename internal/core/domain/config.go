package domain

import "path/filepath"

const (
	// DefaultCargo is the cargo executable used when none is configured.
	DefaultCargo = "cargo"
	// DefaultManifest is the manifest file name.
	DefaultManifest = "Cargo.toml"
	// DefaultLockfile is the lock file name.
	DefaultLockfile = "Cargo.lock"
	// ConfigFileName is the optional per-project config file.
	ConfigFileName = "cargo-build-deps.yaml"
	// EnvPrefix prefixes environment variable overrides, e.g. CARGO_BUILD_DEPS_TARGET.
	EnvPrefix = "CARGO_BUILD_DEPS"
)

// Config is the resolved configuration for a single invocation.
type Config struct {
	Dir      string   `mapstructure:"-"`
	Cargo    string   `mapstructure:"cargo"`
	Manifest string   `mapstructure:"manifest"`
	Lockfile string   `mapstructure:"lockfile"`
	Release  bool     `mapstructure:"release"`
	Target   string   `mapstructure:"target"`
	Args     []string `mapstructure:"args"`
	Journal  string   `mapstructure:"journal"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Dir:      ".",
		Cargo:    DefaultCargo,
		Manifest: DefaultManifest,
		Lockfile: DefaultLockfile,
	}
}

// ManifestPath returns the manifest location relative to Dir.
func (c Config) ManifestPath() string {
	return resolvePath(c.Dir, c.Manifest)
}

// LockfilePath returns the lock file location relative to Dir.
func (c Config) LockfilePath() string {
	return resolvePath(c.Dir, c.Lockfile)
}

// JournalPath returns the journal location relative to Dir, or "" when journaling is off.
func (c Config) JournalPath() string {
	if c.Journal == "" {
		return ""
	}
	return resolvePath(c.Dir, c.Journal)
}

// BuildOptions derives the per-package build options.
func (c Config) BuildOptions() BuildOptions {
	return BuildOptions{
		Cargo:     c.Cargo,
		Release:   c.Release,
		Target:    c.Target,
		ExtraArgs: c.Args,
		Dir:       c.Dir,
		Journal:   c.JournalPath(),
	}
}

func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
