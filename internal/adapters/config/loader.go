// Package config provides the configuration loader for cargo-build-dependencies.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
// Precedence, lowest first: defaults, cargo-build-deps.yaml, CARGO_BUILD_DEPS_* environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for the project rooted at cwd.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	v := newViper()

	path := filepath.Join(cwd, domain.ConfigFileName)
	file, found, err := readFile(path)
	if err != nil {
		return domain.Config{}, err
	}
	if found {
		if err := v.MergeConfigMap(file.settings()); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		if l.Logger != nil {
			l.Logger.Info("using config " + path)
		}
	}

	cfg := domain.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	cfg.Dir = cwd

	return cfg, nil
}

func newViper() *viper.Viper {
	defaults := domain.DefaultConfig()

	v := viper.New()
	v.SetDefault("cargo", defaults.Cargo)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("lockfile", defaults.Lockfile)
	v.SetDefault("release", defaults.Release)
	v.SetDefault("target", defaults.Target)
	v.SetDefault("args", []string{})
	v.SetDefault("journal", defaults.Journal)

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// readFile decodes the config file at path. A missing file is reported as not found.
func readFile(path string) (*File, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, true, nil
}
