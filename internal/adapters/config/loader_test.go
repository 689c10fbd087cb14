package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depbuild/internal/adapters/config"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Dir)
	assert.Equal(t, "cargo", cfg.Cargo)
	assert.Equal(t, "Cargo.toml", cfg.Manifest)
	assert.Equal(t, "Cargo.lock", cfg.Lockfile)
	assert.False(t, cfg.Release)
	assert.Empty(t, cfg.Target)
	assert.Empty(t, cfg.Args)
	assert.Empty(t, cfg.Journal)
}

func TestLoad_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
cargo: /opt/rust/bin/cargo
release: true
target: x86_64-unknown-linux-musl
args: ["--locked", "--offline"]
journal: build.jsonl
`)
	mockLogger.EXPECT().Info("using config " + path).Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/rust/bin/cargo", cfg.Cargo)
	assert.True(t, cfg.Release)
	assert.Equal(t, "x86_64-unknown-linux-musl", cfg.Target)
	assert.Equal(t, []string{"--locked", "--offline"}, cfg.Args)
	assert.Equal(t, "build.jsonl", cfg.Journal)
	// Unset keys keep their defaults.
	assert.Equal(t, "Cargo.toml", cfg.Manifest)
	assert.Equal(t, "Cargo.lock", cfg.Lockfile)
}

func TestLoad_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	cfg, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "cargo", cfg.Cargo)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
target: x86_64-unknown-linux-musl
`)
	t.Setenv("CARGO_BUILD_DEPS_TARGET", "wasm32-unknown-unknown")
	t.Setenv("CARGO_BUILD_DEPS_RELEASE", "true")
	t.Setenv("CARGO_BUILD_DEPS_LOCKFILE", "other.lock")

	cfg, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "wasm32-unknown-unknown", cfg.Target)
	assert.True(t, cfg.Release)
	assert.Equal(t, "other.lock", cfg.Lockfile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Invalid YAML", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tmpDir := t.TempDir()
		path := writeConfig(t, tmpDir, `
release: true
args: ["--locked"  # Unclosed list
`)

		_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, path, zErr.Metadata()["path"])
	})

	t.Run("Unknown Field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "profile: release\n")

		_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("Unreadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tmpDir := t.TempDir()
		// A directory where the file should be cannot be read as a file.
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, domain.ConfigFileName), 0o750))

		_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}
