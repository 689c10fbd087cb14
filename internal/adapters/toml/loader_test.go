package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depbuild/internal/adapters/toml"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

const cargoToml = `
[package]
name = "cargo-build-dependencies"
version = "0.1.0"
edition = "2018"

[dependencies]
clap = "2.33.1"
toml = { version = "0.5.6" }

[dev-dependencies]
quickcheck = "0.9"
`

const cargoLock = `
# This file is automatically @generated by Cargo.
# It is not intended for manual editing.
[[package]]
name = "bitflags"
version = "1.2.1"
source = "registry+https://github.com/rust-lang/crates.io-index"

[[package]]
name = "clap"
version = "2.33.1"
source = "registry+https://github.com/rust-lang/crates.io-index"
dependencies = [
 "bitflags",
]

[[package]]
name = "toml"
version = "0.5.6"
source = "registry+https://github.com/rust-lang/crates.io-index"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Manifest(t *testing.T) {
	path := writeFile(t, "Cargo.toml", cargoToml)

	doc, err := toml.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.KindTable, doc.Kind())

	deps, ok := doc.Get("dependencies")
	require.True(t, ok)
	assert.Equal(t, []string{"clap", "toml"}, deps.Keys())

	clap, ok := deps.Get("clap")
	require.True(t, ok)
	assert.Equal(t, domain.KindString, clap.Kind())

	tomlDep, ok := deps.Get("toml")
	require.True(t, ok)
	assert.Equal(t, domain.KindTable, tomlDep.Kind())

	pkg, ok := doc.Get("package")
	require.True(t, ok)
	edition, ok := pkg.Get("edition")
	require.True(t, ok)
	s, ok := edition.Str()
	require.True(t, ok)
	assert.Equal(t, "2018", s)
}

func TestLoader_Load_Lockfile(t *testing.T) {
	path := writeFile(t, "Cargo.lock", cargoLock)

	doc, err := toml.NewLoader().Load(path)
	require.NoError(t, err)

	pkgs, ok := doc.Get("package")
	require.True(t, ok)
	entries, ok := pkgs.Array()
	require.True(t, ok)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, domain.KindTable, e.Kind())
	}
}

func TestLoader_Load_Reconcile(t *testing.T) {
	loader := toml.NewLoader()

	manifest, err := loader.Load(writeFile(t, "Cargo.toml", cargoToml))
	require.NoError(t, err)
	lock, err := loader.Load(writeFile(t, "Cargo.lock", cargoLock))
	require.NoError(t, err)

	got := reconciler.Reconcile(manifest, lock)

	assert.Len(t, got, 2)
	assert.Contains(t, got, domain.ResolvedDependency("clap:2.33.1"))
	assert.Contains(t, got, domain.ResolvedDependency("toml:0.5.6"))
}

func TestLoader_Load_ScalarKinds(t *testing.T) {
	path := writeFile(t, "kinds.toml", `
int = 42
float = 1.5
bool = true
date = 1979-05-27
str = "x"
arr = [1, 2]
`)

	doc, err := toml.NewLoader().Load(path)
	require.NoError(t, err)

	kinds := map[string]domain.Kind{
		"int":   domain.KindOther,
		"float": domain.KindOther,
		"bool":  domain.KindOther,
		"date":  domain.KindOther,
		"str":   domain.KindString,
		"arr":   domain.KindArray,
	}
	for key, kind := range kinds {
		v, ok := doc.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, kind, v.Kind(), key)
	}
}

func TestLoader_Load_Empty(t *testing.T) {
	doc, err := toml.NewLoader().Load(writeFile(t, "Cargo.toml", ""))
	require.NoError(t, err)
	assert.Equal(t, domain.KindTable, doc.Kind())
	assert.Empty(t, doc.Keys())
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := toml.NewLoader().Load(filepath.Join(t.TempDir(), "not-found"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read document")

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Contains(t, zErr.Metadata()["path"], "not-found")
	})

	t.Run("Invalid TOML", func(t *testing.T) {
		path := writeFile(t, "README.md", "# cargo-build-dependencies\n\nBuild [every dependency\n")

		_, err := toml.NewLoader().Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse document")

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		meta := zErr.Metadata()
		assert.Equal(t, path, meta["path"])
		assert.Contains(t, meta, "line")
	})
}
