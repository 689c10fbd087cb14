// Package reconciler intersects a manifest's declared dependencies with the packages
// pinned in its lock file.
//
// Every function here is total: absent or mistyped sections yield empty results
// and missing fields yield empty strings. Errors only ever come from loading documents.
package reconciler

import (
	"slices"

	"go.trai.ch/depbuild/internal/core/domain"
)

const (
	// DependenciesKey is the manifest table listing direct dependencies.
	DependenciesKey = "dependencies"
	// PackageKey is the lock array holding one table per resolved package.
	PackageKey = "package"

	nameField    = "name"
	versionField = "version"
)

// Reconcile returns the resolved "<name>:<version>" identifier of every locked package
// whose name is declared in the manifest, in lock order.
func Reconcile(manifest, lock domain.Document) []domain.ResolvedDependency {
	return ExtractLockedPackages(lock, ExtractDeclaredNames(manifest))
}

// ExtractDeclaredNames returns the keys of the manifest's dependencies table.
// It returns an empty slice when the table is absent or is not a table.
func ExtractDeclaredNames(manifest domain.Document) []string {
	deps, ok := manifest.Get(DependenciesKey)
	if !ok || deps.Kind() != domain.KindTable {
		return []string{}
	}
	return deps.Keys()
}

// ExtractLockedPackages returns the identifiers of the lock's packages whose name is in declared.
// Lock order and duplicate entries are preserved.
func ExtractLockedPackages(lock domain.Document, declared []string) []domain.ResolvedDependency {
	resolved := []domain.ResolvedDependency{}
	for _, pkg := range LockedPackages(lock) {
		if slices.Contains(declared, pkg.Name) {
			resolved = append(resolved, pkg.ID())
		}
	}
	return resolved
}

// LockedPackages returns every table entry of the lock's package array as a record.
// Entries that are not tables are skipped.
func LockedPackages(lock domain.Document) []domain.LockedPackage {
	section, ok := lock.Get(PackageKey)
	if !ok {
		return []domain.LockedPackage{}
	}
	entries, ok := section.Array()
	if !ok {
		return []domain.LockedPackage{}
	}

	pkgs := make([]domain.LockedPackage, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind() != domain.KindTable {
			continue
		}
		pkgs = append(pkgs, domain.LockedPackage{
			Name:    StringField(entry.Get(nameField)),
			Version: StringField(entry.Get(versionField)),
		})
	}
	return pkgs
}

// StringField reads a looked-up field as a string, defaulting to "" when the field
// is missing or is not a string.
func StringField(field domain.Document, ok bool) string {
	if !ok {
		return ""
	}
	s, _ := field.Str()
	return s
}
