package domain

// LockedPackage is one entry of the lock document's package array.
// Only the name and version fields are read; everything else is ignored.
type LockedPackage struct {
	Name    string
	Version string
}

// ID returns the package as a resolved "<name>:<version>" identifier.
func (p LockedPackage) ID() ResolvedDependency {
	return ResolvedDependency(p.Name + ":" + p.Version)
}

// ResolvedDependency is a declared dependency paired with its exact locked version,
// in the form "<name>:<version>". This is the package argument handed to `cargo build -p`.
type ResolvedDependency string

// String returns the identifier as a plain string.
func (d ResolvedDependency) String() string {
	return string(d)
}

// IDs converts resolved dependencies to plain strings.
func IDs(deps []ResolvedDependency) []string {
	ids := make([]string, len(deps))
	for i, d := range deps {
		ids[i] = string(d)
	}
	return ids
}
