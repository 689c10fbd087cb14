package config

// File represents the structure of the cargo-build-deps.yaml configuration file.
// Pointer fields distinguish "unset" from zero values so defaults survive.
type File struct {
	Cargo    *string  `yaml:"cargo"`
	Manifest *string  `yaml:"manifest"`
	Lockfile *string  `yaml:"lockfile"`
	Release  *bool    `yaml:"release"`
	Target   *string  `yaml:"target"`
	Args     []string `yaml:"args"`
	Journal  *string  `yaml:"journal"`
}

// settings returns the fields present in the file, keyed like domain.Config's mapstructure tags.
func (f *File) settings() map[string]any {
	m := make(map[string]any)
	if f.Cargo != nil {
		m["cargo"] = *f.Cargo
	}
	if f.Manifest != nil {
		m["manifest"] = *f.Manifest
	}
	if f.Lockfile != nil {
		m["lockfile"] = *f.Lockfile
	}
	if f.Release != nil {
		m["release"] = *f.Release
	}
	if f.Target != nil {
		m["target"] = *f.Target
	}
	if f.Args != nil {
		m["args"] = f.Args
	}
	if f.Journal != nil {
		m["journal"] = *f.Journal
	}
	return m
}
