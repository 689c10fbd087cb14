package domain

// Command is a single external process invocation.
type Command struct {
	// Name is the executable, resolved against PATH when not absolute.
	Name string
	// Args are the arguments passed after Name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Environment holds overrides applied on top of the forwarded parent environment.
	Environment map[string]string
}

// Argv returns the full argument vector, Name included.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// BuildOptions controls how each resolved dependency is built.
type BuildOptions struct {
	// Cargo is the cargo executable.
	Cargo string
	// Release adds --release to every build.
	Release bool
	// Target adds --target=<Target> when non-empty.
	Target string
	// ExtraArgs are appended verbatim after the generated flags.
	ExtraArgs []string
	// Dir is the project directory the builds run in.
	Dir string
	// Journal, when non-empty, is the file that receives a JSON-lines record of every build.
	Journal string
}

// NewBuildCommand returns the `cargo build -p <dep>` invocation for a single dependency.
func NewBuildCommand(opts BuildOptions, dep ResolvedDependency) *Command {
	cargo := opts.Cargo
	if cargo == "" {
		cargo = DefaultCargo
	}

	args := []string{"build", "-p", dep.String()}
	if opts.Release {
		args = append(args, "--release")
	}
	if opts.Target != "" {
		args = append(args, "--target="+opts.Target)
	}
	args = append(args, opts.ExtraArgs...)

	return &Command{
		Name: cargo,
		Args: args,
		Dir:  opts.Dir,
	}
}
