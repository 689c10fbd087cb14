package domain

import "go.trai.ch/zerr"

var (
	// ErrDocumentRead is returned when a manifest or lock file cannot be opened or read.
	ErrDocumentRead = zerr.New("failed to read document")

	// ErrDocumentParse is returned when a manifest or lock file is not valid TOML.
	ErrDocumentParse = zerr.New("failed to parse document")

	// ErrNoDependencies is returned when no declared dependency resolves against the lock file.
	ErrNoDependencies = zerr.New("can't find dependencies")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrJournalFailed is returned when the build journal cannot be created.
	ErrJournalFailed = zerr.New("failed to open journal")

	// ErrBuildFailed is returned when building a package fails.
	ErrBuildFailed = zerr.New("failed to build package")

	// ErrUnexpectedArgument is returned when the CLI receives a positional argument it does not understand.
	ErrUnexpectedArgument = zerr.New("unexpected argument")
)
