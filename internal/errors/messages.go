package errors

import "fmt"

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogDirNotFound creates an error for a missing changelog directory.
func ChangelogDirNotFound(path string) *CLIError {
	return NewInputError(
		fmt.Sprintf("changelog directory not found: %s", path),
		"Run 'chlog init' to create it",
		"Or pass the directory explicitly with --path",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for TOML syntax errors",
		"Remove the file to fall back to defaults",
	)
}

// ComponentNotDefined creates an error for an entry filed under an
// undeclared component.
func ComponentNotDefined(id string) *CLIError {
	return NewInputError(
		fmt.Sprintf("component not defined in configuration: %s", id),
		"Declare the component under [components.all] in config.toml",
		"Or move the entry out of the component subdirectory",
	)
}

// InvalidVersion creates an error for a release name that does not carry a
// valid semantic version.
func InvalidVersion(name string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version: %s", name),
		"chlog release <version>",
		"Versions must contain a full semantic version (e.g., v0.1.0)",
	)
}

// NoUnreleasedEntries creates an error when there is nothing to render or
// release.
func NoUnreleasedEntries() *CLIError {
	return NewInputError(
		"no unreleased entries found",
		"Add an entry with: chlog add --section <section> --id <id> --message \"...\"",
	)
}

// MissingEntryMessage creates an error for an add invocation without content.
func MissingEntryMessage() *CLIError {
	return NewArgumentErrorWithUsage(
		"an entry message is required",
		"chlog add --section <section> --id <id> --message \"<description>\"",
		"Provide the change description in quotes",
	)
}

// GitRemoteNotDetected creates an error when no project URL can be inferred.
func GitRemoteNotDetected() *CLIError {
	return NewConfigError(
		"could not infer the project URL from the git remote",
		"Set project-url in config.toml",
		"Or pass it explicitly with --project-url",
	)
}
