package cli

// Exit codes for the relmate CLI.
// These codes support programmatic composition and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeFailure indicates a runtime or external tool failure
	// (Maven versions:set, git operations)
	ExitRuntimeFailure = 1

	// ExitInvalidArguments indicates invalid command arguments,
	// such as a malformed version string
	ExitInvalidArguments = 2

	// ExitEnvironmentError indicates missing or invalid CI environment
	// variables (GITHUB_OUTPUT, GITHUB_SERVER_URL, GITHUB_REPOSITORY)
	ExitEnvironmentError = 3
)
