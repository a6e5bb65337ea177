// Package exitcode defines named exit codes for the sysupdate CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and the desktop front-end.
package exitcode

// Exit code constants.
const (
	Success         = 0   // Command completed; no update pending
	Error           = 1   // Invalid args, unwritable config, misconfiguration
	UpdateAvailable = 2   // A newer release is published
	CheckFailed     = 3   // Release API could not be reached or parsed
	Interrupted     = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case UpdateAvailable:
		return "UpdateAvailable"
	case CheckFailed:
		return "CheckFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
