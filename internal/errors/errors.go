package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/culturepulse/internal/insight"
	"github.com/julianstephens/culturepulse/internal/keyring"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/storage/postgres"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Hint returns a remediation line for errors the user can fix from the shell,
// or "" when there is nothing useful to suggest.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, insight.ErrNotConfigured):
		return "Set GEMINI_API_KEY or store a key with 'culturepulse config set-key'."
	case errors.Is(err, keyring.ErrKeyringUnavailable):
		return "The OS keyring is not available; use the GEMINI_API_KEY environment variable instead."
	case errors.Is(err, postgres.ErrEmbeddedCredentials):
		return "Store the connection string with 'culturepulse config set-dsn' or use CULTUREPULSE_DB_CONNECTION / .pgpass."
	case errors.Is(err, insight.ErrMalformedPlan), errors.Is(err, insight.ErrNoResponse):
		return "The insight service returned an unusable answer; run the command again."
	}
	return ""
}

// Fatal logs an error, prints it with any hint, and exits with code 1
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(os.Stderr, "       %s\n", hint)
	}
	os.Exit(1)
}
