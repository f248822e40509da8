package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword
var readPassword = term.ReadPassword

// promptSecret prints prompt to w and reads a value from the terminal
// without echo
func promptSecret(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	value := strings.TrimSpace(string(secret))
	if value == "" {
		return "", errors.New(strings.ToLower(prompt) + " is required")
	}
	return value, nil
}

// resolveAdminPIN picks the flag value, then R6STATUS_ADMIN_PIN, then a prompt
func resolveAdminPIN(w io.Writer, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.AdminPIN != "" {
		return cfg.AdminPIN, nil
	}
	return promptSecret(w, "Admin PIN")
}
