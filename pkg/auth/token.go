package auth

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvAPIToken names the environment variable holding the client token
const EnvAPIToken = "QSIM_API_TOKEN"

// ErrNotTerminal is returned when a prompt is requested without a terminal
var ErrNotTerminal = errors.New("standard input is not a terminal")

// ResolveToken returns the explicit token if set, otherwise the value of
// QSIM_API_TOKEN. An empty result means no authentication.
func ResolveToken(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvAPIToken)
}

// PromptToken reads a token from the terminal without echoing it
func PromptToken(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	_, _ = fmt.Fprint(out, "API token: ")
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}
