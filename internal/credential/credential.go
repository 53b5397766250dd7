// Package credential supplies the places provider API key.
package credential

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"restaurant-finder-api/internal/models"

	"golang.org/x/term"
)

// PromptFunc asks the operator for the key.
type PromptFunc func() (string, error)

// Provider looks the key up in the secret store first and falls back to a prompt.
type Provider struct {
	secret string
	prompt PromptFunc
}

// NewProvider creates a provider. prompt may be nil when no operator is present.
func NewProvider(secret string, prompt PromptFunc) *Provider {
	return &Provider{secret: secret, prompt: prompt}
}

// APIKey returns a non-empty key or models.ErrMissingCredential.
func (p *Provider) APIKey() (string, error) {
	if key := strings.TrimSpace(p.secret); key != "" {
		return key, nil
	}
	if p.prompt == nil {
		return "", models.ErrMissingCredential
	}

	key, err := p.prompt()
	if err != nil {
		return "", fmt.Errorf("credential: prompt failed: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", models.ErrMissingCredential
	}
	return key, nil
}

// TerminalPrompt reads the key from stdin without echo when stdin is a terminal,
// and as a plain line otherwise.
func TerminalPrompt(out io.Writer) PromptFunc {
	return func() (string, error) {
		fmt.Fprint(out, "Google API Key: ")
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(b), err
		}
		return readLine(os.Stdin)
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
