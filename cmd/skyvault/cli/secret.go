// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSecret reads a secret value (credential token, encryption
// passphrase). When path is empty or "-", the value is prompted for
// interactively with echo disabled if stdin is a terminal, or read
// from stdin otherwise (piped invocation). Any other path names a file
// whose trimmed content is the secret.
func ReadSecret(prompt, path string) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read secret file: %w", err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", path)
		}
		return secret, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "%s: ", prompt)
		line, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		secret := strings.TrimSpace(string(line))
		if secret == "" {
			return "", fmt.Errorf("empty secret")
		}
		return secret, nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return "", fmt.Errorf("stdin is empty")
	}
	secret := strings.TrimSpace(scanner.Text())
	if secret == "" {
		return "", fmt.Errorf("empty secret")
	}
	return secret, nil
}
