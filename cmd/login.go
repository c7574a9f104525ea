package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moby/term" // nolint
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/settings"
)

const loginDesc = `
Verify credentials against a Nexus server and store them. The server becomes
the default of later commands.

Examples:

    $ nexusctl login https://nexus.example.com -u USERNAME -p PASSWORD

    # login by stdin
    $ echo PASSWORD | nexusctl login https://nexus.example.com -u USERNAME --password-stdin
`

func newLoginCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [server]",
		Short: "Login to a Nexus server",
		Long:  loginDesc,
		Args:  require.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			server := args[0]
			username, password, err := getUsernamePassword(settings.Username, settings.Password, settings.PasswordFromStdin)
			if err != nil {
				return err
			}

			debug("Got username: [%s]", username)

			return action.NewRegistryLogin(cfg).Run(c.Context(), out, server, username, password, settings.Insecure, settings.LegacyPath)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&settings.PasswordFromStdin, "password-stdin", "", false, "read password from stdin")

	return cmd
}

// Adapted from https://github.com/oras-project/oras
func getUsernamePassword(usernameOpt string, passwordOpt string, passwordFromStdinOpt bool) (string, string, error) {
	var err error
	username := usernameOpt
	password := passwordOpt

	if passwordFromStdinOpt {
		passwordFromStdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		password = strings.TrimSuffix(string(passwordFromStdin), "\n")
		password = strings.TrimSuffix(password, "\r")
		if username == "" {
			return "", "", errors.New("--username is required with --password-stdin")
		}
		return username, password, nil
	}

	if password != "" {
		warning("Using --password via the CLI is insecure. Use --password-stdin.")
	}

	if username == "" {
		username, err = readLine("Username: ", false)
		if err != nil {
			return "", "", err
		}
		username = strings.TrimSpace(username)
	}

	if password == "" {
		password, err = readLine("Password: ", true)
		if err != nil {
			return "", "", err
		} else if password == "" {
			return "", "", errors.New("password required")
		}
	}

	return username, password, nil
}

// Copied/adapted from https://github.com/oras-project/oras
func readLine(prompt string, silent bool) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if silent {
		fd := os.Stdin.Fd()
		state, err := term.SaveState(fd)
		if err != nil {
			return "", err
		}
		_ = term.DisableEcho(fd, state)
		defer func() { _ = term.RestoreTerminal(fd, state) }()
	}

	reader := bufio.NewReader(os.Stdin)
	line, _, err := reader.ReadLine()
	if err != nil {
		return "", err
	}
	if silent {
		fmt.Fprintln(os.Stderr)
	}

	return string(line), nil
}
