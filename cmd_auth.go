package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/session"
)

type loginCommand struct {
	deps *cliDeps
	// prompt asks for the credentials missing from the flags
	prompt func(username, password *string) error
}

func newLoginCmd(deps *cliDeps) *cobra.Command {
	login := loginCommand{deps: deps, prompt: promptCredentials}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long:  `Exchange a username and password for a session token and store it for later runs.`,
		Args:  cobra.NoArgs,
		RunE:  login.run,
	}
	cmd.Flags().StringP("username", "u", "", "username to log in with")
	cmd.Flags().String("password", "", "password (prompted for when omitted)")

	return cmd
}

func promptCredentials(username, password *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(required("password")),
		),
	).Run()
}

func (c *loginCommand) run(cmd *cobra.Command, _ []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if strings.TrimSpace(username) == "" || password == "" {
		if err := c.prompt(&username, &password); err != nil {
			return fmt.Errorf("failed to read credentials: %w", err)
		}
	}

	if c.deps.auth == nil {
		return errors.New("no backend configured")
	}

	tok, err := c.deps.auth.Login(cmd.Context(), strings.TrimSpace(username), password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("login failed: incorrect username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := c.deps.store.Save(tok.AccessToken); err != nil {
		return err
	}
	c.deps.token = tok.AccessToken

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", strings.TrimSpace(username))
	return nil
}

func newLogoutCmd(deps *cliDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.store.Clear(); err != nil {
				return err
			}
			deps.token = ""

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// profile is the output of the profile command.
type profile struct {
	Username  string     `json:"username" yaml:"username"`
	Email     string     `json:"email" yaml:"email"`
	Subject   string     `json:"subject,omitempty" yaml:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

func newProfileCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			backend, err := deps.requireSession()
			if err != nil {
				return err
			}

			user, err := backend.GetUser(cmd.Context())
			if err != nil {
				return deps.guard(fmt.Errorf("failed to fetch profile: %w", err))
			}

			p := profile{Username: user.Username, Email: user.Email}
			if claims, err := session.ParseClaims(deps.token); err == nil {
				p.Subject = claims.Subject
				if !claims.ExpiresAt.IsZero() {
					p.ExpiresAt = &claims.ExpiresAt
				}
			}

			return render(cmd.OutOrStdout(), format, p, func() fmt.Stringer {
				t := createStyledTable("FIELD", "VALUE").
					Row("Username", p.Username).
					Row("Email", p.Email)
				if p.ExpiresAt != nil {
					t.Row("Session expires", p.ExpiresAt.Local().Format(time.DateTime))
				}
				return t
			})
		},
	}
	addOutputFlag(cmd)

	return cmd
}
