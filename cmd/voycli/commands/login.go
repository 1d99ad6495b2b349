package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voycli/voycli/internal/client"
	"github.com/voycli/voycli/internal/config"
	"github.com/voycli/voycli/pkg/voyager"
)

// NewLoginCommand creates the login command. Cookies are prompted without
// echo, verified against the upstream, and saved as a named account.
func NewLoginCommand() *cobra.Command {
	var (
		name         string
		liAt         string
		jsessionID   string
		cookieSource string
		skipVerify   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save session cookies as a named account",
		Long: `Save a session cookie pair as a named account.

Cookies can be passed by flag, extracted from a browser with --browser, or
entered interactively (input is not echoed).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return ErrAccountNameRequired
			}

			if cookieSource == "" && liAt == "" {
				reader := bufio.NewReader(os.Stdin)

				fmt.Print("li_at cookie: ")

				value, err := term.ReadPassword(syscall.Stdin)

				fmt.Println()

				if err != nil {
					// Not a terminal; fall back to plain reads.
					line, readErr := reader.ReadString('\n')
					if readErr != nil {
						return fmt.Errorf("reading li_at: %w", readErr)
					}

					liAt = strings.TrimSpace(line)
				} else {
					liAt = strings.TrimSpace(string(value))
				}

				fmt.Print("JSESSIONID cookie: ")

				value, err = term.ReadPassword(syscall.Stdin)

				fmt.Println()

				if err != nil {
					line, readErr := reader.ReadString('\n')
					if readErr != nil {
						return fmt.Errorf("reading JSESSIONID: %w", readErr)
					}

					jsessionID = strings.TrimSpace(line)
				} else {
					jsessionID = strings.TrimSpace(string(value))
				}
			}

			if cookieSource == "" && (liAt == "" || jsessionID == "") {
				return ErrCookiePairRequired
			}

			if !skipVerify {
				verifyClient, err := client.New(client.Options{
					Cookies:      voyager.CookieSet{LiAt: liAt, JSessionID: jsessionID},
					CookieSource: cookieSource,
				})
				if err != nil {
					return err
				}

				profile, err := verifyClient.GetOwnProfile(cmd.Context())
				if err != nil {
					return fmt.Errorf("verifying session: %w", err)
				}

				fmt.Printf("Authenticated as %s %s\n", profile.FirstName, profile.LastName)
			}

			err := config.SaveAccount(name, config.Account{
				LiAt:         liAt,
				JSessionID:   jsessionID,
				CookieSource: cookieSource,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Saved account %q\n", name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name to save under")
	cmd.Flags().StringVar(&liAt, "li-at", "", "li_at session cookie")
	cmd.Flags().StringVar(&jsessionID, "jsessionid", "", "JSESSIONID session cookie")
	cmd.Flags().StringVar(&cookieSource, "browser", "", "extract cookies from a browser (firefox)")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save without verifying the session upstream")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove a saved account",
		RunE: func(_ *cobra.Command, _ []string) error {
			if name == "" {
				return ErrAccountNameRequired
			}

			if err := config.RemoveAccount(name); err != nil {
				return err
			}

			fmt.Printf("Removed account %q\n", name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name to remove")

	return cmd
}
