package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"ai-planning-studio/config"
	"ai-planning-studio/pkg/gcalendar"
)

// calendarAuthCMD runs the one-time OAuth consent for Google Calendar export
// and stores the resulting token next to the credentials.
func calendarAuthCMD() *cobra.Command {
	var credsPath, tokenPath string
	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and write the token file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if credsPath == "" {
				credsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if tokenPath == "" {
				tokenPath = cfg.GoogleCalendar.TokenPath
			}
			if credsPath == "" {
				return fmt.Errorf("no credentials file: pass --credentials or set GOOGLE_CALENDAR_CREDENTIALS")
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth desktop-app credentials file?)", err, credsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the Google account to export to:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the server to enable calendar export.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "", "OAuth client credentials JSON (default google_calendar.credentials_path)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "where to write the token (default google_calendar.token_path)")
	return cmd
}
