// Command janseva is the citizen-facing terminal client. It signs in to the
// welfare portal, manages the household profile, and walks eligibility checks
// and scheme applications.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"janseva/internal/coordinator"
	"janseva/internal/platform/config"
	"janseva/internal/platform/logger"
	"janseva/internal/portal/client"
	"janseva/internal/session"
	"janseva/internal/session/credentials"
	"janseva/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "janseva:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _ := config.FromEnv()
	portalURL := flag.String("portal", cfg.PortalBaseURL, "portal base URL")
	credentialFile := flag.String("credential-file", cfg.CredentialFile, "where the session token is persisted")
	flag.Parse()

	log := logger.New()

	api := client.New(client.Config{
		BaseURL:            *portalURL,
		RequestTimeout:     cfg.RequestTimeout,
		EligibilityTimeout: cfg.EligibilityTimeout,
	})
	sess := session.NewManager(api, credentials.NewFileStore(*credentialFile), log)
	api.BindSession(sess, sess)
	coord := coordinator.New(api, log)

	program := tea.NewProgram(tui.New(sess, coord), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
