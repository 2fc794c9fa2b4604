package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"janseva/internal/portal/models"
)

// noticeFadeDelay is how long a transient status notice stays visible.
const noticeFadeDelay = 4 * time.Second

// Per-call deadlines are enforced inside the portal client; these commands
// pass a background context and let the client bound the wait.

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.Restore(context.Background())
		return restoreDoneMsg{}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{err: m.session.Login(context.Background(), username, password)}
	}
}

func (m Model) registerCmd(req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{err: m.session.Register(context.Background(), req)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.coord.Refresh(context.Background())}
	}
}

func (m Model) checkEligibilityCmd() tea.Cmd {
	return func() tea.Msg {
		return protocolDoneMsg{label: "eligibility check", err: m.coord.CheckEligibility(context.Background())}
	}
}

func (m Model) applyCmd(schemeName string) tea.Cmd {
	return func() tea.Msg {
		return protocolDoneMsg{label: "application for " + schemeName, err: m.coord.ApplyToScheme(context.Background(), schemeName)}
	}
}

func (m Model) submitFamilyCmd(req models.FamilyProfileRequest) tea.Cmd {
	return func() tea.Msg {
		return protocolDoneMsg{label: "family profile", err: m.coord.SubmitFamilyProfile(context.Background(), req)}
	}
}

func (m Model) markReadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return markReadDoneMsg{err: m.coord.MarkNotificationRead(context.Background(), id)}
	}
}

func noticeFadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}
