package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"janseva/internal/portal/models"
)

func (m Model) View() string {
	var body string
	switch m.phase {
	case PhaseRestoring:
		body = m.spinner.View() + " restoring session..."
	case PhaseLogin:
		body = m.viewLogin()
	case PhaseRegister:
		body = m.viewRegister()
	case PhaseFamilyForm:
		body = m.viewFamilyForm()
	default:
		body = m.viewMain()
	}

	out := m.theme.Title.Render("JanSeva") + "  " + m.theme.Label.Render("welfare scheme portal") + "\n\n" + body

	if m.errText != "" {
		out += "\n" + m.theme.Error.Render(m.errText)
	}
	if m.notice != "" {
		out += "\n" + m.theme.Notice.Render(m.notice)
	}
	return m.theme.Pane.Render(out) + "\n"
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.loginForm.view(m.theme))
	if m.working {
		b.WriteString("\n" + m.spinner.View() + " signing in...")
	}
	b.WriteString("\n" + m.theme.Help.Render("enter sign in · ctrl+r create account · ctrl+c quit"))
	return b.String()
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(m.registerForm.view(m.theme))
	if m.working {
		b.WriteString("\n" + m.spinner.View() + " creating account...")
	}
	b.WriteString("\n" + m.theme.Help.Render("enter create account · esc back to sign in"))
	return b.String()
}

func (m Model) viewFamilyForm() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Family profile") + "\n")
	b.WriteString(m.theme.Label.Render("Submitted once; eligibility is determined from it.") + "\n\n")
	b.WriteString(m.familyForm.view(m.theme))
	if m.working {
		b.WriteString("\n" + m.spinner.View() + " submitting...")
	}
	b.WriteString("\n" + m.theme.Help.Render("enter submit · tab next field · esc back"))
	return b.String()
}

func (m Model) viewMain() string {
	var b strings.Builder
	b.WriteString(m.viewTabs() + "\n\n")

	switch m.activeTab {
	case TabFamily:
		b.WriteString(m.viewFamily())
	case TabSchemes:
		b.WriteString(m.viewSchemes())
	default:
		b.WriteString(m.viewNotifications())
	}

	if m.working {
		b.WriteString("\n" + m.spinner.View() + " working...")
	}
	b.WriteString("\n\n" + m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewTabs() string {
	render := func(tab Tab, label string) string {
		if tab == TabNotifications {
			if unread := m.coord.UnreadNotificationCount(); unread > 0 {
				label = fmt.Sprintf("%s (%d)", label, unread)
			}
		}
		if m.activeTab == tab {
			return m.theme.TabActive.Render(label)
		}
		return m.theme.TabInactive.Render(label)
	}
	user := ""
	if profile, ok := m.session.CurrentUser(); ok {
		user = m.theme.Label.Render("  signed in as " + profile.Username)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render(TabFamily, "1 Family"), "  ",
		render(TabSchemes, "2 Schemes"), "  ",
		render(TabNotifications, "3 Notifications"),
		user,
	)
}

func (m Model) viewFamily() string {
	family, ok := m.coord.Family()
	if !ok {
		return m.theme.Label.Render("No family profile yet. Press enter to submit one.")
	}

	row := func(label, value string) string {
		return m.theme.Label.Render(fmt.Sprintf("%-16s", label)) + m.theme.Value.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Head", family.FamilyHeadName))
	b.WriteString(row("Age", fmt.Sprintf("%d", family.Age)))
	b.WriteString(row("Gender", family.Gender))
	b.WriteString(row("Category", family.CasteCategory))
	b.WriteString(row("Occupation", family.Occupation))
	b.WriteString(row("Income", fmt.Sprintf("Rs. %.0f / year", family.AnnualIncome)))
	b.WriteString(row("Education", family.EducationLevel))
	if family.HasDisability {
		b.WriteString(row("Disability", "yes"))
	}
	if len(family.Members) > 0 {
		b.WriteString("\n" + m.theme.Label.Render("Members") + "\n")
		for _, member := range family.Members {
			b.WriteString(fmt.Sprintf("  %s (%d, %s)\n", member.Name, member.Age, member.Relationship))
		}
	}
	return b.String()
}

func (m Model) viewSchemes() string {
	schemes := m.coord.Schemes()
	if !m.coord.HasSchemesComputed() {
		if m.coord.HasProfile() {
			return m.theme.Label.Render("No determination yet. Press c to check eligibility.")
		}
		return m.theme.Label.Render("Submit a family profile first (family tab), then press c.")
	}

	var b strings.Builder
	for i, scheme := range schemes {
		line := fmt.Sprintf("%-14s %s", scheme.SchemeName, scheme.Status)
		switch {
		case i == m.schemeCursor:
			b.WriteString(m.theme.Selected.Render(line))
		case scheme.Status == models.StatusEligible:
			b.WriteString(m.theme.Eligible.Render(line))
		case scheme.Status == models.StatusApplied || scheme.Status == models.StatusApproved:
			b.WriteString(m.theme.Applied.Render(line))
		default:
			b.WriteString(m.theme.NotEligible.Render(line))
		}
		b.WriteString("\n")
	}

	if m.schemeCursor < len(schemes) {
		selected := schemes[m.schemeCursor]
		b.WriteString("\n" + m.theme.Label.Render("Why: ") + m.theme.Value.Render(selected.AIReasoning) + "\n")
	}
	return b.String()
}

func (m Model) viewNotifications() string {
	notifs := m.coord.Notifications()
	if len(notifs) == 0 {
		return m.theme.Label.Render("No notifications.")
	}

	var b strings.Builder
	for i, n := range notifs {
		marker := " "
		if !n.Read {
			marker = "●"
		}
		line := fmt.Sprintf("%s %s", marker, n.Title)
		if i == m.notifCursor {
			b.WriteString(m.theme.Selected.Render(line))
		} else if !n.Read {
			b.WriteString(m.theme.Unread.Render(line))
		} else {
			b.WriteString(m.theme.Value.Render(line))
		}
		b.WriteString("\n")
	}

	if m.notifCursor < len(notifs) {
		b.WriteString("\n" + m.theme.Value.Render(notifs[m.notifCursor].Message) + "\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch m.activeTab {
	case TabSchemes:
		return "c check eligibility · a apply · j/k move · r refresh · C-l log out · q quit"
	case TabNotifications:
		return "enter mark read · j/k move · r refresh · C-l log out · q quit"
	default:
		return "enter submit profile · 1/2/3 tabs · r refresh · C-l log out · q quit"
	}
}
