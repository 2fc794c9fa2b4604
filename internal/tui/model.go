// Package tui is the terminal front end. It renders the coordinator's
// snapshot and turns key presses into session and protocol calls; it holds no
// domain state of its own.
package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"janseva/internal/coordinator"
	"janseva/internal/portal/models"
	"janseva/internal/session"
	dErrors "janseva/pkg/domain-errors"
)

// Phase identifies which screen is active.
type Phase int

const (
	// PhaseRestoring blocks input while the persisted session is checked.
	PhaseRestoring Phase = iota
	// PhaseLogin shows the credential form.
	PhaseLogin
	// PhaseRegister shows the account-creation form.
	PhaseRegister
	// PhaseFamilyForm shows the one-time household submission form.
	PhaseFamilyForm
	// PhaseMain shows the tabbed snapshot view.
	PhaseMain
)

// Tab identifies which data view is active in the main phase.
type Tab int

const (
	TabFamily Tab = iota
	TabSchemes
	TabNotifications
)

// Login form field indices.
const (
	loginUsername = iota
	loginPassword
)

// Register form field indices.
const (
	regFullName = iota
	regEmail
	regUsername
	regPassword
)

// Family form field indices.
const (
	famHeadName = iota
	famAge
	famGender
	famCaste
	famOccupation
	famIncome
	famEducation
	famDisability
)

// Model is the top-level bubbletea model.
type Model struct {
	session *session.Manager
	coord   *coordinator.Coordinator
	theme   Theme
	keys    KeyMap

	phase     Phase
	activeTab Tab
	width     int
	height    int

	spinner spinner.Model
	// working is true while an async session or protocol call is in
	// flight; action keys are ignored until the result message arrives.
	working bool

	loginForm    form
	registerForm form
	familyForm   form

	schemeCursor int
	notifCursor  int

	errText string
	notice  string
}

// New builds the TUI model in the restoring phase.
func New(sess *session.Manager, coord *coordinator.Coordinator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session: sess,
		coord:   coord,
		theme:   DefaultTheme(),
		keys:    DefaultKeyMap,
		phase:   PhaseRestoring,
		spinner: sp,
		loginForm: newForm(
			formField{label: "Username", placeholder: "username"},
			formField{label: "Password", placeholder: "password", secret: true},
		),
		registerForm: newForm(
			formField{label: "Full name", placeholder: "Rajesh Kumar Singh"},
			formField{label: "Email", placeholder: "you@example.com"},
			formField{label: "Username", placeholder: "username"},
			formField{label: "Password (min 8 chars)", placeholder: "password", secret: true},
		),
		familyForm: newForm(
			formField{label: "Head of family", placeholder: "full name"},
			formField{label: "Age", placeholder: "42"},
			formField{label: "Gender", placeholder: "Male / Female / Other"},
			formField{label: "Caste category", placeholder: "General / OBC / SC / ST"},
			formField{label: "Occupation", placeholder: "Farmer"},
			formField{label: "Annual income (Rs.)", placeholder: "95000"},
			formField{label: "Education level", placeholder: "Secondary"},
			formField{label: "Disability in family (yes/no)", placeholder: "no"},
		),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.restoreCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case restoreDoneMsg:
		if m.session.Status() == session.StatusAuthenticated {
			return m.enterMain()
		}
		m.phase = PhaseLogin
		return m, nil

	case authResultMsg:
		m.working = false
		if msg.err != nil {
			m.errText = errorText(msg.err)
			return m, nil
		}
		return m.enterMain()

	case refreshDoneMsg:
		m.working = false
		if msg.err != nil {
			return m.handleProtocolError(msg.err)
		}
		m.clampCursors()
		return m, nil

	case protocolDoneMsg:
		m.working = false
		if msg.err != nil {
			return m.handleProtocolError(msg.err)
		}
		m.clampCursors()
		if m.phase == PhaseFamilyForm {
			m.phase = PhaseMain
			m.activeTab = TabFamily
		}
		m.errText = ""
		m.notice = msg.label + " complete"
		return m, noticeFadeCmd()

	case markReadDoneMsg:
		m.working = false
		if msg.err != nil {
			return m.handleProtocolError(msg.err)
		}
		m.clampCursors()
		return m, nil

	case noticeFadeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleProtocolError surfaces a failure in the status bar. If the failure
// forced a logout (rejected token), the view drops back to the login screen.
func (m Model) handleProtocolError(err error) (tea.Model, tea.Cmd) {
	if m.session.Status() != session.StatusAuthenticated {
		m.coord.Reset()
		m.phase = PhaseLogin
		m.loginForm.reset()
		m.errText = "session expired, sign in again"
		return m, nil
	}
	m.errText = errorText(err)
	return m, nil
}

// errorText flattens an error for the status bar, appending per-field
// validation messages when the error carries them.
func errorText(err error) string {
	text := err.Error()
	fields := dErrors.FieldsOf(err)
	if len(fields) == 0 {
		return text
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		text += " · " + fields[name]
	}
	return text
}

// enterMain switches to the main phase and starts the initial snapshot load.
func (m Model) enterMain() (tea.Model, tea.Cmd) {
	m.phase = PhaseMain
	m.activeTab = TabFamily
	m.errText = ""
	m.working = true
	return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.phase != PhaseLogin && m.phase != PhaseRegister && m.phase != PhaseFamilyForm {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseRestoring:
		return m, nil
	case PhaseLogin:
		return m.handleLoginKey(msg)
	case PhaseRegister:
		return m.handleRegisterKey(msg)
	case PhaseFamilyForm:
		return m.handleFamilyKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.working {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		m.loginForm.cycle(msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp)
		return m, nil
	case tea.KeyEnter:
		username := m.loginForm.value(loginUsername)
		password := m.loginForm.inputs[loginPassword].Value()
		if username == "" || password == "" {
			m.errText = "enter a username and password"
			return m, nil
		}
		m.working = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(username, password))
	}
	if msg.String() == "ctrl+r" {
		m.phase = PhaseRegister
		m.errText = ""
		m.registerForm.reset()
		return m, nil
	}
	return m, m.loginForm.update(msg)
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.working {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.phase = PhaseLogin
		m.errText = ""
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		m.registerForm.cycle(msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp)
		return m, nil
	case tea.KeyEnter:
		req := models.RegisterRequest{
			FullName: m.registerForm.value(regFullName),
			Email:    m.registerForm.value(regEmail),
			Username: m.registerForm.value(regUsername),
			Password: m.registerForm.inputs[regPassword].Value(),
		}
		req.Normalize()
		if err := req.Validate(); err != nil {
			m.errText = errorText(err)
			return m, nil
		}
		m.working = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.registerCmd(req))
	}
	return m, m.registerForm.update(msg)
}

func (m Model) handleFamilyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.working {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.phase = PhaseMain
		m.errText = ""
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		m.familyForm.cycle(msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp)
		return m, nil
	case tea.KeyEnter:
		req, err := m.buildFamilyRequest()
		if err != nil {
			m.errText = errorText(err)
			return m, nil
		}
		m.working = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.submitFamilyCmd(req))
	}
	return m, m.familyForm.update(msg)
}

// buildFamilyRequest parses the form into a submission. Numeric fields are
// parsed here; everything else is validated by the request itself.
func (m Model) buildFamilyRequest() (models.FamilyProfileRequest, error) {
	age, err := strconv.Atoi(m.familyForm.value(famAge))
	if err != nil {
		age = 0 // Validate reports the field message.
	}
	income, err := strconv.ParseFloat(m.familyForm.value(famIncome), 64)
	if err != nil {
		income = -1
	}
	disability := strings.EqualFold(m.familyForm.value(famDisability), "yes") ||
		strings.EqualFold(m.familyForm.value(famDisability), "y")

	req := models.FamilyProfileRequest{
		FamilyHeadName: m.familyForm.value(famHeadName),
		Age:            age,
		Gender:         m.familyForm.value(famGender),
		CasteCategory:  m.familyForm.value(famCaste),
		Occupation:     m.familyForm.value(famOccupation),
		AnnualIncome:   income,
		EducationLevel: m.familyForm.value(famEducation),
		HasDisability:  disability,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.FamilyProfileRequest{}, err
	}
	return req, nil
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TabFamily):
		m.activeTab = TabFamily
	case key.Matches(msg, m.keys.TabSchemes):
		m.activeTab = TabSchemes
	case key.Matches(msg, m.keys.TabNotifications):
		m.activeTab = TabNotifications
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % 3
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Logout):
		m.session.Logout()
		m.coord.Reset()
		m.phase = PhaseLogin
		m.loginForm.reset()
		m.errText = ""
		m.notice = ""
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.working {
			return m, nil
		}
		m.working = true
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
	case key.Matches(msg, m.keys.CheckEligibility):
		if m.working {
			return m, nil
		}
		if !m.coord.HasProfile() {
			m.phase = PhaseFamilyForm
			m.errText = ""
			return m, nil
		}
		m.working = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.checkEligibilityCmd())
	case key.Matches(msg, m.keys.Apply):
		if m.working || m.activeTab != TabSchemes {
			return m, nil
		}
		schemes := m.coord.Schemes()
		if m.schemeCursor >= len(schemes) {
			return m, nil
		}
		selected := schemes[m.schemeCursor]
		if selected.Status != models.StatusEligible {
			m.errText = selected.SchemeName + " is not open for application"
			return m, nil
		}
		m.working = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.applyCmd(selected.SchemeName))
	case key.Matches(msg, m.keys.MarkRead):
		if m.working {
			return m, nil
		}
		switch m.activeTab {
		case TabNotifications:
			notifs := m.coord.Notifications()
			if m.notifCursor >= len(notifs) || notifs[m.notifCursor].Read {
				return m, nil
			}
			m.working = true
			return m, tea.Batch(m.spinner.Tick, m.markReadCmd(notifs[m.notifCursor].ID))
		case TabFamily:
			if !m.coord.HasProfile() {
				m.phase = PhaseFamilyForm
				m.errText = ""
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.activeTab {
	case TabSchemes:
		m.schemeCursor = clamp(m.schemeCursor+delta, len(m.coord.Schemes()))
	case TabNotifications:
		m.notifCursor = clamp(m.notifCursor+delta, len(m.coord.Notifications()))
	}
}

// clampCursors keeps the cursors valid after the snapshot changes size.
func (m *Model) clampCursors() {
	m.schemeCursor = clamp(m.schemeCursor, len(m.coord.Schemes()))
	m.notifCursor = clamp(m.notifCursor, len(m.coord.Notifications()))
}

func clamp(v, length int) int {
	if length == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= length {
		return length - 1
	}
	return v
}
