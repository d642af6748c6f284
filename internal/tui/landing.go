package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

const (
	previewCount        = 3
	registeredNotice    = "Registration successful! Please login to continue."
	noUserMessage       = "No user registered. Please sign up first."
	badLoginMessage     = "Invalid email or password."
	landingTagline      = "Climate, energy and policy news, filtered for you."
	landingPreviewTitle = "Latest stories"
)

type landingView int

const (
	viewHome landingView = iota
	viewLogin
	viewSignup
)

var asciiLogo = []string{
	`░█▀▀░█▀▄░█▀▀░█▀▀░█▀█░█▀▀░▀█▀░█▀▄░█▀▀░█▀█░█▄█`,
	`░█░█░█▀▄░█▀▀░█▀▀░█░█░▀▀█░░█░░█▀▄░█▀▀░█▀█░█░█`,
	`░▀▀▀░▀░▀░▀▀▀░▀▀▀░▀░▀░▀▀▀░░▀░░▀░▀░▀▀▀░▀░▀░▀░▀`,
}

type field struct {
	label string
	input textinput.Model
}

// landingModel is the signed-out screen: a short article preview plus the
// login and signup forms.
type landingModel struct {
	auth    *auth.Service
	preview []news.Article

	view   landingView
	fields []field
	focus  int

	err    string
	notice string
}

func newLanding(svc *auth.Service, articles []news.Article) landingModel {
	return landingModel{
		auth:    svc,
		preview: news.Preview(articles, previewCount),
	}
}

func newField(label, placeholder string, secret bool) field {
	ti := newInput()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Prompt = ""
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return field{label: label, input: ti}
}

// open switches to a form view with empty fields. The notice survives so a
// fresh registration can be confirmed on the login form.
func (m *landingModel) open(v landingView) tea.Cmd {
	m.view = v
	m.err = ""
	m.focus = 0
	switch v {
	case viewLogin:
		m.fields = []field{
			newField("Email", "you@example.com", false),
			newField("Password", "", true),
		}
	case viewSignup:
		m.notice = ""
		m.fields = []field{
			newField("Name", "Full name", false),
			newField("Title", "e.g. Policy Analyst", false),
			newField("Email", "you@example.com", false),
			newField("Password", "", true),
		}
	default:
		m.fields = nil
		m.notice = ""
		return nil
	}
	m.fields[0].input.Focus()
	return textinput.Blink
}

func (m *landingModel) setFocus(i int) {
	m.fields[m.focus].input.Blur()
	m.focus = (i + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

// value is the raw text of field i. Credentials are compared exactly, so
// nothing is trimmed.
func (m *landingModel) value(i int) string {
	return m.fields[i].input.Value()
}

// loginMessage is the inline text shown for a failed login.
func loginMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoUser):
		return noUserMessage
	case errors.Is(err, auth.ErrInvalidCredentials):
		return badLoginMessage
	}
	return err.Error()
}

func (m landingModel) update(msg tea.Msg) (landingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		cmd := m.open(viewLogin)
		m.notice = registeredNotice
		return m, cmd

	case loginResultMsg:
		if msg.err != nil {
			m.err = loginMessage(msg.err)
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.view == viewHome {
			switch msg.String() {
			case "l", "enter":
				cmd := m.open(viewLogin)
				return m, cmd
			case "s":
				cmd := m.open(viewSignup)
				return m, cmd
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m landingModel) updateForm(msg tea.KeyMsg) (landingModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := m.open(viewHome)
		return m, cmd
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "ctrl+t":
		// Swap between the two forms like the modal's switch link.
		if m.view == viewLogin {
			cmd := m.open(viewSignup)
			return m, cmd
		}
		cmd := m.open(viewLogin)
		return m, cmd
	case "enter":
		if m.focus < len(m.fields)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *landingModel) submit() tea.Cmd {
	svc := m.auth
	switch m.view {
	case viewLogin:
		email, password := m.value(0), m.value(1)
		return func() tea.Msg {
			session, err := svc.Login(email, password)
			return loginResultMsg{session: session, err: err}
		}
	case viewSignup:
		u := auth.User{
			Name:     m.value(0),
			Title:    m.value(1),
			Email:    m.value(2),
			Password: m.value(3),
		}
		return func() tea.Msg {
			return registerResultMsg{err: svc.Register(u)}
		}
	}
	return nil
}

func (m landingModel) viewString(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary)

	var lines []string
	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "", helpDimStyle.Render(landingTagline), "")

	switch m.view {
	case viewHome:
		lines = append(lines, formLabelStyle.Render(landingPreviewTitle))
		for _, a := range m.preview {
			lines = append(lines, "  "+itemSourceStyle.Render(a.Source)+"  "+itemTitleStyle.Render(truncateStr(a.Title, 60)))
		}
		lines = append(lines, "",
			"  "+keyStyle.Render("[l]")+"  "+formLabelStyle.Render("Login"),
			"  "+keyStyle.Render("[s]")+"  "+formLabelStyle.Render("Sign up"),
			"  "+keyStyle.Render("[q]")+"  "+formLabelStyle.Render("Quit"),
		)
	default:
		lines = append(lines, m.formView())
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m landingModel) formView() string {
	title := "Login"
	switchHint := "ctrl+t sign up instead"
	if m.view == viewSignup {
		title = "Create an account"
		switchHint = "ctrl+t login instead"
	}

	var lines []string
	lines = append(lines, formFocusStyle.Render(title), "")
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice), "")
	}
	for i, f := range m.fields {
		label := formLabelStyle.Render(padRight(f.label, 9))
		if i == m.focus {
			label = formFocusStyle.Render(padRight(f.label, 9))
		}
		lines = append(lines, label+" "+f.input.View())
	}
	if m.err != "" {
		lines = append(lines, "", errorStyle.Render(m.err))
	}
	lines = append(lines, "", helpDimStyle.Render("enter next/submit  tab move  "+switchHint+"  esc back"))
	return formCardStyle.Render(strings.Join(lines, "\n"))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
