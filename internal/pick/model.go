package pick

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
	"github.com/dtnitsch/diary-logs/pkg/presenter"
)

// diaryLogsMsg carries the one fetchDiaryLogs reply into the update loop.
type diaryLogsMsg messaging.Reply

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Copy:   key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true).TabWidth(lipgloss.NoTabConversion)
	totalStyle    = lipgloss.NewStyle().Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the interactive checklist. It asks for diary logs once on
// start and stays in the loading state until the reply arrives.
type Model struct {
	ctx    context.Context
	client *messaging.Client
	copyFn func(string) error

	view      *presenter.View
	rendering presenter.Rendering
	loading   bool
	cursor    int
	status    string
	err       error
	quitting  bool
}

// NewModel creates a checklist backed by client. copyFn receives the
// export text when the user copies.
func NewModel(ctx context.Context, client *messaging.Client, copyFn func(string) error) *Model {
	return &Model{
		ctx:     ctx,
		client:  client,
		copyFn:  copyFn,
		view:    presenter.NewView(),
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		return diaryLogsMsg(<-client.FetchDiaryLogs(ctx))
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case diaryLogsMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Loaded {
			m.view.SetData(msg.Records)
		} else {
			m.view.SetData(nil)
		}
		m.rendering = m.view.Render()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rendering.Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Toggle):
		if m.cursor < len(m.rendering.Rows) {
			m.view.Toggle(m.cursor)
			m.rendering = m.view.Render()
			m.status = ""
		}

	case key.Matches(msg, keys.Copy):
		if !m.view.Loaded() {
			return m, nil
		}
		if err := m.copyFn(m.view.ExportText()); err != nil {
			m.status = ""
			m.err = fmt.Errorf("copy failed: %w", err)
			return m, nil
		}
		m.err = nil
		m.status = "Copied to clipboard"
	}
	return m, nil
}

// View renders the checklist.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return "Loading...\n"
	}

	var b strings.Builder
	if m.rendering.Empty {
		b.WriteString(titleStyle.Render(m.rendering.Message))
		b.WriteString("\n")
	} else {
		for i, row := range m.rendering.Rows {
			pointer := "  "
			if i == m.cursor {
				pointer = cursorStyle.Render("> ")
			}
			box := "[x] "
			line := row.Line
			if row.Excluded {
				box = "[ ] "
				line = excludedStyle.Render(line)
			}
			b.WriteString(pointer + box + line + "\n")
		}
		b.WriteString(totalStyle.Render(m.rendering.TotalLine()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

// helpLine lists the bindings; copy is only offered when there is data.
func (m *Model) helpLine() string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Toggle}
	if m.view.Loaded() {
		bindings = append(bindings, keys.Copy)
	}
	bindings = append(bindings, keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// ExportText returns the current export text.
func (m *Model) ExportText() string {
	return m.view.ExportText()
}
