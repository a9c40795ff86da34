package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corpusbot/cli/internal/documents"
)

// Service is the TUI-facing subset of the chat bot.
type Service interface {
	Ingest(ctx context.Context, text string) error
	Chat(ctx context.Context, message string) (string, error)
	ClearAll(ctx context.Context) error
}

const remoteCallTimeout = 5 * time.Minute

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	bot        Service
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	busy       bool
	ready      bool
}

// New creates the chat TUI over the given bot.
func New(bot Service) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question, or /ingest <file>, /clear, /quit"
	ti.Focus()
	ti.CharLimit = 0
	return Model{
		bot:      bot,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready.",
	}
}

type chatDoneMsg struct {
	answer string
	err    error
}

type ingestDoneMsg struct {
	path string
	err  error
}

type clearDoneMsg struct {
	err error
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and drives the async bot calls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, frameH := transcriptStyle.GetFrameSize()
		_, inputH := inputStyle.GetFrameSize()
		reserved := 2 + inputH + 1 // header, input box, status line
		vh := msg.Height - reserved - frameH
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.busy {
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			m.input.Reset()
			return m.dispatch(line)
		}

	case chatDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.appendLine(botStyle.Render("BOT: ") + msg.answer)
		m.status = "Ready."
		return m, nil

	case ingestDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Ingest failed: " + msg.err.Error()
			return m, nil
		}
		m.appendLine(systemStyle.Render(fmt.Sprintf("Ingested %s.", msg.path)))
		m.status = "Ready."
		return m, nil

	case clearDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Clear failed: " + msg.err.Error()
			return m, nil
		}
		m.appendLine(systemStyle.Render("All embeddings removed."))
		m.status = "Ready."
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch routes an input line to the matching bot operation.
func (m Model) dispatch(line string) (tea.Model, tea.Cmd) {
	switch {
	case line == "/quit":
		return m, tea.Quit

	case line == "/clear":
		m.busy = true
		m.status = "Clearing embeddings..."
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
			defer cancel()
			return clearDoneMsg{err: m.bot.ClearAll(ctx)}
		}

	case strings.HasPrefix(line, "/ingest "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/ingest "))
		m.busy = true
		m.status = "Ingesting " + path + "..."
		return m, func() tea.Msg {
			text, err := documents.Load(path)
			if err != nil {
				return ingestDoneMsg{path: path, err: err}
			}
			ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
			defer cancel()
			return ingestDoneMsg{path: path, err: m.bot.Ingest(ctx, text)}
		}

	default:
		m.appendLine(userStyle.Render("YOU: ") + line)
		m.busy = true
		m.status = "Thinking..."
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
			defer cancel()
			answer, err := m.bot.Chat(ctx, line)
			return chatDoneMsg{answer: answer, err: err}
		}
	}
}

func (m *Model) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("corpusbot")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	systemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
