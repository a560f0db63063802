// Package repl implements the interactive value interpreter.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/val"
	"github.com/ardnew/wtmpl/wikitext"
)

const prompt = "➜ "

func helpMessage() string {
	return `
Commands:

  :help    Print this help
  :rules   List value rules in priority order
  :clear   Clear screen
  :quit    Exit REPL

Usage:
  Enter a value invocation such as {{val|3.7|e=10}} to render it
  Any other invocation is parsed and printed in canonical form
  Press Tab / Shift-Tab to cycle through matching rule shapes
  Use Up/Down arrows for history navigation
  Press Esc or Ctrl+C on an empty line, or Ctrl+D, to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	interp     *val.Interpreter
	logger     log.Logger
	history    *History
	historyIdx int
	matches    fuzzy.Matches // current fuzzy match results
	suggIdx    int           // selected candidate index
	tabActive  bool          // whether user is tab-cycling
	preTabText string        // input text before tab-cycling began
	width      int           // terminal width for truncation
	quitting   bool
}

// Run starts the REPL. History is persisted in cacheDir when it is not
// empty.
func Run(ctx context.Context, cacheDir string, logger log.Logger) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := ""
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o700); err != nil {
			logger.WarnContext(ctx, "could not create cache directory",
				slog.String("path", cacheDir), slog.Any("error", err))
		}

		path = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("history", path),
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, val.New(val.WithLogger(logger)), history, logger)

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	interp *val.Interpreter,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		interp:     interp,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		b.WriteString(hintStyle.Render(fmt.Sprintf("%d/%d", m.historyIdx+1, m.history.Len())))

	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render("Type an invocation, or :help"))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.CursorEnd()
			m.refreshMatches()

			return m, nil
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		m.tabActive = false

		return m.executeInput()

	case tea.KeyTab:
		return m.cycle(+1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyMove(-1), nil

	case tea.KeyDown:
		return m.historyMove(+1), nil
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

// cycle moves the selected completion by step and writes it into the input.
func (m model) cycle(step int) model {
	if len(m.matches) == 0 {
		return m
	}

	if len(m.matches) == 1 {
		m.input.SetValue(m.matches[0].Str)
		m.input.CursorEnd()
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.suggIdx = -1

		if step < 0 {
			m.suggIdx = 0
		}
	}

	m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	m.input.SetValue(m.matches[m.suggIdx].Str)
	m.input.CursorEnd()

	return m
}

// historyMove steps through history; moving past the newest entry clears
// the input.
func (m model) historyMove(step int) model {
	idx := m.historyIdx + step
	if idx < 0 || idx > m.history.Len() {
		return m
	}

	m.historyIdx = idx
	m.tabActive = false
	m.matches = nil

	line, err := m.history.Line(idx)
	if err != nil {
		line = ""
	}

	m.input.SetValue(line)
	m.input.CursorEnd()

	return m
}

// refreshMatches recomputes completions for the current input.
func (m *model) refreshMatches() {
	input := m.input.Value()
	m.matches = complete(input, candidates(input, m.interp.Rules()))

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.matches = nil
	m.suggIdx = -1

	if err := m.history.Write(input); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not save history", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if strings.HasPrefix(input, commandPrefix) {
		return m.executeCommand(input)
	}

	cmds := []tea.Cmd{tea.Println(formatCommand(input))}
	for _, line := range m.respond(input) {
		cmds = append(cmds, tea.Println(line))
	}

	return m, tea.Sequence(cmds...)
}

// respond returns the styled lines printed for an evaluated input.
func (m model) respond(input string) []string {
	ctx := m.ctxFunc()
	res := m.interp.Evaluate(ctx, input)

	m.logger.TraceContext(ctx, "repl eval", res.Attrs()...)

	var lines []string

	switch res.Outcome {
	case val.Matched:
		lines = append(lines,
			resultStyle.Render(res.Output),
			hintStyle.Render("rule "+res.Rule))

	case val.Malformed:
		lines = append(lines,
			errorStyle.Render("malformed: "+res.Err.Error()),
			hintStyle.Render("rule "+res.Rule))

	default:
		tmpl, err := wikitext.ParseString(ctx, input, wikitext.WithLogger(m.logger))
		if err != nil {
			return append(lines,
				resultStyle.Render(res.Output),
				errorStyle.Render("error: "+err.Error()))
		}

		lines = append(lines, resultStyle.Render(tmpl.Render()))
		for k, v := range tmpl.All() {
			lines = append(lines, hintStyle.Render(fmt.Sprintf("  %s = %s", k, v)))
		}

		lines = append(lines, hintStyle.Render("no rule matched"))
	}

	return lines
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	echoCmd := tea.Println(formatCommand(input))

	m.logger.TraceContext(m.ctxFunc(), "repl command", slog.String("command", input))

	switch strings.Fields(input)[0] {
	case ":q", ":quit", ":exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case ":h", ":help":
		return m, tea.Sequence(echoCmd, tea.Println(hintStyle.Render(helpMessage())))

	case ":r", ":rules":
		return m, tea.Sequence(echoCmd, tea.Println(m.rulesView()))

	case ":c", ":clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Sequence(echoCmd, tea.Println(
			errorStyle.Render("Unknown command: "+input+" (try :help)")))
	}
}

// rulesView lists the interpreter's rules with their sample output.
func (m model) rulesView() string {
	var b strings.Builder

	for i, r := range m.interp.Rules() {
		fmt.Fprintf(&b, "%d. %s  %s  %s\n",
			i+1,
			suggestionStyle.Render(r.Name),
			r.Shape,
			resultStyle.Render("→ "+m.interp.Interpret(m.ctxFunc(), r.Shape)))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
