package cli

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tougshire/orgchart/pkg/pipeline"
)

// Prompt styles
var (
	promptLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	promptInputStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	promptCursorStyle = lipgloss.NewStyle().Foreground(colorCyan)
	promptDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PathPromptModel - Interactive save path entry
// =============================================================================

// PathPromptModel is the bubbletea model asking where to save the chart.
// It starts with the suggested name filled in.
type PathPromptModel struct {
	Value     []rune
	Done      bool
	Cancelled bool
}

// NewPathPromptModel creates a prompt pre-filled with suggested.
func NewPathPromptModel(suggested string) PathPromptModel {
	return PathPromptModel{Value: []rune(suggested)}
}

// Path returns the entered path with surrounding whitespace removed.
func (m PathPromptModel) Path() string {
	return strings.TrimSpace(string(m.Value))
}

func (m PathPromptModel) Init() tea.Cmd {
	return nil
}

func (m PathPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "enter":
		if m.Path() == "" {
			return m, nil
		}
		m.Done = true
		return m, tea.Quit
	case "backspace":
		if len(m.Value) > 0 {
			m.Value = m.Value[:len(m.Value)-1]
		}
	case "ctrl+u":
		m.Value = nil
	default:
		if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
			m.Value = append(m.Value, key.Runes...)
		}
	}
	return m, nil
}

func (m PathPromptModel) View() string {
	if m.Done || m.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptLabelStyle.Render("Save chart as"))
	b.WriteString("\n")
	b.WriteString(promptInputStyle.Render(string(m.Value)))
	b.WriteString(promptCursorStyle.Render("█"))
	b.WriteString("\n\n")
	b.WriteString(promptDimStyle.Render("⏎ save  ctrl+u clear  esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// promptResolver - DestinationResolver backed by PathPromptModel
// =============================================================================

// promptResolver asks the user for the save path on a terminal.
type promptResolver struct {
	in  io.Reader
	out io.Writer
}

// Resolve runs the prompt. Escape or Ctrl-C declines the save.
func (r *promptResolver) Resolve(ctx context.Context, suggested string) (string, error) {
	p := tea.NewProgram(NewPathPromptModel(suggested),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out))
	final, err := p.Run()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}

	m, ok := final.(PathPromptModel)
	if !ok || m.Cancelled || !m.Done {
		return "", pipeline.ErrCancelled
	}
	return m.Path(), nil
}
