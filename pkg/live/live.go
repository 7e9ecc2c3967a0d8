// Package live renders streaming parse progress on a TTY.
package live

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

// Summary reports what a live session consumed.
type Summary struct {
	Records  int
	Failures int
}

// Run drives the streaming parser over r and renders arriving records to w
// until end of input or until the user quits. Quitting simply stops
// consumption; the record in progress is discarded, which is safe because no
// finalization side effects depend on reaching end of input.
func Run(ctx context.Context, r io.Reader, w io.Writer, width, height int, opts gitlog.StreamOptions) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	units := make(chan gitlog.Unit, 64)
	go func() {
		defer close(units)
		// Errors end the stream; the model learns about it via channel close.
		_ = gitlog.Stream(ctx, r, opts, func(u gitlog.Unit) {
			select {
			case units <- u:
			case <-ctx.Done():
			}
		})
	}()

	program := tea.NewProgram(newModel(units, width, height),
		tea.WithContext(ctx), tea.WithOutput(w), tea.WithInput(nil))
	final, err := program.Run()
	if err != nil {
		return Summary{}, fmt.Errorf("live view: %w", err)
	}
	m := final.(model)
	return Summary{Records: m.records, Failures: m.failures}, nil
}

type unitMsg gitlog.Unit
type doneMsg struct{}

type model struct {
	units <-chan gitlog.Unit

	spin     spinner.Model
	viewport viewport.Model
	ready    bool
	done     bool

	records  int
	failures int
	lines    []string

	width  int
	height int

	headStyle lipgloss.Style
	hashStyle lipgloss.Style
	failStyle lipgloss.Style
}

func newModel(units <-chan gitlog.Unit, width, height int) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	vp := viewport.New(width, max(height-3, 1))
	return model{
		units:     units,
		spin:      sp,
		viewport:  vp,
		width:     width,
		height:    height,
		headStyle: lipgloss.NewStyle().Bold(true),
		hashStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		failStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.nextUnit())
}

func (m model) nextUnit() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.units
		if !ok {
			return doneMsg{}
		}
		return unitMsg(u)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.ready = true

	case unitMsg:
		u := gitlog.Unit(msg)
		if u.Failed() {
			m.failures++
			m.lines = append(m.lines,
				m.failStyle.Render("✗ "+u.Meta.ErrorMsg+": ")+u.Meta.Line)
		} else if u.Commit != nil {
			m.records++
			m.lines = append(m.lines, m.commitLine(*u.Commit))
		}
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.viewport.GotoBottom()
		return m, m.nextUnit()

	case doneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	if m.done {
		sb.WriteString(m.headStyle.Render("done"))
	} else {
		sb.WriteString(m.spin.View())
		sb.WriteString(m.headStyle.Render("parsing"))
	}
	sb.WriteString(fmt.Sprintf("  %d records", m.records))
	if m.failures > 0 {
		sb.WriteString(m.failStyle.Render(fmt.Sprintf("  %d failed lines", m.failures)))
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString("ctrl+c to quit")
	return sb.String()
}

func (m model) commitLine(c gitlog.Commit) string {
	hash := c.Commit
	if len(hash) > 8 {
		hash = hash[:8]
	}
	line := m.hashStyle.Render(hash)
	if c.Author != "" {
		line += " " + c.Author
	}
	if subject, _, ok := strings.Cut(c.Message, "\n"); ok {
		line += " " + subject
	} else if c.Message != "" {
		line += " " + c.Message
	}
	return line
}
