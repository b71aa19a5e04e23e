package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daywork/internal/report"
)

// clockTickMsg is sent every second to re-evaluate against the live clock
type clockTickMsg struct{}

// DayModel is the interactive editor for today's work intervals.
type DayModel struct {
	width  int
	height int

	target textinput.Model
	rows   []rowInputs
	// focus walks the fields top to bottom: 0 is the target, then the
	// start and end inputs of each row.
	focus int

	now      time.Time
	result   report.Result
	progress progress.Model

	// flash is a transient confirmation (clipboard copy) shown in place
	// of the status line until the next clock tick.
	flash string
}

type rowInputs struct {
	start textinput.Model
	end   textinput.Model
}

func newTimeInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.Width = width
	in.CharLimit = 14

	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return in
}

func newRow() rowInputs {
	return rowInputs{
		start: newTimeInput("start", 14),
		end:   newTimeInput("end (blank = open)", 20),
	}
}

// NewDayModel creates the day editor with three empty rows and the given
// initial target text.
func NewDayModel(targetText string) DayModel {
	target := newTimeInput("H:MM:SS", 10)
	target.SetValue(targetText)
	target.Focus()

	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)
	bar.Width = 40

	m := DayModel{
		target:   target,
		rows:     []rowInputs{newRow(), newRow(), newRow()},
		progress: bar,
		now:      time.Now().Truncate(time.Second),
	}
	m.recompute()
	return m
}

// Init starts the cursor blink and the once-per-second clock.
func (m DayModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, clockTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// fieldCount is the number of focusable inputs.
func (m DayModel) fieldCount() int {
	return 1 + 2*len(m.rows)
}

// currentRow returns the index of the row owning the focused field, or -1
// when the target is focused.
func (m DayModel) currentRow() int {
	if m.focus == 0 {
		return -1
	}
	return (m.focus - 1) / 2
}

func (m *DayModel) setFocus(focus int) tea.Cmd {
	n := m.fieldCount()
	m.focus = ((focus % n) + n) % n

	m.target.Blur()
	for i := range m.rows {
		m.rows[i].start.Blur()
		m.rows[i].end.Blur()
	}
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
	return textinput.Blink
}

func (m *DayModel) focusedInput() *textinput.Model {
	if m.focus == 0 {
		return &m.target
	}
	row := &m.rows[m.currentRow()]
	if (m.focus-1)%2 == 0 {
		return &row.start
	}
	return &row.end
}

func (m DayModel) snapshotRows() []report.Row {
	rows := make([]report.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = report.Row{Start: r.start.Value(), End: r.end.Value()}
	}
	return rows
}

// recompute re-runs the whole pipeline over the current texts. It is cheap
// enough to call on every keystroke and every tick.
func (m *DayModel) recompute() {
	m.result = report.Evaluate(m.snapshotRows(), m.target.Value(), m.now)
}

// Update handles messages.
func (m DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.now = time.Now().Truncate(time.Second)
		m.flash = ""
		m.recompute()
		return m, clockTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(48, max(20, m.width-30))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			return m, m.setFocus(m.focus + 1)

		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)

		case "ctrl+n":
			m.rows = append(m.rows, newRow())
			cmd := m.setFocus(1 + 2*(len(m.rows)-1))
			m.recompute()
			return m, cmd

		case "ctrl+d":
			if row := m.currentRow(); row >= 0 {
				m.rows = append(m.rows[:row], m.rows[row+1:]...)
				cmd := m.setFocus(min(m.focus, m.fieldCount()-1))
				m.recompute()
				return m, cmd
			}
			return m, nil

		case "ctrl+e":
			// End = now for the focused row, if it is an open one.
			if row := m.currentRow(); row >= 0 {
				r := &m.rows[row]
				if strings.TrimSpace(r.start.Value()) != "" && strings.TrimSpace(r.end.Value()) == "" {
					r.end.SetValue(m.now.Format("15:04:05"))
					m.recompute()
				}
			}
			return m, nil

		case "ctrl+s":
			sorted := report.SortRows(m.snapshotRows())
			for i, r := range sorted {
				m.rows[i].start.SetValue(r.Start)
				m.rows[i].end.SetValue(r.End)
			}
			m.recompute()
			return m, nil

		case "ctrl+y":
			if err := clipboard.WriteAll(m.result.Export()); err != nil {
				m.flash = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.flash = "Summary copied to clipboard."
			}
			return m, nil
		}
	}

	// Everything else (typed characters, cursor blinks) goes to the
	// focused input.
	var cmd tea.Cmd
	if in := m.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// View renders the day editor.
func (m DayModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	b.WriteString(headerStyle.Render("CURRENT TIME"))
	b.WriteString("\n")
	b.WriteString(renderBigClock(m.now))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(labelStyle.Render("Date: " + m.now.Format("2006-01-02")))
	b.WriteString(labelStyle.Render("    Target: "))
	b.WriteString(m.target.View())
	if m.result.TargetNote != "" {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString("  " + warn.Render(m.result.TargetNote))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderRows())
	b.WriteString("\n")

	totalsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	b.WriteString(totalsStyle.Render(fmt.Sprintf(
		"Worked: %s    Remaining: %s    Overtime: %s",
		m.result.WorkedHMS(), m.result.RemainingHMS(), m.result.OvertimeHMS(),
	)))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.result.Ratio))
	b.WriteString(fmt.Sprintf(" %d%%", m.result.Percent()))
	b.WriteString("\n\n")

	b.WriteString(m.renderMilestone())
	b.WriteString("\n")

	statusLine := m.result.Status
	if m.flash != "" {
		statusLine = m.flash
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	if statusLine != "OK." {
		statusStyle = statusStyle.Foreground(lipgloss.Color(ColorWarning))
	}
	b.WriteString(statusStyle.Render(statusLine))
	b.WriteString("\n\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m DayModel) renderRows() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-16s %-22s %s",
		"Start (9:00 AM)", "End (blank = open)", "Validation / Notes",
	)))
	b.WriteString("\n")

	for i, row := range m.rows {
		b.WriteString(row.start.View())
		b.WriteString("  ")
		b.WriteString(row.end.View())
		b.WriteString("  ")

		note := ""
		if i < len(m.result.RowNotes) {
			note = m.result.RowNotes[i]
		}
		b.WriteString(rowNoteStyle(note).Render(note))
		b.WriteString("\n")
	}
	return b.String()
}

func rowNoteStyle(note string) lipgloss.Style {
	switch {
	case note == "OK":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	case strings.HasPrefix(note, "Open interval"):
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	case note == "":
		return lipgloss.NewStyle()
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	}
}

func (m DayModel) renderMilestone() string {
	lineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)

	content := lineStyle.Render(m.result.Milestone.Primary)
	if m.result.Milestone.Secondary != "" {
		content += "\n" + lineStyle.Render(m.result.Milestone.Secondary)
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render("Milestone")

	return title + "\n" + panelStyle.Render(content)
}

func (m DayModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	return helpStyle.Render(
		"tab/shift+tab move · ctrl+n add row · ctrl+d remove row · ctrl+e end = now · " +
			"ctrl+s sort by start · ctrl+y copy summary · esc quit")
}
