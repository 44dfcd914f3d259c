package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nconklindev/gradecalc/internal/grader"
	"github.com/nconklindev/gradecalc/internal/runner"
	"github.com/nconklindev/gradecalc/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateFilePicker state = iota
	stateResults
	stateError
)

const maxBarWidth = 40

type Model struct {
	state        state
	src          runner.StudentSource
	filepicker   filepicker.Model
	selectedFile string
	results      []types.Result
	summary      grader.Summary
	err          error
	width        int
	height       int
	bar          progress.Model
}

type studentsLoadedMsg struct {
	students []types.Student
	err      error
}

func InitialModel(src runner.StudentSource) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(highlight)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(highlight)
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(muted)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(muted)

	bar := progress.New(progress.WithSolidFill(string(accent)), progress.WithoutPercentage())
	bar.Width = maxBarWidth

	return Model{
		state:      stateFilePicker,
		src:        src,
		filepicker: fp,
		bar:        bar,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		m.bar.Width = msg.Width - 24
		if m.bar.Width > maxBarWidth {
			m.bar.Width = maxBarWidth
		}
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateResults:
			switch msg.String() {
			case "ctrl+c", "q", "enter":
				return m, tea.Quit
			case "esc":
				m.state = stateFilePicker
				m.results = nil
				return m, m.filepicker.Init()
			}
			return m, nil

		case stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}

	case studentsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}

		m.results = make([]types.Result, 0, len(msg.students))
		for _, s := range msg.students {
			m.results = append(m.results, grader.Evaluate(s))
		}
		m.summary = grader.Tally(m.results)
		m.state = stateResults
		return m, nil
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			return m, m.loadFile(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) loadFile(path string) tea.Cmd {
	src := m.src
	return func() tea.Msg {
		students, err := src.LoadStudents(path)
		return studentsLoadedMsg{students: students, err: err}
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateResults:
		return m.viewResults()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Student Grade Calculator"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select an Excel (.xlsx) file of student scores"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewResults() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Grades"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("File: %s", filepath.Base(m.selectedFile))))
	s.WriteString("\n\n")

	if len(m.results) == 0 {
		s.WriteString(ErrorStyle.Render("No students found."))
		s.WriteString("\n")
	}

	for _, res := range m.results {
		line := runner.FormatResult(res)
		if res.Valid {
			s.WriteString(LetterStyle(res.Letter).Render(line))
		} else {
			s.WriteString(ErrorStyle.Render(line))
		}
		s.WriteString("\n")
	}

	if m.summary.Total > 0 {
		s.WriteString("\n")
		for _, letter := range grader.Letters {
			n := m.summary.Counts[letter]
			frac := float64(n) / float64(m.summary.Total)
			s.WriteString(fmt.Sprintf("%s %s %d\n", LetterStyle(letter).Render(letter), m.bar.ViewAs(frac), n))
		}
		if m.summary.Invalid > 0 {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Invalid: %d", m.summary.Invalid)))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("esc: choose another file • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press enter or q to exit"))

	return BoxStyle.Render(s.String())
}
