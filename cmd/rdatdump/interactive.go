package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gpulab/rdat/reflection"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	depStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0E68C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateListFuncs modelState = iota
	stateFuncDetail
)

type inspectorModel struct {
	err       error
	lib       *reflection.Library
	filename  string
	filter    textinput.Model
	filtering bool
	visible   []int
	selected  int
	state     modelState
}

func newInspectorModel(filename string) *inspectorModel {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Width = 40
	return &inspectorModel{
		filename: filename,
		filter:   ti,
		state:    stateListFuncs,
	}
}

type loadedMsg struct {
	err error
	lib *reflection.Library
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadBlob
}

func (m *inspectorModel) loadBlob() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	lib, err := reflection.Load(data)
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{lib: lib}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateListFuncs && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateListFuncs && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateListFuncs && len(m.visible) > 0 {
				m.state = stateFuncDetail
			}

		case "/":
			if m.state == stateListFuncs {
				m.filtering = true
				m.filter.Focus()
			}

		case "esc":
			switch m.state {
			case stateFuncDetail:
				m.state = stateListFuncs
			case stateListFuncs:
				if m.filter.Value() != "" {
					m.filter.SetValue("")
					m.applyFilter()
				}
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lib = msg.lib
		m.applyFilter()
	}

	return m, nil
}

// applyFilter recomputes the visible function indices from the filter
// text, keeping the selection in range.
func (m *inspectorModel) applyFilter() {
	if m.lib == nil {
		return
	}
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i := range m.lib.Functions {
		if needle == "" || strings.Contains(strings.ToLower(m.lib.Functions[i].UnmangledName), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.lib == nil {
		return "Loading blob..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("RDAT Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateListFuncs:
		if m.filtering || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}

		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no functions match"))
			b.WriteString("\n")
		}
		for i, idx := range m.visible {
			fn := &m.lib.Functions[idx]
			line := m.formatFunc(fn)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))

	case stateFuncDetail:
		fn := &m.lib.Functions[m.visible[m.selected]]
		b.WriteString(funcStyle.Render(fn.UnmangledName))
		b.WriteString(" (" + classStyle.Render(fn.ShaderKind.String()) + ")\n\n")

		if fn.Name != fn.UnmangledName {
			b.WriteString("mangled: " + fn.Name + "\n")
		}
		if fn.FeatureFlag != 0 {
			b.WriteString(fmt.Sprintf("feature flags: %#x\n", fn.FeatureFlag))
		}
		if fn.PayloadSizeInBytes != 0 {
			b.WriteString(fmt.Sprintf("payload size: %d bytes\n", fn.PayloadSizeInBytes))
		}
		if fn.AttributeSizeInBytes != 0 {
			b.WriteString(fmt.Sprintf("attribute size: %d bytes\n", fn.AttributeSizeInBytes))
		}

		b.WriteString("\nresources:\n")
		if len(fn.Resources) == 0 {
			b.WriteString(helpStyle.Render("  (none)"))
			b.WriteString("\n")
		}
		for _, r := range fn.Resources {
			b.WriteString(fmt.Sprintf("  %s %s id=%d space=%d regs=[%d, %d]\n",
				classStyle.Render(fmt.Sprintf("%-8s", r.Class)),
				r.Name, r.ID, r.Space, r.LowerBound, r.UpperBound))
		}

		b.WriteString("\ndependencies:\n")
		if len(fn.Dependencies) == 0 {
			b.WriteString(helpStyle.Render("  (none)"))
			b.WriteString("\n")
		}
		for _, dep := range fn.Dependencies {
			b.WriteString("  " + depStyle.Render(dep) + "\n")
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *inspectorModel) formatFunc(fn *reflection.Function) string {
	tag := classStyle.Render(fn.ShaderKind.String())
	extra := ""
	if n := len(fn.Resources); n > 0 {
		extra = fmt.Sprintf(" · %d res", n)
	}
	if n := len(fn.Dependencies); n > 0 {
		extra += fmt.Sprintf(" · %d deps", n)
	}
	return funcStyle.Render(fn.UnmangledName) + " [" + tag + "]" + helpStyle.Render(extra)
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectorModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
