package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ariel/pkg/demo"
)

var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// DemoListModel - Interactive demo selection
// =============================================================================

// DemoListModel is the bubbletea model for picking a demo.
type DemoListModel struct {
	Demos    []demo.Demo
	Cursor   int
	Selected *demo.Demo
}

// NewDemoListModel creates a picker over demos.
func NewDemoListModel(demos []demo.Demo) DemoListModel {
	return DemoListModel{Demos: demos}
}

func (m DemoListModel) Init() tea.Cmd {
	return nil
}

func (m DemoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Demos)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Demos) == 0 {
			return m, tea.Quit
		}
		d := m.Demos[m.Cursor]
		m.Selected = &d
		return m, tea.Quit
	}
	return m, nil
}

func (m DemoListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Demo"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Demos))
	for i, d := range m.Demos {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, d.Name, d.Title, d.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Title", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Demos))))

	return b.String()
}

// pickDemo runs the interactive picker. It returns nil when the user quits.
func pickDemo() (*demo.Demo, error) {
	final, err := tea.NewProgram(NewDemoListModel(demo.All())).Run()
	if err != nil {
		return nil, err
	}
	return final.(DemoListModel).Selected, nil
}
