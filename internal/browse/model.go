package browse

import (
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 6

// Model is the bubbletea Model for the project browser.
type Model struct {
	table    table.Model
	targets  []project.Target
	width    int
	height   int
	selected string
	quitting bool
}

// NewModel builds a browser over targets.
func NewModel(targets []project.Target) Model {
	rows := make([]table.Row, 0, len(targets))
	for _, e := range Entries(targets) {
		rows = append(rows, table.Row{e.DisplayName, e.Command, e.Path})
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(18),
	)
	t.SetStyles(tableStyles())

	return Model{
		table:   t,
		targets: targets,
		width:   80,
		height:  24,
	}
}

func columns(width int) []table.Column {
	pathWidth := width - 10 - 14 - 8
	if pathWidth < 20 {
		pathWidth = 20
	}
	return []table.Column{
		{Title: "Type", Width: 10},
		{Title: "Command", Width: 14},
		{Title: "Path", Width: pathWidth},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		h := msg.Height - chromeHeight
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[2]
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.renderView()
}

// Selected returns the path chosen with enter, or "" when the browser was
// closed without a choice.
func (m Model) Selected() string {
	return m.selected
}

// Run shows the browser on out until the user quits and returns the
// selected path, if any.
func Run(targets []project.Target, in io.Reader, out io.Writer) (string, error) {
	prog := tea.NewProgram(NewModel(targets),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.Selected(), nil
	}
	return "", nil
}
