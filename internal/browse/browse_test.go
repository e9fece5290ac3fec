package browse

import (
	"bytes"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

var sample = []project.Target{
	{Path: "/src/app", Type: project.Rust},
	{Path: "/src/app/web", Type: project.Dioxus},
}

func TestPrintStatic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintStatic(&buf, sample))
	assert.Equal(t, "rust\tcargo clean\t/src/app\ndioxus\tdx clean\t/src/app/web\n", buf.String())
}

func TestPrintStatic_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintStatic(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, sample))

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []Entry{
		{Path: "/src/app", Type: "rust", DisplayName: "Rust", Command: "cargo clean"},
		{Path: "/src/app/web", Type: "dioxus", DisplayName: "Dioxus", Command: "dx clean"},
	}, got)
	assert.Contains(t, buf.String(), `"display_name": "Rust"`)
}

func TestPrintJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestModel_EnterSelectsCurrentRow(t *testing.T) {
	m := NewModel(sample)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	final := next.(Model)
	assert.Equal(t, "/src/app/web", final.Selected())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, final.View())
}

func TestModel_QuitWithoutSelection(t *testing.T) {
	m := NewModel(sample)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.Empty(t, next.(Model).Selected())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewListsProjects(t *testing.T) {
	m := NewModel(sample)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	view := next.View()
	assert.Contains(t, view, "Detected projects")
	assert.Contains(t, view, "1 Rust")
	assert.Contains(t, view, "1 Dioxus")
	assert.Contains(t, view, "/src/app/web")
	assert.Contains(t, view, "q quit")
}

func TestModel_ViewEmpty(t *testing.T) {
	view := NewModel(nil).View()
	assert.Contains(t, view, "No Rust or Dioxus projects found.")
}

func TestModel_EnterOnEmptyTable(t *testing.T) {
	next, _ := NewModel(nil).Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, next.(Model).Selected())
}
