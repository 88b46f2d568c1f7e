package cli_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densflow/internal/cli"
)

func press(m cli.MenuModel, msgs ...tea.KeyMsg) (cli.MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(cli.MenuModel)
	}
	return m, cmd
}

// TestMenuNavigation moves the cursor within bounds and selects with enter.
func TestMenuNavigation(t *testing.T) {
	m := cli.NewMenuModel()
	require.Equal(t, -1, m.Selected)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor)

	m, _ = press(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	require.Equal(t, 3, m.Cursor)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 3, m.Selected)
	require.NotNil(t, cmd)
}

// TestMenuDigitShortcut selects a mode by its number.
func TestMenuDigitShortcut(t *testing.T) {
	m, cmd := press(cli.NewMenuModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	require.Equal(t, 1, m.Selected)
	require.NotNil(t, cmd)
}

// TestMenuQuitWithoutSelection leaves Selected unset.
func TestMenuQuitWithoutSelection(t *testing.T) {
	m, cmd := press(cli.NewMenuModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.Equal(t, -1, m.Selected)
	require.NotNil(t, cmd)
}

// TestMenuView lists every mode and marks the cursor.
func TestMenuView(t *testing.T) {
	view := cli.NewMenuModel().View()
	require.Contains(t, view, "▸ 1. Simple test on a small network")
	require.Contains(t, view, "4. Sweep: high density")
}
