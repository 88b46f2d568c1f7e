package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densflow/sweep"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// mode is one entry of the interactive menu.
type mode struct {
	key   string
	title string
}

var modes = []mode{
	{"1", "Simple test on a small network"},
	{"2", "Sweep: low density, increasing vertex count"},
	{"3", "Sweep: medium density, increasing vertex count"},
	{"4", "Sweep: high density, increasing vertex count"},
}

// MenuModel is the bubbletea model for choosing a driver mode.
type MenuModel struct {
	Cursor   int
	Selected int // index into modes, -1 until chosen
}

// NewMenuModel returns a model with nothing selected.
func NewMenuModel() MenuModel {
	return MenuModel{Selected: -1}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(modes)-1 {
			m.Cursor++
		}
	case "enter":
		m.Selected = m.Cursor
		return m, tea.Quit
	default:
		for i, md := range modes {
			if md.key == s {
				m.Cursor, m.Selected = i, i
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Choose a test"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ or 1-4 select  q quit"))
	b.WriteString("\n\n")
	for i, md := range modes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s. %s", cursor, md.key, md.title)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick a demo or sweep interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd)
		},
	}
}

func (c *CLI) runMenu(cmd *cobra.Command) error {
	p := tea.NewProgram(NewMenuModel(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Selected < 0 {
		return nil
	}
	return c.runMode(cmd, m.Selected)
}

// runMode executes menu entry i.
func (c *CLI) runMode(cmd *cobra.Command, i int) error {
	ctx, w := cmd.Context(), cmd.OutOrStdout()
	var preset string
	switch i {
	case 0:
		opts := defaultDemoOptions()
		opts.seed = time.Now().UnixNano()
		return c.runDemo(ctx, w, opts)
	case 1:
		preset = "low"
	case 2:
		preset = "medium"
	case 3:
		preset = "high"
	default:
		return fmt.Errorf("unknown mode %d", i)
	}
	cfg, err := sweep.Preset(preset)
	if err != nil {
		return err
	}
	return c.runSweeps(ctx, w, []sweep.Config{cfg})
}
