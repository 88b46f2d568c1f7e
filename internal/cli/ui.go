package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/densflow/flow"
	"github.com/katalvlaran/densflow/sweep"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printMatrix writes the capacity matrix one row per line.
func printMatrix(w io.Writer, m [][]int64) {
	for _, row := range m {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.FormatInt(v, 10)
		}
		fmt.Fprintf(w, "[%s]\n", strings.Join(cells, ", "))
	}
}

// printResult writes the max flow and solver statistics.
func printResult(w io.Writer, res *flow.Result) {
	fmt.Fprintf(w, "%s %s %s\n",
		styleSuccess.Render(iconSuccess),
		"max flow:", styleNumber.Render(strconv.FormatInt(res.Value, 10)))
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  phases %d, augmenting paths %d, elapsed %s",
		res.Phases, res.Augmentations, res.Elapsed.Round(time.Microsecond))))
}

// printCut writes the min-cut edges.
func printCut(w io.Writer, cut flow.Cut) {
	fmt.Fprintf(w, "%s %s\n", "min cut:", styleNumber.Render(strconv.FormatInt(cut.Capacity, 10)))
	for _, e := range cut.Edges {
		fmt.Fprintf(w, "  %d → %d  %d\n", e.From, e.To, e.Capacity)
	}
}

// printReport renders a sweep report as a table.
func printReport(w io.Writer, rep *sweep.Report) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Sweep %s (density %g)", rep.Config.Name, rep.Config.Density)))

	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		if r.Err != nil {
			rows = append(rows, []string{strconv.Itoa(r.Vertices), strconv.Itoa(r.Edges), styleError.Render(iconError), "", r.Err.Error()})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			strconv.FormatInt(r.MaxFlow, 10),
			strconv.Itoa(r.Phases),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Vertices", "Edges", "Max flow", "Phases", "Elapsed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("run %s, total %s", rep.RunID, rep.Total.Round(time.Millisecond))))
}
