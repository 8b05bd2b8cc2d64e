// Package report renders the end-of-run summary printed after the terminal
// has been restored.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"waterbar/internal/anim"
	"waterbar/internal/loop"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = cellStyle.Align(lipgloss.Right)
)

// Summary returns a two-column table of the loop counters and the final
// bar state.
func Summary(stats loop.Stats, st anim.State) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("run", "value").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return cellStyle
			}
		})

	t.Row("frames", strconv.FormatUint(stats.Frames, 10))
	t.Row("skipped", strconv.FormatUint(stats.Skipped, 10))
	t.Row("failed", strconv.FormatUint(stats.Failed, 10))
	t.Row("overruns", strconv.FormatUint(stats.Overruns, 10))
	t.Row("phase", st.Phase.String())
	t.Row("progress", fmt.Sprintf("%d%%", st.Progress))

	return t.String()
}

// Print writes the summary to w followed by a newline.
func Print(w io.Writer, stats loop.Stats, st anim.State) error {
	_, err := fmt.Fprintln(w, Summary(stats, st))
	return err
}
