// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan = lipgloss.Color("36")
	colorRed  = lipgloss.Color("167")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleNegative = styleCell.Foreground(colorRed)
	styleMuted    = styleCell.Foreground(colorDim)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(14)
)

// noPredecessor marks an untouched renewal cell in text output.
const noPredecessor = "·"

// =============================================================================
// Structured report
// =============================================================================

// report is the json/yaml shape of a Result. Sentinel distances are the
// strings "inf" and "-inf"; every other cell is an integer.
type report struct {
	Algorithm        string    `json:"algorithm" yaml:"algorithm"`
	NegativeCheck    bool      `json:"negative_check" yaml:"negative_check"`
	Relaxations      int       `json:"relaxations" yaml:"relaxations"`
	NegativeVertices []int     `json:"negative_vertices" yaml:"negative_vertices"`
	Distances        [][]any   `json:"distances" yaml:"distances"`
	Predecessors     [][]int64 `json:"predecessors" yaml:"predecessors"`
}

func newReport(res *apsp.Result) report {
	dist := res.Dist.ToRows()
	cells := make([][]any, len(dist))
	for i, row := range dist {
		cells[i] = make([]any, len(row))
		for j, w := range row {
			cells[i][j] = weightValue(w)
		}
	}

	return report{
		Algorithm:        res.Algorithm.String(),
		NegativeCheck:    res.Checked,
		Relaxations:      res.Relaxations,
		NegativeVertices: res.NegativeVertices,
		Distances:        cells,
		Predecessors:     res.Pred.ToRows(),
	}
}

func weightValue(w int64) any {
	if matrix.IsFinite(w) {
		return w
	}
	return matrix.FormatWeight(w)
}

// =============================================================================
// Rendering
// =============================================================================

// renderResult writes res to w in the given format.
func renderResult(w io.Writer, res *apsp.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(res))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res)); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return renderText(w, res)
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

func renderText(w io.Writer, res *apsp.Result) error {
	dist := res.Dist.ToRows()
	pred := res.Pred.ToRows()

	fmt.Fprintln(w, styleTitle.Render("Distances"))
	fmt.Fprintln(w, gridTable(dist, matrix.FormatWeight))
	fmt.Fprintln(w, styleTitle.Render("Predecessors"))
	fmt.Fprintln(w, gridTable(pred, formatPredecessor))

	printKeyValue(w, "algorithm", res.Algorithm.String())
	printKeyValue(w, "relaxations", strconv.Itoa(res.Relaxations))
	printKeyValue(w, "negative", negativeSummary(res))

	return nil
}

// gridTable renders a square int64 grid with vertex indices on both axes.
func gridTable(rows [][]int64, cell func(int64) string) string {
	headers := make([]string, len(rows)+1)
	for j := range rows {
		headers[j+1] = strconv.Itoa(j)
	}
	body := make([][]string, len(rows))
	for i, row := range rows {
		body[i] = make([]string, len(row)+1)
		body[i][0] = strconv.Itoa(i)
		for j, v := range row {
			body[i][j+1] = cell(v)
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styleHeader
			}
			switch body[row][col] {
			case matrix.TokenNegInf:
				return styleNegative
			case matrix.TokenNoEdge, noPredecessor:
				return styleMuted
			}
			return styleCell
		}).
		String()
}

func formatPredecessor(v int64) string {
	if v == matrix.NoPredecessor {
		return noPredecessor
	}
	return strconv.FormatInt(v, 10)
}

func negativeSummary(res *apsp.Result) string {
	if !res.Checked {
		return "unchecked"
	}
	if !res.HasNegativeCycle() {
		return "none"
	}
	return "cycles through " + joinInts(res.NegativeVertices, ", ")
}

// formatRoute renders a route as "0 → 1 → 2".
func formatRoute(route []int) string {
	return joinInts(route, " → ")
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+value)
}
