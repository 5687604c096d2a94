// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/apsp"
)

// comparison holds both engines' results for one correction setting.
type comparison struct {
	label          string
	floyd, dantzig *apsp.Result
}

func (cmp comparison) agree() bool { return cmp.floyd.Dist.Equal(cmp.dantzig.Dist) }

func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE",
		Short: "Run Floyd and Dantzig side by side",
		Long: `Run both engines on FILE, with and without the negative-cycle
correction, and report whether their distance matrices agree.

Without negative cycles the engines always agree. With them, the raw
matrices may differ while the corrected ones match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d0, err := loadMatrix(args[0], c.cfg.NoEdge)
			if err != nil {
				return err
			}

			solve := func(algo apsp.Algorithm, check bool) (*apsp.Result, error) {
				if err := cmd.Context().Err(); err != nil {
					return nil, err
				}
				return apsp.Solve(d0, apsp.WithAlgorithm(algo), apsp.WithNegativeLoopCheck(check))
			}

			var rows []comparison
			for _, check := range []bool{false, true} {
				cmp := comparison{label: "raw"}
				if check {
					cmp.label = "corrected"
				}
				prog := newProgress(c.Logger)
				if cmp.floyd, err = solve(apsp.AlgorithmFloyd, check); err != nil {
					return err
				}
				if cmp.dantzig, err = solve(apsp.AlgorithmDantzig, check); err != nil {
					return err
				}
				prog.done(cmp.label, "agree", cmp.agree())
				rows = append(rows, cmp)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, compareTable(rows))
			last := rows[len(rows)-1]
			printKeyValue(w, "negative", negativeSummary(last.floyd))
			return nil
		},
	}
}

func compareTable(rows []comparison) string {
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		agree := "no"
		if r.agree() {
			agree = "yes"
		}
		body = append(body, []string{
			r.label,
			strconv.Itoa(r.floyd.Relaxations),
			strconv.Itoa(r.dantzig.Relaxations),
			agree,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("variant", "floyd relax", "dantzig relax", "agree").
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 3 && body[row][col] == "no" {
				return styleNegative
			}
			return styleCell
		}).
		String()
}
