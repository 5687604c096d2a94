// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

// solveFlags are shared by solve and path.
type solveFlags struct {
	algorithm string
	raw       bool
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "engine: floyd or dantzig (default from config)")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "skip the negative-cycle correction")
}

// options resolves flags over the loaded config.
func (c *CLI) options(f solveFlags) ([]apsp.Option, error) {
	name := c.cfg.Algorithm
	if f.algorithm != "" {
		name = f.algorithm
	}
	algo, err := apsp.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	check := *c.cfg.NegativeCheck && !f.raw

	return []apsp.Option{apsp.WithAlgorithm(algo), apsp.WithNegativeLoopCheck(check)}, nil
}

// solveFile loads path and solves it with the resolved options.
func (c *CLI) solveFile(cmd *cobra.Command, path string, f solveFlags) (*apsp.Result, error) {
	opts, err := c.options(f)
	if err != nil {
		return nil, err
	}
	d0, err := loadMatrix(path, c.cfg.NoEdge)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded", "file", path, "n", d0.Rows())

	if err = cmd.Context().Err(); err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	res, err := apsp.Solve(d0, opts...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("%s n=%d", res.Algorithm, res.Order()), "relaxations", res.Relaxations)
	if res.HasNegativeCycle() {
		c.Logger.Warn("negative cycle", "vertices", res.NegativeVertices)
	}

	return res, nil
}

func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags  solveFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute all-pairs distances and predecessors",
		Long: `Compute all-pairs shortest path distances and the renewal (predecessor)
matrix for the weight matrix in FILE.

Missing edges are written as "inf". Pairs whose route can be made
arbitrarily cheap by a negative cycle are reported as -inf unless --raw
is given.`,
		Example: `  apsp solve graph.json
  apsp solve graph.yaml --algorithm dantzig --format json
  apsp solve graph.toml --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.cfg.Format
			}
			out, err := parseFormat(format)
			if err != nil {
				return err
			}
			res, err := c.solveFile(cmd, args[0], flags)
			if err != nil {
				return err
			}
			return renderResult(cmd.OutOrStdout(), res, out)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml (default from config)")

	return cmd
}

// pathCommand prints one reconstructed route.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		flags    solveFlags
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the shortest route between two vertices",
		Example: `  apsp path graph.json --from 0 --to 4
  apsp path graph.json --from 2 --to 1 --algorithm dantzig`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.solveFile(cmd, args[0], flags)
			if err != nil {
				return err
			}
			dist, err := res.Distance(from, to)
			if err != nil {
				return err
			}
			route, err := res.Path(from, to)
			if err != nil {
				return fmt.Errorf("%d → %d: %w", from, to, err)
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "route", formatRoute(route))
			printKeyValue(w, "cost", matrix.FormatWeight(dist))
			printKeyValue(w, "hops", fmt.Sprint(len(route)-1))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "source vertex")
	cmd.Flags().IntVar(&to, "to", 0, "target vertex")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
