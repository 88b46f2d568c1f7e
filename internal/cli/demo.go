package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densflow/flow"
	"github.com/katalvlaran/densflow/generator"
)

type demoOptions struct {
	vertices int
	density  float64
	seed     int64
}

func defaultDemoOptions() demoOptions {
	return demoOptions{vertices: 6, density: 0.4}
}

func (c *CLI) demoCommand() *cobra.Command {
	opts := defaultDemoOptions()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve one small random network",
		Long:  `Generate a small random network, print its capacity matrix, and compute the maximum flow from vertex 0 to the last vertex.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return c.runDemo(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.vertices, "vertices", opts.vertices, "number of vertices")
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "edge probability in [0,1]")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: time based)")

	return cmd
}

func (c *CLI) runDemo(ctx context.Context, w io.Writer, opts demoOptions) error {
	capacity, err := generator.Generate(opts.vertices, opts.density, generator.WithSeed(opts.seed))
	if err != nil {
		return err
	}
	c.Logger.Debug("generated network", "vertices", opts.vertices, "density", opts.density, "seed", opts.seed)

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Network (%d vertices, seed %d)", opts.vertices, opts.seed)))
	printMatrix(w, capacity)

	res, err := flow.MaxFlow(capacity, 0, opts.vertices-1,
		flow.WithContext(ctx),
		flow.WithLogger(c.Logger),
	)
	if err != nil {
		return err
	}
	printResult(w, res)
	return nil
}
