package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/annealtsp/dataset"
)

type generateFlags struct {
	n        int
	shape    string
	clusters int
	seed     int64
	width    float64
	height   float64
	out      string
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}
	c := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance in the dataset format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.OutOrStdout(), f)
		},
	}
	c.Flags().IntVarP(&f.n, "cities", "n", 50, "Number of cities")
	c.Flags().StringVar(&f.shape, "shape", dataset.ShapeUniform, "Layout: uniform, circle, grid or clustered")
	c.Flags().IntVar(&f.clusters, "clusters", 5, "Number of clusters for --shape clustered")
	c.Flags().Int64Var(&f.seed, "seed", 1, "Seed of the coordinate generator")
	c.Flags().Float64Var(&f.width, "width", 100, "Width of the sampling rectangle")
	c.Flags().Float64Var(&f.height, "height", 100, "Height of the sampling rectangle")
	c.Flags().StringVarP(&f.out, "out", "o", "", "Output file (default stdout)")

	return c
}

func runGenerate(stdout io.Writer, f *generateFlags) error {
	gen, err := dataset.NewGenerator(f.shape, f.n, f.width, f.height, f.clusters)
	if err != nil {
		return err
	}
	pts, err := dataset.Build(gen, dataset.WithSeed(f.seed))
	if err != nil {
		return err
	}

	if f.out == "" {
		return dataset.Write(stdout, pts)
	}
	file, err := os.Create(f.out)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err = dataset.Write(file, pts); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
