// Package main provides the loom command-line interface.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loom-ml/loom/internal/debug"
	"github.com/loom-ml/loom/tensor"
)

const version = "v0.1.0"

func main() {
	cfg, err := debug.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	logger := debug.NewLogger(os.Stderr, cfg)

	if err := NewCLI(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewCLI builds the root command.
func NewCLI(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "loom",
		Short:         "A minimal strided tensor engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loom %s\n", version)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through views, materialization, and broadcasting",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), logger)
		},
	}

	sumCmd := &cobra.Command{
		Use:   "sum",
		Short: "Fill a tensor with 1..n and reduce it over a dimension",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapeSpec, _ := cmd.Flags().GetString("shape")
			dim, _ := cmd.Flags().GetInt("dim")
			keepdim, _ := cmd.Flags().GetBool("keepdim")
			return runSum(cmd.OutOrStdout(), logger, shapeSpec, dim, keepdim)
		},
	}
	sumCmd.Flags().String("shape", "2,3,4", "comma-separated tensor shape")
	sumCmd.Flags().Int("dim", 0, "dimension to reduce (negative counts from the end)")
	sumCmd.Flags().Bool("keepdim", false, "keep the reduced dimension as size 1")

	rootCmd.AddCommand(versionCmd, demoCmd, sumCmd)
	return rootCmd
}

func runDemo(w io.Writer, logger *slog.Logger) error {
	t, err := tensor.Arange(1, 7, 1)
	if err != nil {
		return err
	}
	if _, err := t.Reshape(tensor.Shape{2, 3}); err != nil {
		return err
	}

	fmt.Fprintln(w, "t = arange(1, 7).reshape(2, 3):")
	if err := tensor.Fprint(w, t); err != nil {
		return err
	}

	if _, err := t.Transpose(0, 1); err != nil {
		return err
	}
	logger.Debug("transposed", "shape", t.Shape(), "stride", t.Stride(), "contiguous", t.IsContiguous())

	fmt.Fprintln(w, "\nt.transpose(0, 1): same buffer, swapped strides:")
	if err := tensor.Fprint(w, t); err != nil {
		return err
	}

	t.Contiguous()
	logger.Debug("materialized", "stride", t.Stride(), "data", t.Data())

	fmt.Fprintln(w, "\nt.contiguous(): packed in logical order:")
	if err := tensor.Fprint(w, t); err != nil {
		return err
	}

	col, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3, 1})
	if err != nil {
		return err
	}
	sum, err := tensor.Add(t, col)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nt + [[10] [20] [30]]: broadcast over columns:")
	return tensor.Fprint(w, sum)
}

func runSum(w io.Writer, logger *slog.Logger, shapeSpec string, dim int, keepdim bool) error {
	shape, err := parseShape(shapeSpec)
	if err != nil {
		return err
	}

	t, err := tensor.New(shape)
	if err != nil {
		return err
	}
	for i := range t.Data() {
		t.Data()[i] = float32(i + 1)
	}
	logger.Debug("allocated", "shape", t.Shape(), "numel", t.NumElements())

	out, err := t.Sum(dim, keepdim)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "sum over dim %d of shape %v -> %v:\n", dim, shape, out.Shape())
	return tensor.Fprint(w, out)
}

func parseShape(spec string) (tensor.Shape, error) {
	parts := strings.Split(spec, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", spec, err)
		}
		shape = append(shape, n)
	}
	return shape, nil
}
