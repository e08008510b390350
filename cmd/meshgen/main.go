// meshgen generates the canonical coarse meshes of the grids catalog and
// writes them as legacy VTK files for inspection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/grids"
	"github.com/gridcraft/gridgen/mesh"
)

var (
	verbose bool
	logger  *zap.Logger

	dim         int
	left        float64
	right       float64
	radius      float64
	innerRadius float64
	outerRadius float64
	halfLength  float64
	thickness   float64
	repetitions int
	nCells      int
	colorize    bool
	outFile     string
)

var rootCmd = &cobra.Command{
	Use:   "meshgen",
	Short: "Generate coarse meshes for standard computational domains",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <shape>",
	Short: "Generate one catalog shape and write it as legacy VTK",
	Long: `Generate one shape from the catalog and write it as a legacy VTK
unstructured grid. Supported shapes:

  hyper-cube, subdivided-hyper-cube, enclosed-hyper-cube, hyper-ball,
  half-hyper-ball, cylinder, hyper-l, hyper-cube-slit, hyper-shell,
  half-hyper-shell`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mesh.New(dim)
		if err != nil {
			return err
		}
		center := geom.Zero(dim)

		shape := args[0]
		switch shape {
		case "hyper-cube":
			err = grids.HyperCube(m, left, right)
		case "subdivided-hyper-cube":
			err = grids.SubdividedHyperCube(m, repetitions, left, right)
		case "enclosed-hyper-cube":
			err = grids.EnclosedHyperCube(m, left, right, thickness, colorize)
		case "hyper-ball":
			err = grids.HyperBall(m, center, radius)
		case "half-hyper-ball":
			err = grids.HalfHyperBall(m, center, radius)
		case "cylinder":
			err = grids.Cylinder(m, radius, halfLength)
		case "hyper-l":
			err = grids.HyperL(m, left, right)
		case "hyper-cube-slit":
			err = grids.HyperCubeSlit(m, left, right, colorize)
		case "hyper-shell":
			err = grids.HyperShell(m, center, innerRadius, outerRadius, nCells)
		case "half-hyper-shell":
			err = grids.HalfHyperShell(m, center, innerRadius, outerRadius, nCells)
		default:
			return fmt.Errorf("unknown shape %q", shape)
		}
		if err != nil {
			return err
		}
		if err := m.Check(); err != nil {
			return err
		}
		logger.Info("generated mesh",
			zap.String("shape", shape),
			zap.Int("dim", dim),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("cells", len(m.Cells)),
			zap.Int("boundary_faces", len(m.BoundaryFaces())))

		out := os.Stdout
		if outFile != "" {
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if err := m.WriteVTK(out); err != nil {
			return err
		}
		if outFile != "" {
			logger.Info("wrote VTK file", zap.String("path", outFile))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	f := generateCmd.Flags()
	f.IntVar(&dim, "dim", 2, "mesh dimension (1-3)")
	f.Float64Var(&left, "left", 0, "lower interval bound for cube-like shapes")
	f.Float64Var(&right, "right", 1, "upper interval bound for cube-like shapes")
	f.Float64Var(&radius, "radius", 1, "radius for balls and cylinders")
	f.Float64Var(&innerRadius, "inner-radius", 0.5, "inner shell radius")
	f.Float64Var(&outerRadius, "outer-radius", 1, "outer shell radius")
	f.Float64Var(&halfLength, "half-length", 1, "cylinder half length")
	f.Float64Var(&thickness, "thickness", 1, "layer thickness for the enclosed cube")
	f.IntVar(&repetitions, "repetitions", 1, "cells per axis for subdivided shapes")
	f.IntVar(&nCells, "cells", 0, "shell cell count, 0 selects automatically")
	f.BoolVar(&colorize, "colorize", false, "assign boundary/material ids")
	f.StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
