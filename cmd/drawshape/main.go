// drawshape builds 2D and 3D shape scenes from dimensions and exports them
// as meshes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/drawshape/internal/config"
	"github.com/Faultbox/drawshape/internal/logger"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg, args[0], args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr)
			printUsage(os.Stderr)
			os.Exit(2)
		}
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, command string, args []string, out io.Writer) error {
	switch command {
	case "shapes", "ls":
		return cmdShapes(out)
	case "draw":
		return cmdDraw(cfg, args, out)
	case "export", "x":
		return cmdExport(cfg, args, out)
	case "spin":
		return cmdSpin(cfg, args, out)
	case "inspect":
		return cmdInspect(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	case "config":
		return cmdConfig(args, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `drawshape - build and export 2D/3D shapes

Usage:
  drawshape [global options] <command> [options]

Commands:
  shapes                                   List shapes, their fields and spin axis
  draw <shape> [dimensions]                Build a shape and print its scene
  export <shape> -o <file> [dimensions]    Write the shape as OBJ or STL
  spin <shape> [-frames N] [-step 250ms]   Print rotation angles over time
       [-matrix] [-quat]                   Add rotated-direction / quaternion columns
  inspect <file.stl>                       Show triangle count and bounds
  config init [-o <file>] [-force]         Write the default config file

Dimensions:
  -length, -width, -radius, -height, -minor-radius (text as typed in the form)

Global options:
  -config <file>          Config file (default ./drawshape.yaml)
  -debug                  Debug logging
  -log-file <file>        Also log to a rotating file
  -cone-resolution N      Angular steps around the cone base
  -ring-segments N        Torus ring segments
  -tube-segments N        Torus tube segments
  -legacy-triangle        Draw the right-triangle outline

Examples:
  drawshape draw cone -radius 40 -height 90
  drawshape export torus -radius 60 -minor-radius 20 -o torus.stl
  drawshape spin cube -frames 5 -step 1s`)
}
