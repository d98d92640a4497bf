// Package main is the entry point for mazeflood.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazeflood/internal/config"
	"github.com/samdwyer/mazeflood/internal/distance"
	"github.com/samdwyer/mazeflood/internal/generate"
	"github.com/samdwyer/mazeflood/internal/grid"
	"github.com/samdwyer/mazeflood/internal/maze"
	"github.com/samdwyer/mazeflood/internal/telemetry"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.WithError(err).Debug(".env file not loaded")
	}

	settings, err := config.Load()
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return 1
	}
	log.SetLevel(settings.LogLevel)

	cfg := settings.Maze
	var rootRow, rootCol int
	var showDistances, showPath, showSteps bool
	fs := flag.NewFlagSet("mazeflood", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Columns, "cols", cfg.Columns, "The width of the maze, in cells.")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "The height of the maze, in cells.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed. 0 picks one from the clock.")
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm,
		fmt.Sprintf("Carving algorithm, one of %v.", generate.Names()))
	fs.IntVar(&rootRow, "root-row", int(settings.Root.Row), "Row the distance flood starts from.")
	fs.IntVar(&rootCol, "root-col", int(settings.Root.Col), "Column the distance flood starts from.")
	fs.BoolVar(&showDistances, "distances", false, "Print each cell's distance from the root.")
	fs.BoolVar(&showPath, "path", false, "Mark the path from the root to the farthest cell.")
	fs.BoolVar(&showSteps, "steps", false, "Print how many flood steps the exploration took.")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed, continuing without traces")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Warn("Error shutting down telemetry")
				}
			}()
		}
	}

	m, err := maze.Build(ctx, cfg, maze.WithLogger(logrus.NewEntry(log)))
	if err != nil {
		log.WithError(err).Error("Failed to build maze")
		return 1
	}

	root := grid.Pos(rootRow, rootCol)
	history, err := m.Explore(ctx, root)
	if err != nil {
		log.WithError(err).Error("Failed to explore maze")
		return 1
	}
	final := history.Final()

	label, err := cellLabels(m.Grid, final, showDistances, showPath)
	if err != nil {
		log.WithError(err).Error("Failed to trace path")
		return 1
	}
	fmt.Fprint(out, m.Grid.Format(label))
	if showSteps {
		fmt.Fprintf(out, "steps: %d, visited: %d, max distance: %d\n",
			history.Steps(), final.Visited(), final.MaxDistance())
	}

	log.WithFields(logrus.Fields{
		"maze_id":      m.ID,
		"seed":         m.Seed,
		"algorithm":    m.Algorithm,
		"passages":     m.Analysis.Passages,
		"perfect":      m.Analysis.Perfect(),
		"steps":        history.Steps(),
		"max_distance": final.MaxDistance(),
	}).Info("Maze generated")

	return 0
}

// cellLabels picks what to print inside each cell: distances in base 36,
// a '*' on the path to the farthest cell, or nothing.
func cellLabels(g grid.Grid, f distance.Field, showDistances, showPath bool) (func(grid.GridPos) string, error) {
	onPath := make(map[grid.GridPos]bool)
	if showPath {
		path, err := f.PathTo(g, farthest(f))
		if err != nil {
			return nil, err
		}
		for _, pos := range path {
			onPath[pos] = true
		}
	}

	if !showDistances && !showPath {
		return nil, nil
	}

	return func(pos grid.GridPos) string {
		mark := " "
		if onPath[pos] {
			mark = "*"
		}
		if !showDistances {
			return " " + mark + " "
		}
		d, ok := f.Distance(pos)
		if !ok {
			return mark + " ?"
		}
		return fmt.Sprintf("%s%2s", mark, strconv.FormatInt(int64(d), 36))
	}, nil
}

// farthest returns the first position, in row-major order, at the field's
// maximum distance.
func farthest(f distance.Field) grid.GridPos {
	for _, pos := range f.Positions() {
		if d, _ := f.Distance(pos); d == f.MaxDistance() {
			return pos
		}
	}
	return f.Root()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Only point at Honeycomb when a key is configured; otherwise leave any
	// OTEL_* settings from the environment alone.
	apiKey := os.Getenv("HONEYCOMB_MAZEFLOOD_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_MAZEFLOOD_DATASET")
	if dataset == "" {
		dataset = "mazeflood" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
