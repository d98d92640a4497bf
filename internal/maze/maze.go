// Package maze builds seeded mazes and explores them, recording a trace span
// for each operation.
package maze

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazeflood/internal/distance"
	"github.com/samdwyer/mazeflood/internal/generate"
	"github.com/samdwyer/mazeflood/internal/grid"
	"github.com/samdwyer/mazeflood/internal/telemetry"
)

// Maze is a carved grid together with everything needed to rebuild it.
type Maze struct {
	ID        uuid.UUID
	Grid      grid.Grid
	Seed      int64  // Seed actually used, never 0
	Algorithm string // Name of the carving algorithm
	Analysis  grid.Analysis

	log    *logrus.Entry
	tracer trace.Tracer
}

// Option customizes Build.
type Option func(*Maze)

// WithLogger sends debug logs for Build and Explore to log.
func WithLogger(log *logrus.Entry) Option {
	return func(m *Maze) {
		if log != nil {
			m.log = log
		}
	}
}

// WithTracer records spans on tracer instead of the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Maze) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// Build carves a new maze described by cfg.
func Build(ctx context.Context, cfg Config, opts ...Option) (*Maze, error) {
	m := &Maze{
		ID:        uuid.New(),
		Seed:      cfg.Seed,
		Algorithm: cfg.Algorithm,
		log:       discardLogger(),
		tracer:    telemetry.Tracer("maze"),
	}
	for _, opt := range opts {
		opt(m)
	}

	_, span := m.tracer.Start(ctx, "maze.build")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, fmt.Errorf("build maze: %w", err)
	}
	alg, _ := generate.ByName(cfg.Algorithm)

	if m.Seed == 0 {
		m.Seed = time.Now().UnixNano()
	}

	startTime := time.Now()
	m.Grid = alg(grid.New(cfg.Columns, cfg.Rows), generate.NewSource(m.Seed))
	m.Analysis = grid.Analyze(m.Grid)
	elapsed := time.Since(startTime)

	span.SetAttributes(
		attribute.String("maze.id", m.ID.String()),
		attribute.Int("maze.columns", cfg.Columns),
		attribute.Int("maze.rows", cfg.Rows),
		attribute.Int64("maze.seed", m.Seed),
		attribute.String("maze.algorithm", m.Algorithm),
		attribute.Int("maze.passages", m.Analysis.Passages),
		attribute.Bool("maze.perfect", m.Analysis.Perfect()),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)

	m.log.WithFields(logrus.Fields{
		"maze_id":   m.ID,
		"columns":   cfg.Columns,
		"rows":      cfg.Rows,
		"seed":      m.Seed,
		"algorithm": m.Algorithm,
		"passages":  m.Analysis.Passages,
		"elapsed":   elapsed,
	}).Debug("maze built")

	return m, nil
}

// Explore floods the maze from root and returns every snapshot of the run.
func (m *Maze) Explore(ctx context.Context, root grid.GridPos) (distance.History, error) {
	_, span := m.tracer.Start(ctx, "maze.explore",
		trace.WithAttributes(
			attribute.String("maze.id", m.ID.String()),
			attribute.Int("explore.root_row", int(root.Row)),
			attribute.Int("explore.root_col", int(root.Col)),
		),
	)
	defer span.End()

	if !m.Grid.Contains(root) {
		err := fmt.Errorf("%w: %s not in %d columns x %d rows", ErrRootOutOfBounds, root, m.Grid.Columns(), m.Grid.Rows())
		span.RecordError(err)
		span.SetStatus(codes.Error, "root out of bounds")
		return nil, err
	}

	history := distance.New(root).RunToCompletionAll(m.Grid)
	final := history.Final()

	span.SetAttributes(
		attribute.Int("explore.steps", history.Steps()),
		attribute.Int("explore.visited", final.Visited()),
		attribute.Int("explore.max_distance", final.MaxDistance()),
	)

	m.log.WithFields(logrus.Fields{
		"maze_id":      m.ID,
		"root":         root.String(),
		"steps":        history.Steps(),
		"visited":      final.Visited(),
		"max_distance": final.MaxDistance(),
	}).Debug("maze explored")

	return history, nil
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
