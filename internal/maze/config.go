package maze

import (
	"fmt"

	"github.com/samdwyer/mazeflood/internal/generate"
)

const (
	// Default maze dimensions
	DefaultColumns = 20
	DefaultRows    = 20
)

// Config holds maze generation options.
type Config struct {
	Columns int
	Rows    int
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Algorithm names the carving algorithm, see generate.Names.
	Algorithm string
}

// DefaultConfig returns a 20x20 sidewinder maze with a random seed.
func DefaultConfig() Config {
	return Config{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		Algorithm: generate.NameSidewinder,
	}
}

// Validate checks the dimensions and algorithm name.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: got %d columns x %d rows", ErrInvalidDimensions, c.Columns, c.Rows)
	}
	if _, err := generate.ByName(c.Algorithm); err != nil {
		return err
	}
	return nil
}
