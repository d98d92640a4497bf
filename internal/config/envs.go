// Package config reads mazeflood settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazeflood/internal/grid"
	"github.com/samdwyer/mazeflood/internal/maze"
)

// Settings holds the application's configuration values.
type Settings struct {
	Maze     maze.Config  // Maze dimensions, seed and algorithm
	Root     grid.GridPos // Where exploration starts
	LogLevel logrus.Level // Minimum level for application logs
}

// Load reads settings from environment variables, falling back to defaults
// for unset ones. Call godotenv.Load first to pick up a .env file.
func Load() (Settings, error) {
	s := Settings{
		Maze:     maze.DefaultConfig(),
		LogLevel: logrus.InfoLevel,
	}

	var err error
	if s.Maze.Columns, err = getEnvAsInt("MAZE_COLUMNS", s.Maze.Columns); err != nil {
		return Settings{}, err
	}
	if s.Maze.Rows, err = getEnvAsInt("MAZE_ROWS", s.Maze.Rows); err != nil {
		return Settings{}, err
	}
	if s.Maze.Seed, err = getEnvAsInt64("MAZE_SEED", 0); err != nil {
		return Settings{}, err
	}
	s.Maze.Algorithm = getEnvWithDefault("MAZE_ALGORITHM", s.Maze.Algorithm)

	row, err := getEnvAsInt("MAZE_ROOT_ROW", 0)
	if err != nil {
		return Settings{}, err
	}
	col, err := getEnvAsInt("MAZE_ROOT_COL", 0)
	if err != nil {
		return Settings{}, err
	}
	s.Root = grid.Pos(row, col)

	level := getEnvWithDefault("MAZE_LOG_LEVEL", s.LogLevel.String())
	if s.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return Settings{}, fmt.Errorf("config: MAZE_LOG_LEVEL: %w", err)
	}

	return s, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, or defaultValue if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
