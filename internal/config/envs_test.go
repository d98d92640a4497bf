package config

import (
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeflood/internal/generate"
	"github.com/samdwyer/mazeflood/internal/grid"
	"github.com/samdwyer/mazeflood/internal/maze"
)

var keys = []string{
	"MAZE_COLUMNS", "MAZE_ROWS", "MAZE_SEED", "MAZE_ALGORITHM",
	"MAZE_ROOT_ROW", "MAZE_ROOT_COL", "MAZE_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, maze.DefaultConfig(), s.Maze)
	assert.Equal(t, grid.Pos(0, 0), s.Root)
	assert.Equal(t, logrus.InfoLevel, s.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_COLUMNS", "30")
	t.Setenv("MAZE_ROWS", "8")
	t.Setenv("MAZE_SEED", strconv.FormatInt(1<<40, 10))
	t.Setenv("MAZE_ALGORITHM", generate.NameBinaryTree)
	t.Setenv("MAZE_ROOT_ROW", "3")
	t.Setenv("MAZE_ROOT_COL", "7")
	t.Setenv("MAZE_LOG_LEVEL", "debug")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, maze.Config{Columns: 30, Rows: 8, Seed: 1 << 40, Algorithm: generate.NameBinaryTree}, s.Maze)
	assert.Equal(t, grid.Pos(3, 7), s.Root)
	assert.Equal(t, logrus.DebugLevel, s.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"MAZE_COLUMNS":   "wide",
		"MAZE_SEED":      "0x10",
		"MAZE_ROOT_COL":  "1.5",
		"MAZE_LOG_LEVEL": "chatty",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
