package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var envKeys = []string{"MAZE_SIZE", "MAZE_MODE", "MAZE_ALGORITHM", "STRATEGY", "TICK_INTERVAL_MS", "GAME_DURATION_SEC", "SEED"}

// unsetEnv clears the maze settings for the duration of the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Config{
				MazeSize:       15,
				MazeMode:       "single",
				MazeAlgorithm:  "backtracker",
				Strategy:       "auto_solve",
				TickIntervalMS: 100,
				GameDuration:   60,
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"MAZE_SIZE":         "21",
				"MAZE_MODE":         "multi",
				"MAZE_ALGORITHM":    "wilson",
				"STRATEGY":          "wall_follow",
				"TICK_INTERVAL_MS":  "50",
				"GAME_DURATION_SEC": "30",
				"SEED":              "42",
			},
			want: Config{
				MazeSize:       21,
				MazeMode:       "multi",
				MazeAlgorithm:  "wilson",
				Strategy:       "wall_follow",
				TickIntervalMS: 50,
				GameDuration:   30,
				Seed:           42,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, initConfig())
		})
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("MAZECAR_TEST_VALUE", "division")
	assert.Equal(t, "division", getEnvWithDefault("MAZECAR_TEST_VALUE", "backtracker"))
	assert.Equal(t, "backtracker", getEnvWithDefault("MAZECAR_TEST_UNSET", "backtracker"))

	t.Setenv("MAZECAR_TEST_INT", "7")
	assert.Equal(t, 7, getEnvAsIntWithDefault("MAZECAR_TEST_INT", 15))
	assert.Equal(t, 15, getEnvAsIntWithDefault("MAZECAR_TEST_UNSET", 15))
}
