package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeSize       int    // Side length of the square maze
	MazeMode       string // Exit layout: single or multi
	MazeAlgorithm  string // Generator: backtracker, division or wilson
	Strategy       string // Starting strategy: manual, wall_follow or auto_solve
	TickIntervalMS int    // Milliseconds between simulation steps
	GameDuration   int    // Seconds before the run is abandoned
	Seed           int64  // Random seed, 0 seeds from the clock
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeSize:       getEnvAsIntWithDefault("MAZE_SIZE", 15),
		MazeMode:       getEnvWithDefault("MAZE_MODE", "single"),
		MazeAlgorithm:  getEnvWithDefault("MAZE_ALGORITHM", "backtracker"),
		Strategy:       getEnvWithDefault("STRATEGY", "auto_solve"),
		TickIntervalMS: getEnvAsIntWithDefault("TICK_INTERVAL_MS", 100),
		GameDuration:   getEnvAsIntWithDefault("GAME_DURATION_SEC", 60),
		Seed:           int64(getEnvAsIntWithDefault("SEED", 0)),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue if not set. It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
