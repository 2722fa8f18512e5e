package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-mazecar/config"
	"github.com/beka-birhanu/vinom-mazecar/game"
	"github.com/beka-birhanu/vinom-mazecar/game/i"
	logger "github.com/beka-birhanu/vinom-mazecar/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazecar/maze"
)

// Global variables for dependencies
var (
	simulation *game.Simulation
	runner     *game.Runner
	appLogger  i.Logger
)

func initSimulation() {
	mode, err := maze.ParseMode(config.Envs.MazeMode)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Parsing maze mode: %v", err))
		os.Exit(1)
	}
	algorithm, err := maze.ParseAlgorithm(config.Envs.MazeAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Parsing maze algorithm: %v", err))
		os.Exit(1)
	}
	strategy, err := game.ParseStrategy(config.Envs.Strategy)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Parsing strategy: %v", err))
		os.Exit(1)
	}

	simLogger, err := logger.New("SIMULATION", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation logger: %v", err))
		os.Exit(1)
	}

	simulation, err = game.New(game.Config{
		Size:      config.Envs.MazeSize,
		Mode:      mode,
		Algorithm: algorithm,
		Strategy:  strategy,
		Seed:      config.Envs.Seed,
	}, simLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation: %v", err))
		os.Exit(1)
	}

	appLogger.Info(fmt.Sprintf("Simulation %s initialized", simulation.ID))
}

func initRunner() {
	runnerLogger, err := logger.New("RUNNER", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner logger: %v", err))
		os.Exit(1)
	}

	interval := time.Duration(config.Envs.TickIntervalMS) * time.Millisecond
	runner, err = game.NewRunner(simulation, interval, runnerLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Runner initialized")
}

// render prints every snapshot until the runner closes the state channel.
func render(done chan<- struct{}) {
	defer close(done)
	for snap := range runner.StateChan {
		fmt.Print("\033[H\033[2J")
		fmt.Print(snap.Render())
		fmt.Printf("strategy: %s  position: %s  steps: %d\n", snap.Strategy, snap.Vehicle.Position, snap.Steps)
		fmt.Println("press|release <up|right|down|left>, 1 manual, 2 wall follow, 3 auto solve, single, multi, reset, quit")
	}
}

// readCommands forwards terminal input to the runner until the input ends,
// "quit" is read, or ctx is done. Unknown lines are logged and skipped.
func readCommands(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			runner.Stop()
			return
		}

		cmd, err := game.ParseCommand(line)
		if err != nil {
			appLogger.Warning(fmt.Sprintf("Ignoring input: %v", err))
			continue
		}
		select {
		case runner.Commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Reading input: %v", err))
	}
}

// reportGoals logs every goal event until the runner closes the end channel.
func reportGoals(done chan<- struct{}) {
	defer close(done)
	for goal := range runner.EndChan {
		appLogger.Info(fmt.Sprintf("Reached exit %s in %d steps using %s; enter single, multi, 1, 2, 3 or quit",
			goal.Position, goal.Steps, goal.Strategy))
	}
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Envs.GameDuration)*time.Second)
	defer cancel() // Ensure the context is always canceled

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	initSimulation()
	initRunner()

	rendered := make(chan struct{})
	go render(rendered)
	reported := make(chan struct{})
	go reportGoals(reported)
	go readCommands(ctx, os.Stdin)

	if err := runner.Start(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Run ended: %v", err))
	}
	<-rendered
	<-reported
}
