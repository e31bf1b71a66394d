package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot",
	Long: `Run the simulation without a display. An autopilot chases the
lowest enemy and fires when it has no shot in flight.

The run uses a fixed clock, so the same seed and config always print the
same result and snapshot hash.

Examples:
  invaders simulate --ticks 5000 --seed 42
  invaders simulate --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks  uint64
	Score  int
	Wave   int
	Lives  int
	Kills  int
	State  invaders.State
	Hash   uint64
	Events map[invaders.EventKind]int
}

func runSimulate(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	res := simulate(gameCfg, seed, flagTicks, flagFPS, logger)

	fmt.Printf("ticks:  %d\n", res.Ticks)
	fmt.Printf("state:  %s\n", res.State)
	fmt.Printf("score:  %d\n", res.Score)
	fmt.Printf("wave:   %d\n", res.Wave)
	fmt.Printf("lives:  %d\n", res.Lives)
	fmt.Printf("kills:  %d\n", res.Kills)
	fmt.Printf("hash:   %016x\n", res.Hash)
}

// simulate plays up to maxTicks with the autopilot on a fixed clock.
func simulate(cfg config.InvadersConfig, seed int64, maxTicks, tickRate int, logger *log.Logger) simResult {
	clock := core.NewTickClockForRate(tickRate)
	sim := invaders.NewSimulation(cfg, invaders.Deps{
		RNG:    core.NewSimpleRNG(seed),
		Logger: logger,
	})
	sim.Start()

	res := simResult{Events: make(map[invaders.EventKind]int)}
	for range maxTicks {
		if sim.State() != invaders.StateRunning {
			break
		}
		sim.Advance(autopilot(sim), clock.Now())
		clock.Advance()

		for _, ev := range sim.DrainEvents() {
			res.Events[ev.Kind]++
			if ev.Kind == invaders.EventWaveCleared {
				logger.Info("wave cleared", "wave", ev.Wave, "tick", ev.Tick)
			}
		}
	}

	snap := sim.Snapshot()
	res.Ticks = sim.Tick()
	res.Score = sim.Score()
	res.Wave = sim.Wave()
	res.Lives = sim.Lives()
	res.Kills = res.Events[invaders.EventEnemyDestroyed]
	res.State = sim.State()
	res.Hash = snap.Hash()
	return res
}

// autopilot steers under the lowest enemy and fires when no shot is in flight.
func autopilot(sim *invaders.Simulation) invaders.Input {
	enemies := sim.Enemies()
	if len(enemies) == 0 {
		return invaders.Input{}
	}

	target := enemies[0]
	for _, e := range enemies[1:] {
		if e.Y > target.Y || (e.Y == target.Y && e.X < target.X) {
			target = e
		}
	}

	p := sim.Player()
	px, _ := p.Rect().Center()
	tx, _ := target.Rect().Center()

	var in invaders.Input
	switch {
	case tx < px-p.W/4:
		in.Left = true
	case tx > px+p.W/4:
		in.Right = true
	}
	in.Fire = len(sim.PlayerShots()) == 0
	return in
}
