package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

var (
	flagSimTicks       int
	flagSimAutopilot   bool
	flagSimSpawnChance float64
	flagSimFrame       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print the result",
	Long: `Run a session without a terminal, as fast as possible, and print
the final snapshot. The same seed always gives the same result.

Examples:
  dodge sim --seed 42
  dodge sim --ticks 100000 --autopilot
  dodge sim --spawn-chance 0.05 --frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the bot steer")
	simCmd.Flags().Float64Var(&flagSimSpawnChance, "spawn-chance", -1, "Override the per-tick spawn probability")
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the last frame")
}

// countingPort is the terminal scene with command counters.
type countingPort struct {
	*scene.Scene
	created int
	removed int
	renders int
}

func (p *countingPort) CreateEntity(shape core.Shape, mat core.Material, pos core.Vec3) core.Handle {
	p.created++
	return p.Scene.CreateEntity(shape, mat, pos)
}

func (p *countingPort) RemoveEntity(h core.Handle) {
	p.removed++
	p.Scene.RemoveEntity(h)
}

func (p *countingPort) Render() {
	p.renders++
	p.Scene.Render()
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSimSpawnChance >= 0 {
		cfg.Obstacles.SpawnChance = flagSimSpawnChance
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger("dodge-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var port *countingPort
	opts := []dodge.Option{
		dodge.WithLogger(logger),
		dodge.WithPortFactory(func(cam scene.Camera, w, h int) dodge.RenderPort {
			port = &countingPort{Scene: scene.New(cam, w, h)}
			return port
		}),
	}
	if flagSimAutopilot {
		opts = append(opts, dodge.WithAutopilot(dodge.DefaultAutopilot()))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed

	game := dodge.New(cfg, opts...)
	game.Reset(runtime)

	start := time.Now()
	for i := 0; i < flagSimTicks; i++ {
		if res := game.Step(); res.Ended {
			break
		}
	}
	elapsed := time.Since(start)

	snap := game.Snapshot()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%d\n", seed)
	fmt.Fprintf(w, "ticks\t%d\n", snap.Tick)
	fmt.Fprintf(w, "phase\t%s\n", snap.Phase)
	fmt.Fprintf(w, "score\t%d\n", snap.Score)
	fmt.Fprintf(w, "player x\t%.2f\n", snap.PlayerX)
	fmt.Fprintf(w, "live obstacles\t%d\n", snap.Obstacles)
	fmt.Fprintf(w, "entities created\t%d\n", port.created)
	fmt.Fprintf(w, "entities removed\t%d\n", port.removed)
	fmt.Fprintf(w, "renders\t%d\n", port.renders)
	fmt.Fprintf(w, "game time\t%s\n", time.Duration(snap.Tick)*time.Second/time.Duration(max(runtime.TickRate, 1)))
	fmt.Fprintf(w, "wall time\t%s\n", elapsed.Round(time.Microsecond))
	if err := w.Flush(); err != nil {
		return err
	}

	if flagSimFrame {
		screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}
