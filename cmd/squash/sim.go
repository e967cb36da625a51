package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
	"github.com/vovakirdan/tui-squash/internal/platform/headless"
	"github.com/vovakirdan/tui-squash/internal/platform/tui"
)

var (
	flagTicks    int
	flagWidth    int
	flagHeight   int
	flagDeadzone float64
	flagFrame    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run the engine headless with an autopilot",
	Long: `Step the engine at a fixed dt with an autopilot that chases the ball,
then print a summary. Useful for tuning configs and checking determinism.

Examples:
  squash sim
  squash sim classic --ticks 100000 --seed 42
  squash sim --deadzone 0.9 --log-level debug
  squash sim --ticks 90 --frame`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Viewport width")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Viewport height")
	simCmd.Flags().Float64Var(&flagDeadzone, "deadzone", 0.2, "Autopilot deadzone as a fraction of paddle size")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame as plain text")
}

func runSim(cmd *cobra.Command, args []string) {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
	}

	cfg, err := loadConfig(flagConfig, variantID, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, closeLog, err := openLogOutput(flagLogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig(flagWidth, flagHeight, cfg)
	engine := squash.New(cfg, rt)
	runner := headless.NewRunner(engine, squash.Autopilot{Deadzone: flagDeadzone}, rt.Dt(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := runner.Run(ctx, flagTicks)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	fmt.Printf("Seed:        %d\n", rt.Seed)
	fmt.Printf("Ticks:       %d (%.1fs simulated)\n", sum.Ticks, float64(sum.Ticks)*rt.Dt())
	fmt.Printf("Paddle hits: %d\n", sum.Hits)
	fmt.Printf("Bounces:     %d\n", sum.Bounces)
	fmt.Printf("Misses:      %d\n", sum.Misses)
	fmt.Printf("Best round:  %d\n", sum.BestRound)
	fmt.Printf("Final round: %d (started=%v)\n", sum.Final.Round, sum.Final.Started)
	fmt.Printf("State hash:  %016x\n", sum.Final.Hash())

	if flagFrame {
		fmt.Println()
		fmt.Println(finalFrame(sum.Final, flagWidth, flagHeight))
	}
}

// finalFrame draws snap into a width x height plain-text frame.
func finalFrame(snap squash.Snapshot, width, height int) string {
	s := core.NewScreen(width, height)
	tui.DrawSnapshot(s, snap)
	return s.String()
}
