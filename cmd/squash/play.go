package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-squash/internal/audio"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
	"github.com/vovakirdan/tui-squash/internal/platform/tui"
	"github.com/vovakirdan/tui-squash/internal/registry"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a squash session in the terminal.

Controls:
  Space/Enter   - Start
  Up/W, Down/S  - Move paddle
  +/-           - Paddle speed (squash variant)
  P             - Pause
  ?             - Help
  Q/Esc/Ctrl+C  - Quit

Examples:
  squash play
  squash play classic
  squash play --difficulty hard --sound
  squash play --log-level debug --log-file squash.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound cues (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
	}

	if variantID != "" && !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'squash list' to see available variants.")
		os.Exit(1)
	}

	if err := play(variantID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one terminal session. Deferred cleanup (audio, log file) runs
// before runPlay exits.
func play(variantID string) error {
	cfg, err := loadConfig(flagConfig, variantID, flagDifficulty)
	if err != nil {
		return err
	}

	// The terminal is owned by the UI, so logs only go to a file
	out, closeLog, err := openLogOutput(flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := runtimeConfig(width, height, cfg)
	engine := squash.New(cfg, rt)
	logger.Info("starting", "variant", variantID, "width", width, "height", height, "seed", rt.Seed)

	player := openAudio(cfg.Audio.Enabled || flagSound, cfg.Audio.Volume, logger)
	if player != nil {
		defer player.Close()
	}

	return tui.Run(engine, tui.Options{
		Runtime: rt,
		Hold:    cfg.Input.HoldDuration(),
		Logger:  logger,
		Audio:   player,
	})
}

// openAudio returns an initialized player, or nil when disabled or when the
// device cannot be opened.
func openAudio(enabled bool, volume float64, logger *log.Logger) *audio.Player {
	if !enabled {
		return nil
	}
	p := audio.NewPlayer(volume)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}
