package main

import (
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/platform/tui"
	"github.com/vovakirdan/fishgrab/internal/storage"
)

var (
	flagASCII  bool
	flagNoBell bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Fish Grab in the current terminal.

Controls:
  Arrows/WASD - Move the grabber
  R           - New game (after winning)
  ?           - Toggle full help
  Q/Esc       - Quit

Winning runs are recorded in the runs database.

Examples:
  fishgrab play
  fishgrab play --seed 7
  fishgrab play --ascii`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Draw fish and grabber with ASCII characters")
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring the terminal bell")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: login name)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	if cmd.Flags().Changed("ascii") {
		cfg.Display.ASCIIGlyphs = flagASCII
	}
	if flagNoBell {
		cfg.Display.Bell = false
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(cfg.Log.File); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg, "fishgrab")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Recording is optional; the game runs without a database.
	var recorder tui.RunRecorder
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
	} else {
		defer store.Close()
		recorder = store
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:       recorder,
		Logger:      logger,
		Player:      playerName(),
		BeadWidth:   cfg.Display.BeadWidth,
		ASCIIGlyphs: cfg.Display.ASCIIGlyphs,
	}
	if cfg.Display.Bell {
		opts.Bell = os.Stdout
	}

	if err := tui.Run(opts); err != nil {
		fail("%v", err)
	}
}

// playerName returns --player, falling back to the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
