// termblox shows the high-score initials entry screen of a terminal breakout
// game: enter three letters for a qualifying score and see the table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termblox/audio"
	"termblox/config"
	"termblox/initials"
	"termblox/input"
	"termblox/leaderboard"
	"termblox/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagScore   uint32 = 1500
	flagFPS     = flag.Int("fps", 0, "Frames per second (overrides entry.frame_ms)")
	flagMute    = flag.Bool("mute", false, "Disable sound effects")
	flagReset   = flag.Bool("reset-scores", false, "Restore the default high-score table before starting")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

func init() {
	flag.Func("score", "Score the player died with (default 1500)", func(s string) error {
		score, err := parseScore(s)
		if err != nil {
			return err
		}
		flagScore = score
		return nil
	})
}

// parseScore parses a score that fits the 32-bit high-score table.
func parseScore(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("score must be between 0 and %d", uint32(1<<32-1))
	}
	return uint32(n), nil
}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termblox %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(cfg, flagScore); err != nil {
		logger.Error("termblox failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with command-line flags.
func applyFlags(cfg *config.Config) {
	if *flagFPS > 0 {
		cfg.Entry.FrameMillis = max(1, 1000 / *flagFPS)
	}
	if *flagMute {
		cfg.Sound.Enabled = false
	}
}

// openLogger opens the log file named in cfg.
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { f.Close() }, nil
}

// openFeedback returns sound cues, or nil when sound is off or unavailable.
func openFeedback(cfg config.SoundConfig) initials.Feedback {
	if !cfg.Enabled {
		return nil
	}
	player, err := audio.OpenSpeaker()
	if err != nil {
		slog.Warn("sound disabled", "err", err)
		return nil
	}
	return audio.NewCues(player, cfg.Volume)
}

func run(cfg *config.Config, score uint32) error {
	store, err := leaderboard.Open(cfg.Leaderboard.Path, cfg.Leaderboard.Size, slog.Default())
	if err != nil {
		return fmt.Errorf("open high scores: %w", err)
	}
	if *flagReset {
		if err := store.Reset(); err != nil {
			return fmt.Errorf("reset high scores: %w", err)
		}
	}

	editor := initials.NewEditor(store, initials.Options{
		TickPeriod: initials.DefaultTickPeriod,
		Debounce:   cfg.Entry.Debounce(),
		DeadZone:   cfg.Entry.DeadZone,
		Feedback:   openFeedback(cfg.Sound),
		Logger:     slog.Default(),
	})
	keyboard := input.NewKeyboard(cfg.Entry.Hold())

	app := tview.NewApplication()
	pages := tview.NewPages()

	entryScreen := ui.NewInitialsScreen(editor, cfg.Theme)
	scoreCard := ui.NewScoreCard("HIGH SCORES", store.Entries, ui.NewPalette(cfg.Theme).Highlight)

	pages.AddPage("entry", entryScreen, true, false)
	pages.AddPage("scores", scoreCard, true, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		page, _ := pages.GetFrontPage()
		switch page {
		case "entry":
			if keyboard.HandleKey(event) {
				return nil
			}
		case "scores":
			if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
				app.Stop()
				return nil
			}
		}
		return event
	})

	if editor.CheckScore(score) {
		pages.SwitchToPage("entry")
		go runFrames(ctx, app, cfg.Entry.Frame(), func(now time.Time, elapsed time.Duration) bool {
			if editor.Update(keyboard.Poll(now), elapsed) != initials.StateCommitted {
				return false
			}
			last := editor.LastCommitted()
			scoreCard.SetHighlight(last.Score, last.Letters.String())
			if place := store.Rank(last.Score, last.Letters.String()); place > 0 {
				scoreCard.SetMessage(fmt.Sprintf("YOU PLACED #%d", place))
			}
			keyboard.Release()
			pages.SwitchToPage("scores")
			return true
		})
	} else {
		scoreCard.SetMessage(fmt.Sprintf("%05d IS NOT A HIGH SCORE", score))
		pages.SwitchToPage("scores")
	}

	return app.SetRoot(pages, true).Run()
}

// runFrames calls update once per frame on the application goroutine until
// update reports that the screen is done or ctx ends.
func runFrames(ctx context.Context, app *tview.Application, period time.Duration, update func(now time.Time, elapsed time.Duration) bool) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	done := make(chan struct{})
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case now := <-ticker.C:
			app.QueueUpdateDraw(func() {
				select {
				case <-done:
					return
				default:
				}
				elapsed := now.Sub(last)
				last = now
				if update(now, elapsed) {
					close(done)
				}
			})
		}
	}
}
