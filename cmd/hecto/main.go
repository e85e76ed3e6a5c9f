// ABOUTME: CLI entry point for hecto: shows the startup screen in raw mode until a timeout or signal
// ABOUTME: Loads config, routes logs away from the screen, redraws on resize and config change

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	// termfix must be imported before anything renders a lipgloss style,
	// so no background-colour query is written while the screen is raw.
	_ "github.com/mauromedda/hecto-go/internal/termfix"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/hecto-go/internal/config"
	pilog "github.com/mauromedda/hecto-go/internal/log"
	"github.com/mauromedda/hecto-go/internal/splash"
	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("hecto %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings, enters raw mode and keeps the startup screen up until
// the hold timer fires or a termination signal arrives.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := loadSettings(args, cwd)
	if err != nil {
		return err
	}
	hold, err := settings.HoldDuration()
	if err != nil {
		return err
	}
	level, err := settings.Level()
	if err != nil {
		return err
	}
	pilog.SetLevel(level)

	closeLog, err := setupLogging(settings.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, hold)
	defer cancel()

	scr := terminal.Default()
	resized := make(chan terminal.Size, 1)
	scr.OnResize(func(s terminal.Size) { offer(resized, s) })

	views := make(chan splash.View, 1)
	workers := []worker{{
		name: "render",
		run: func(ctx context.Context) error {
			return renderLoop(ctx, scr, viewOf(settings), resized, views)
		},
	}}
	if !args.noWatch {
		files := config.ConfigFiles(cwd)
		if args.config != "" {
			files = []string{args.config}
		}
		w, werr := config.NewWatcher(files, func() { reload(args, cwd, views) })
		if werr != nil {
			pilog.Warn("config reload disabled: %v", werr)
		} else {
			defer w.Close()
			workers = append(workers, worker{name: "config watcher", run: w.Run})
		}
	}

	pilog.Info("screen up for %s", hold)
	if err := serve(ctx, scr, workers...); err != nil {
		return err
	}
	pilog.Debug("leaving: %v", context.Cause(ctx))
	return nil
}

// worker is one goroutine that runs while the screen is in raw mode.
type worker struct {
	name string
	run  func(ctx context.Context) error
}

// serve enters raw mode on scr and runs workers until ctx is done or one of
// them fails. A panicking worker becomes an error, so the session is closed
// and cooked mode restored before the process exits. A panic on the calling
// goroutine is re-raised by Screen.Run after the same cleanup, which leaves
// the caller's deferred functions free to run.
func serve(ctx context.Context, scr *terminal.Screen, workers ...worker) error {
	return scr.Run(func(*terminal.Screen) error {
		g, gctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			g.Go(func() error { return w.guarded(gctx) })
		}
		return g.Wait()
	})
}

func (w worker) guarded(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v\n%s", w.name, r, debug.Stack())
		}
	}()
	return w.run(ctx)
}

// loadSettings reads the config files and applies flag overrides on top.
func loadSettings(args cliArgs, cwd string) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if args.config != "" {
		s, err = config.LoadFile(args.config)
	} else {
		s, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if args.hold != "" {
		s.Hold = args.hold
	}
	if args.logFile != "" {
		s.LogFile = args.logFile
	}
	if args.verbose {
		s.LogLevel = "debug"
	}
	return s, nil
}

// setupLogging points the logger at path, or at an in-memory buffer that is
// copied to fallback when the returned func runs. Either way nothing is
// logged onto the screen while it is in raw mode.
func setupLogging(path string, fallback io.Writer) (func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		pilog.SetOutput(f)
		return func() {
			pilog.SetOutput(fallback)
			f.Close()
		}, nil
	}

	var held bytes.Buffer
	pilog.SetOutput(&held)
	return func() {
		pilog.SetOutput(fallback)
		fallback.Write(held.Bytes())
	}, nil
}

func viewOf(s *config.Settings) splash.View {
	return splash.View{
		Welcome:    s.WelcomeText(),
		Status:     "hecto " + version,
		ShowStatus: s.StatusEnabled(),
	}
}

// reload re-reads the settings after a config change and hands the new
// view to the render loop. Invalid files keep the current view.
func reload(args cliArgs, cwd string, views chan splash.View) {
	s, err := loadSettings(args, cwd)
	if err != nil {
		pilog.Warn("config reload: %v", err)
		return
	}
	if level, err := s.Level(); err == nil {
		pilog.SetLevel(level)
	}
	pilog.Info("config reloaded")
	offer(views, viewOf(s))
}

// renderLoop draws the first frame and redraws whenever the terminal is
// resized or a new view arrives. It returns nil when ctx is done.
func renderLoop(ctx context.Context, scr splash.Screen, view splash.View, resized <-chan terminal.Size, views <-chan splash.View) error {
	if err := splash.Draw(scr, view); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case size := <-resized:
			pilog.Debug("resized to %dx%d", size.Width, size.Height)
		case view = <-views:
		}
		if err := splash.Draw(scr, view); err != nil {
			return err
		}
	}
}

// offer replaces whatever is buffered in ch with v, so a slow reader only
// ever sees the latest value.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
