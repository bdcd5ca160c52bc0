package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/catalog"
	"github.com/appengine-ltd/cookie-tycoon/internal/config"
	"github.com/appengine-ltd/cookie-tycoon/internal/engine"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/screens"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	configPath  string
	logLevel    string
	logFile     string
	seed        int64
	assetDir    string
	classic     bool
	art         bool
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.StringVar(&opts.configPath, "config", "cookie-tycoon.conf", "key=value tuning file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.StringVar(&opts.logFile, "log-file", "", "log destination, - for stderr (default a file in the temp dir)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flag.StringVar(&opts.assetDir, "assets", "assets", "directory with fonts, sounds and images")
	flag.BoolVar(&opts.classic, "classic", false, "start in the terminal front end")
	flag.BoolVar(&opts.art, "art", true, "draw truecolor cookie art in the terminal front end")
	flag.Parse()
	return opts
}

func printVersion() {
	fmt.Printf("Cookie Tycoon %s (%s) %s\n", version, commit, date)
}

// setupLogging installs the default slog handler. Either front end may end
// up owning the terminal, so logs go to a file unless asked otherwise.
func setupLogging(opts options) (io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", opts.logLevel, err)
	}
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	path := opts.logFile
	if path == "" {
		path = filepath.Join(os.TempDir(), "cookie-tycoon.log")
	}
	if path != "-" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

func openPrefs() prefs.Store {
	path, err := prefs.DefaultPath()
	if err != nil {
		slog.Warn("no config dir, preferences will not persist", "err", err)
		return prefs.NewMemory()
	}
	return prefs.NewFileStore(path)
}

// buildOrchestrator loads config and wires the default screens.
func buildOrchestrator(opts options, store prefs.Store, snd audio.Service) (*engine.Orchestrator, error) {
	cfg, err := config.Load(opts.configPath, slog.Default())
	if err != nil {
		slog.Warn("config unreadable, using defaults", "err", err)
	}
	saved, err := store.Load()
	if err != nil {
		slog.Warn("preferences unreadable, starting fresh", "err", err)
		saved = prefs.Defaults()
	}
	snd.SetVolume(saved.Volume)

	cat := catalog.Default()
	rng := game.SeededRNG(opts.seed)
	econ := game.NewEconomy(cfg, cat)
	o, err := engine.New(engine.Options{
		Config:   cfg,
		Catalog:  cat,
		Factory:  screens.NewFactory(econ, rng, store, nil),
		Audio:    snd,
		Prefs:    store,
		Log:      slog.Default(),
		RNG:      rng,
		Username: saved.Username,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("cookie tycoon starting", "version", version, "seed", opts.seed, "run_id", o.RunID())
	return o, nil
}
