//go:build cgo

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/gui"
	"github.com/appengine-ltd/cookie-tycoon/internal/ui"
)

func main() {
	opts := parseFlags()
	if opts.showVersion {
		printVersion()
		return
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	closer, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openPrefs()
	if opts.classic {
		o, err := buildOrchestrator(opts, store, audio.NewNop())
		if err != nil {
			return err
		}
		return ui.NewApp(o, ui.AppConfig{Log: slog.Default(), Art: opts.art}).Run()
	}

	snd := gui.NewSound(opts.assetDir, 1, slog.Default())
	o, err := buildOrchestrator(opts, store, snd)
	if err != nil {
		return err
	}
	app := gui.NewApp(o, snd, gui.AppConfig{
		AssetDir: opts.assetDir,
		Prefs:    store,
		Log:      slog.Default(),
		Classic: func() error {
			return ui.NewApp(o, ui.AppConfig{Log: slog.Default(), Art: opts.art}).Run()
		},
	})
	return app.Run()
}
