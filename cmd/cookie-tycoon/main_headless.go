//go:build !cgo

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/ui"
)

// Without cgo there is no raylib window, so the terminal front end is the
// only one.
func main() {
	opts := parseFlags()
	if opts.showVersion {
		printVersion()
		return
	}
	closer, err := setupLogging(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	o, err := buildOrchestrator(opts, openPrefs(), audio.NewNop())
	if err == nil {
		err = ui.NewApp(o, ui.AppConfig{Log: slog.Default(), Art: opts.art}).Run()
	}
	closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
