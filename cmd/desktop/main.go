package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"webdesktop/internal/config"
	"webdesktop/internal/desktop/client"
	"webdesktop/internal/desktop/localstore"
	"webdesktop/internal/desktop/session"
	"webdesktop/internal/desktop/shell"
	"webdesktop/internal/desktop/shortcuts"
	"webdesktop/internal/desktop/windows"
	"webdesktop/internal/logger"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "desktop.yaml", "path to the desktop YAML config")
	flag.Parse()

	cfg, err := config.LoadDesktopConfig(*configPath)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid desktop configuration")
	}

	log := logger.NewLoggerTo(os.Stderr, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("desktop stopped with error")
	}
}

func run(cfg config.DesktopConfig, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := localstore.OpenFileStore(cfg.StatePath, *log)
	if err != nil {
		return err
	}
	log.Debug().Str("path", store.Path()).Msg("device storage opened")

	api := client.NewClient(&http.Client{Timeout: cfg.RequestTimeout}, cfg.BackendURL, log)
	console := shell.NewConsole(os.Stdout, log)

	wm := windows.NewManager(windowsConfig(cfg), store, log)

	// хук ошибок фонового сохранения нужен до создания shell
	var sh *shell.Shell
	sm := shortcuts.NewManager(shortcuts.Config{
		Icons:     cfg.Icons,
		SaveDelay: cfg.SaveDelay,
		OnSaveError: func(key string, err error) {
			if sh != nil {
				sh.ReportSaveError(key, err)
			}
		},
	}, api, wm, console, console, log)

	sess := session.NewManager(api, sm, store, log)
	sess.OnChange(func(state session.State, id session.Identity) {
		log.Debug().Stringer("state", state).Str("username", id.Username).Msg("session changed")
	})

	sh = shell.New(shell.Deps{
		Windows:   wm,
		Shortcuts: sm,
		Session:   sess,
		Store:     store,
		Console:   console,
		Log:       log,
	})

	if err := api.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("backend", cfg.BackendURL).Msg("backend is not reachable yet")
	}

	sh.Start(ctx)
	return sh.Run(ctx, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}

func windowsConfig(cfg config.DesktopConfig) windows.Config {
	decls := make([]windows.Decl, 0, len(cfg.Windows))
	for _, w := range cfg.Windows {
		decls = append(decls, windows.Decl{
			ID:    w.ID,
			Title: w.Title,
			Size:  windows.Size{Width: w.Width, Height: w.Height},
		})
	}
	return windows.Config{
		Windows:  decls,
		Viewport: windows.Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
		ZBase:    cfg.ZBase,
	}
}
