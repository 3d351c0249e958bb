package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const envBackendURL = "WEBDESKTOP_BACKEND_URL"

type WindowDecl struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DesktopConfig описывает клиентскую часть: бэкенд, окна и каталог иконок.
type DesktopConfig struct {
	BackendURL     string        `yaml:"backend_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	StatePath      string        `yaml:"state_path"`
	LogLevel       string        `yaml:"log_level"`
	Viewport       Viewport      `yaml:"viewport"`
	ZBase          int64         `yaml:"z_base"`
	SaveDelay      time.Duration `yaml:"save_delay"`
	Windows        []WindowDecl  `yaml:"windows"`
	Icons          []string      `yaml:"icons"`
}

func DefaultDesktopConfig() DesktopConfig {
	return DesktopConfig{
		BackendURL:     "http://localhost:3000",
		RequestTimeout: 10 * time.Second,
		StatePath:      "desktop-state.json",
		LogLevel:       "info",
		Viewport:       Viewport{Width: 1280, Height: 800},
		ZBase:          100,
		SaveDelay:      500 * time.Millisecond,
		Windows: []WindowDecl{
			{ID: "word-window", Title: "Documents", Width: 640, Height: 480},
			{ID: "explorer-window", Title: "This Computer", Width: 700, Height: 450},
			{ID: "chrome-window", Title: "Chrome", Width: 900, Height: 600},
			{ID: "vscode-window", Title: "VS Code", Width: 900, Height: 600},
			{ID: "spotify-window", Title: "Spotify", Width: 800, Height: 500},
		},
		Icons: []string{
			"img/documents.png",
			"img/computer.png",
			"img/chrome.png",
			"img/vscode.png",
			"img/spotify.png",
			"img/trash.png",
			"img/pasta.png",
			"img/file.png",
		},
	}
}

// LoadDesktopConfig reads the YAML file on top of the defaults. An empty path or a
// missing file yields the defaults. WEBDESKTOP_BACKEND_URL overrides the backend URL.
func LoadDesktopConfig(path string) (DesktopConfig, error) {
	cfg := DefaultDesktopConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return DesktopConfig{}, fmt.Errorf("failed to read desktop config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return DesktopConfig{}, fmt.Errorf("failed to parse desktop config: %w", err)
			}
		}
	}

	applyEnv(envBackendURL, &cfg.BackendURL)

	if err := cfg.Validate(); err != nil {
		return DesktopConfig{}, err
	}
	return cfg, nil
}

func (c DesktopConfig) Validate() error {
	if c.BackendURL == "" {
		return errors.New("backend_url is required")
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.SaveDelay < 0 {
		return fmt.Errorf("save_delay must not be negative, got %s", c.SaveDelay)
	}

	seen := make(map[string]struct{}, len(c.Windows))
	for _, w := range c.Windows {
		if w.ID == "" {
			return errors.New("window id is required")
		}
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("duplicate window id %q", w.ID)
		}
		seen[w.ID] = struct{}{}
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window %q: invalid size %dx%d", w.ID, w.Width, w.Height)
		}
	}
	return nil
}
