package shortcuts

import (
	"encoding/json"
	"fmt"
	"strings"
	"webdesktop/internal/domain/models"
)

// Action is what double-clicking a shortcut does. Implementations: OpenWindow, OpenURL,
// OpenApp, None.
type Action interface {
	isAction()
	String() string
}

type OpenWindow struct {
	WindowID string
}

type OpenURL struct {
	URL string
}

// OpenApp is informational only: nothing can be launched from the desktop.
type OpenApp struct {
	Path string
}

type None struct{}

func (OpenWindow) isAction() {}
func (OpenURL) isAction()    {}
func (OpenApp) isAction()    {}
func (None) isAction()       {}

func (a OpenWindow) String() string { return "open-window " + a.WindowID }
func (a OpenURL) String() string    { return "open-url " + a.URL }
func (a OpenApp) String() string    { return "open-app " + a.Path }
func (None) String() string         { return "none" }

// теги в поле action на сервере
const (
	tagOpenWindow = "open-window"
	tagOpenURL    = "open-url"
	tagOpenApp    = "open-app"
)

type actionParams struct {
	WindowID string `json:"window_id,omitempty"`
	URL      string `json:"url,omitempty"`
	Path     string `json:"path,omitempty"`
}

func validateAction(a Action) error {
	switch a := a.(type) {
	case nil, None:
		return nil
	case OpenWindow:
		if strings.TrimSpace(a.WindowID) == "" {
			return fmt.Errorf("%w: window id is required", models.ErrInvalidData)
		}
	case OpenURL:
		if strings.TrimSpace(a.URL) == "" {
			return fmt.Errorf("%w: url is required", models.ErrInvalidData)
		}
	case OpenApp:
		if strings.TrimSpace(a.Path) == "" {
			return fmt.Errorf("%w: application path is required", models.ErrInvalidData)
		}
	default:
		return fmt.Errorf("%w: unsupported action %T", models.ErrInvalidData, a)
	}
	return nil
}

// EncodeAction splits an action into the server's tag and opaque params.
func EncodeAction(a Action) (string, []byte, error) {
	var (
		tag    string
		params actionParams
	)
	switch a := a.(type) {
	case nil, None:
		return "", nil, nil
	case OpenWindow:
		tag, params.WindowID = tagOpenWindow, a.WindowID
	case OpenURL:
		tag, params.URL = tagOpenURL, a.URL
	case OpenApp:
		tag, params.Path = tagOpenApp, a.Path
	default:
		return "", nil, fmt.Errorf("%w: unsupported action %T", models.ErrInvalidData, a)
	}

	data, err := json.Marshal(params)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode action params: %w", err)
	}
	return tag, data, nil
}

// DecodeAction is the inverse of EncodeAction. Anything missing or unreadable is None.
func DecodeAction(tag string, params []byte) Action {
	if tag == "" {
		return None{}
	}

	var p actionParams
	if len(params) == 0 || json.Unmarshal(params, &p) != nil {
		return None{}
	}

	switch tag {
	case tagOpenWindow:
		if p.WindowID != "" {
			return OpenWindow{WindowID: p.WindowID}
		}
	case tagOpenURL:
		if p.URL != "" {
			return OpenURL{URL: p.URL}
		}
	case tagOpenApp:
		if p.Path != "" {
			return OpenApp{Path: p.Path}
		}
	}
	return None{}
}

// ParseAction reads the shell form: "window <id>", "url <url>", "app <path>" or "none".
func ParseAction(kind, param string) (Action, error) {
	switch strings.ToLower(kind) {
	case "", "none":
		return None{}, nil
	case "window", tagOpenWindow:
		return OpenWindow{WindowID: param}, nil
	case "url", tagOpenURL:
		return OpenURL{URL: param}, nil
	case "app", tagOpenApp:
		return OpenApp{Path: param}, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", models.ErrInvalidData, kind)
	}
}
