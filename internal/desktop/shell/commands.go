package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"webdesktop/internal/desktop/localstore"
	"webdesktop/internal/desktop/shortcuts"
	"webdesktop/internal/desktop/windows"
	"webdesktop/internal/domain/models"

	"github.com/dustin/go-humanize"
)

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

func (s *Shell) commandTable() map[string]command {
	return map[string]command{
		"login":    {usage: "login <user> <password>", minArgs: 2, run: s.cmdLogin},
		"register": {usage: "register <user> <password>", minArgs: 2, run: s.cmdRegister},
		"logout":   {usage: "logout", run: s.cmdLogout},
		"whoami":   {usage: "whoami", run: s.cmdWhoami},

		"open":    {usage: "open <window>", minArgs: 1, run: s.windowCmd("open", s.windows.Open)},
		"close":   {usage: "close <window>", minArgs: 1, run: s.windowCmd("close", s.windows.Close)},
		"focus":   {usage: "focus <window>", minArgs: 1, run: s.windowCmd("focus", s.windows.Focus)},
		"min":     {usage: "min <window>", minArgs: 1, run: s.windowCmd("minimize", s.windows.Minimize)},
		"restore": {usage: "restore <window>", minArgs: 1, run: s.windowCmd("restore", s.windows.Restore)},
		"max":     {usage: "max <window>", minArgs: 1, run: s.windowCmd("maximize", s.windows.ToggleMaximize)},
		"drag":    {usage: "drag <window> x0 y0 x1 y1 [x y ...]", minArgs: 5, run: s.cmdDrag},
		"resize":  {usage: "resize <window> x0 y0 x1 y1 [x y ...]", minArgs: 5, run: s.cmdResize},
		"windows": {usage: "windows", run: s.cmdWindows},

		"ls":     {usage: "ls", run: s.cmdList},
		"new":    {usage: "new <name> [icon] [none|window|url|app] [param]", minArgs: 1, run: s.cmdNew},
		"rename": {usage: "rename <key> <name>", minArgs: 1, run: s.cmdRename},
		"icon":   {usage: "icon <key> <icon>", minArgs: 2, run: s.cmdIcon},
		"mv":     {usage: "mv <key> <x> <y>", minArgs: 3, run: s.cmdMove},
		"rm":     {usage: "rm <key>", minArgs: 1, run: s.cmdRemove},
		"run":    {usage: "run <key>", minArgs: 1, run: s.cmdRun},

		"doc":   {usage: "doc | doc save <text>", run: s.cmdDoc},
		"clock": {usage: "clock", run: s.cmdClock},
		"help":  {usage: "help", run: s.cmdHelp},
		"quit":  {usage: "quit", run: func(context.Context, []string) error { return errQuit }},
	}
}

func (s *Shell) cmdLogin(ctx context.Context, args []string) error {
	if err := s.session.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	id, _ := s.session.Identity()
	s.console.Printf("Logged in as %s\n", id.Username)
	return nil
}

func (s *Shell) cmdRegister(ctx context.Context, args []string) error {
	id, err := s.session.Register(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	s.console.Printf("Registered %s (id %d), you can log in now\n", args[0], id)
	return nil
}

func (s *Shell) cmdLogout(context.Context, []string) error {
	s.session.Logout()
	s.console.Printf("Logged out\n")
	return nil
}

func (s *Shell) cmdWhoami(context.Context, []string) error {
	id, ok := s.session.Identity()
	if !ok {
		s.console.Printf("Not logged in\n")
		return nil
	}
	s.console.Printf("%s (id %d)\n", id.Username, id.ID)
	return nil
}

func (s *Shell) windowCmd(verb string, op func(id string) bool) func(context.Context, []string) error {
	return func(_ context.Context, args []string) error {
		if !op(args[0]) {
			s.console.Notify(fmt.Sprintf("Cannot %s %q", verb, args[0]))
		}
		return nil
	}
}

// parsePoints reads "x0 y0 x1 y1 ..." into pointer positions.
func parsePoints(args []string) ([]windows.Point, error) {
	if len(args)%2 != 0 || len(args) < 4 {
		return nil, fmt.Errorf("%w: expected at least two x y pairs", models.ErrInvalidData)
	}
	points := make([]windows.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, errX := strconv.Atoi(args[i])
		y, errY := strconv.Atoi(args[i+1])
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: bad coordinates %q %q", models.ErrInvalidData, args[i], args[i+1])
		}
		points = append(points, windows.Point{X: x, Y: y})
	}
	return points, nil
}

func (s *Shell) cmdDrag(_ context.Context, args []string) error {
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	if !s.windows.BeginDrag(args[0], points[0]) {
		s.console.Notify(fmt.Sprintf("Cannot drag %q", args[0]))
		return nil
	}
	for _, p := range points[1:] {
		s.windows.DragTo(p)
	}
	return s.windows.EndDrag()
}

func (s *Shell) cmdResize(_ context.Context, args []string) error {
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	if !s.windows.BeginResize(args[0], points[0]) {
		s.console.Notify(fmt.Sprintf("Cannot resize %q", args[0]))
		return nil
	}
	for _, p := range points[1:] {
		s.windows.ResizeTo(p)
	}
	return s.windows.EndResize()
}

func (s *Shell) cmdWindows(context.Context, []string) error {
	for _, w := range s.windows.Windows() {
		state := "closed"
		switch {
		case w.Minimized:
			state = "minimized"
		case w.Maximized && w.Visible:
			state = "maximized"
		case w.Visible:
			state = "open"
		}
		s.console.Printf("%-16s %-10s z=%-4d %dx%d at %d,%d\n",
			w.ID, state, w.Z, w.Size.Width, w.Size.Height, w.Position.X, w.Position.Y)
	}

	items := s.windows.Taskbar()
	labels := make([]string, 0, len(items))
	for _, it := range items {
		label := it.Title
		if it.Active {
			label = "*" + label
		}
		if it.Minimized {
			label = "(" + label + ")"
		}
		labels = append(labels, label)
	}
	s.console.Printf("taskbar: [%s] %s\n", strings.Join(labels, " | "), s.now().Format(clockLayout))
	return nil
}

func (s *Shell) cmdList(context.Context, []string) error {
	for _, sc := range s.shortcuts.Shortcuts() {
		marker := " "
		if sc.Default {
			marker = "*"
		}
		s.console.Printf("%s %-38s %-14q %-20s %4d,%-4d %s\n",
			marker, sc.Key, sc.Name, sc.Icon, sc.Position.X, sc.Position.Y, sc.Action)
	}
	return nil
}

func (s *Shell) cmdNew(ctx context.Context, args []string) error {
	name := args[0]
	icon := argAt(args, 1)
	action, err := shortcuts.ParseAction(argAt(args, 2), argAt(args, 3))
	if err != nil {
		return err
	}

	sc, err := s.shortcuts.Create(ctx, name, icon, action)
	if err != nil {
		return err
	}
	s.console.Printf("Created %s (%s)\n", sc.Name, sc.Key)
	return nil
}

func (s *Shell) cmdRename(ctx context.Context, args []string) error {
	return s.shortcuts.Rename(ctx, args[0], strings.Join(args[1:], " "))
}

func (s *Shell) cmdIcon(ctx context.Context, args []string) error {
	return s.shortcuts.ChangeIcon(ctx, args[0], args[1])
}

func (s *Shell) cmdMove(_ context.Context, args []string) error {
	x, errX := strconv.Atoi(args[1])
	y, errY := strconv.Atoi(args[2])
	if errX != nil || errY != nil {
		return fmt.Errorf("%w: bad coordinates %q %q", models.ErrInvalidData, args[1], args[2])
	}
	return s.shortcuts.Move(args[0], shortcuts.Point{X: x, Y: y})
}

func (s *Shell) cmdRemove(ctx context.Context, args []string) error {
	if err := s.shortcuts.Remove(ctx, args[0]); err != nil {
		return err
	}
	s.console.Printf("Removed %s\n", args[0])
	return nil
}

func (s *Shell) cmdRun(_ context.Context, args []string) error {
	return s.shortcuts.Activate(args[0])
}

func (s *Shell) cmdDoc(_ context.Context, args []string) error {
	if len(args) > 0 && strings.EqualFold(args[0], "save") {
		text := strings.Join(args[1:], " ")
		if err := s.store.Set(localstore.KeyDocumentContent, text); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		s.console.Printf("Document saved (%s)\n", humanize.Bytes(uint64(len(text))))
		return nil
	}

	text, ok := s.store.Get(localstore.KeyDocumentContent)
	if !ok || text == "" {
		s.console.Printf("(empty document)\n")
		return nil
	}
	s.console.Printf("%s\n", text)
	return nil
}

func (s *Shell) cmdClock(context.Context, []string) error {
	s.console.Printf("%s\n", s.now().Format(clockLayout))
	return nil
}

func (s *Shell) cmdHelp(context.Context, []string) error {
	s.console.Printf("%s", s.helpText())
	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
