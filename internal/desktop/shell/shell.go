// Package shell drives the desktop from text commands: one line is one user gesture
// (a click, a drag, a form submit). Failures become notifications.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
	"webdesktop/internal/desktop/localstore"
	"webdesktop/internal/desktop/session"
	"webdesktop/internal/desktop/shortcuts"
	"webdesktop/internal/desktop/windows"
	"webdesktop/internal/domain/models"

	"github.com/rs/zerolog"
)

const (
	prompt        = "> "
	clockLayout   = "15:04"
	maxLineLength = 64 * 1024
)

var errQuit = errors.New("quit")

type Shell struct {
	windows   *windows.Manager
	shortcuts *shortcuts.Manager
	session   *session.Manager
	store     localstore.Store
	console   *Console
	log       zerolog.Logger
	now       func() time.Time
	commands  map[string]command
}

type Deps struct {
	Windows   *windows.Manager
	Shortcuts *shortcuts.Manager
	Session   *session.Manager
	Store     localstore.Store
	Console   *Console
	Log       *zerolog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func New(d Deps) *Shell {
	l := zerolog.Nop()
	if d.Log != nil {
		l = *d.Log
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	s := &Shell{
		windows:   d.Windows,
		shortcuts: d.Shortcuts,
		session:   d.Session,
		store:     d.Store,
		console:   d.Console,
		log:       l,
		now:       now,
	}
	s.commands = s.commandTable()
	return s
}

// Start resumes the previous session if the stored token is still accepted.
func (s *Shell) Start(ctx context.Context) {
	if err := s.session.RestoreSession(ctx); err != nil {
		s.log.Debug().Err(err).Msg("session not restored")
		s.console.Notify("Your session has expired, please log in again")
	}
	if id, ok := s.session.Identity(); ok {
		s.console.Printf("Welcome back, %s\n", id.Username)
	} else {
		s.console.Printf("Type \"login <user> <password>\" or \"help\"\n")
	}
}

// Run reads commands from in until EOF, quit or ctx is done. Cancellation is noticed
// even while a read is blocked. Pending position saves are flushed before it returns.
func (s *Shell) Run(ctx context.Context, in io.Reader, interactive bool) error {
	defer s.shortcuts.Flush()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if interactive {
			s.console.Printf(prompt)
		}

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if s.Execute(ctx, line) {
				return nil
			}
		}
	}
}

// Execute runs one command line. It reports whether the shell should stop.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := s.commands[name]
	if !ok {
		s.console.Notify(fmt.Sprintf("Unknown command %q, type help", name))
		return false
	}
	if len(args) < cmd.minArgs {
		s.console.Notify("Usage: " + cmd.usage)
		return false
	}

	s.log.Debug().Str("command", name).Int("args", len(args)).Msg("execute")

	err := cmd.run(ctx, args)
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		s.Report(err)
	}
	return false
}

// Report shows err to the user. An authentication failure ends the session first.
func (s *Shell) Report(err error) {
	if s.session.HandleError(err) {
		s.console.Notify("Your session has expired, please log in again")
		return
	}
	s.console.Notify(describe(err))
}

// ReportSaveError is the hook for failed background position saves.
func (s *Shell) ReportSaveError(key string, err error) {
	s.log.Warn().Err(err).Str("shortcut", key).Msg("background save failed")
	if s.session.HandleError(err) {
		s.console.Notify("Your session has expired, please log in again")
		return
	}
	s.console.Notify(fmt.Sprintf("Could not save the position of %s: %s", key, describe(err)))
}

func describe(err error) string {
	var apiErr *models.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, models.ErrNetwork):
		return "The server is unreachable, try again later"
	default:
		return err.Error()
	}
}

func (s *Shell) helpText() string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-10s %s\n", name, s.commands[name].usage)
	}
	return b.String()
}
