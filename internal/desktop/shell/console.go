package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

const notificationHistory = 50

// Console is the output side of the shell. It is shared with the managers as their
// Notifier and Navigator, so writes from debounce timers do not interleave with command output.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	log     zerolog.Logger
	notes   []string
	visited []string
}

func NewConsole(out io.Writer, log *zerolog.Logger) *Console {
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}
	return &Console{out: out, log: l}
}

func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

// Notify shows a transient message to the user.
func (c *Console) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = append(c.notes, message)
	if len(c.notes) > notificationHistory {
		c.notes = c.notes[len(c.notes)-notificationHistory:]
	}
	fmt.Fprintf(c.out, "[!] %s\n", message)
}

// Navigate stands in for the browser: the URL is announced, not fetched.
func (c *Console) Navigate(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visited = append(c.visited, url)
	c.log.Info().Str("url", url).Msg("navigate")
	fmt.Fprintf(c.out, "-> %s\n", url)
}

func (c *Console) Notifications() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.notes...)
}

func (c *Console) Visited() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.visited...)
}
