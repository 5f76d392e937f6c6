package interaction

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
)

const openTimeout = 10 * time.Second

// CommandOpener opens links with the platform open command run through a
// local gosh shell session.
type CommandOpener struct {
	command string
	mux     sync.Mutex
	service *gosh.Service
}

// NewCommandOpener returns an opener running command; an empty command
// selects the platform default.
func NewCommandOpener(command string) *CommandOpener {
	if command == "" {
		command = DefaultOpenCommand(runtime.GOOS)
	}
	return &CommandOpener{command: command}
}

// DefaultOpenCommand returns the command that opens a URL on goos.
func DefaultOpenCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	default:
		return "xdg-open"
	}
}

// Command returns the shell command line used to open URL.
func (o *CommandOpener) Command(URL string) string {
	return o.command + " " + shellQuote(URL)
}

// Open runs the open command for URL.
func (o *CommandOpener) Open(ctx context.Context, URL string) error {
	if URL == "" {
		return fmt.Errorf("url was empty")
	}
	session, err := o.session(ctx)
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	output, status, err := session.Run(ctx, o.Command(URL), runner.WithTimeout(int(openTimeout.Milliseconds())))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", URL, err)
	}
	if status != 0 {
		return fmt.Errorf("failed to open %s: exit status %d: %s", URL, status, strings.TrimSpace(output))
	}
	return nil
}

// Close releases the shell session.
func (o *CommandOpener) Close() error {
	o.mux.Lock()
	defer o.mux.Unlock()
	if o.service == nil {
		return nil
	}
	err := o.service.Close()
	o.service = nil
	return err
}

func (o *CommandOpener) session(ctx context.Context) (*gosh.Service, error) {
	o.mux.Lock()
	defer o.mux.Unlock()
	if o.service != nil {
		return o.service, nil
	}
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return nil, err
	}
	o.service = service
	return service, nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
