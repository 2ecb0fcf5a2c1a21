package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/config"
	"github.com/dmitrijs2005/docconvert/internal/filex"
	"github.com/dmitrijs2005/docconvert/internal/logging"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/preview"
	"github.com/dmitrijs2005/docconvert/internal/session"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  *session.Controller
	boundary *transfer.Boundary
	previews *preview.Registry
	editor   preview.Editor

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// Option customizes an App.
type Option func(a *App)

// WithInput replaces os.Stdin as the command source.
func WithInput(r io.Reader) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(r)
		a.interactive = false
	}
}

// WithOutput replaces os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithEditor replaces the external $EDITOR integration.
func WithEditor(e preview.Editor) Option {
	return func(a *App) {
		a.editor = e
	}
}

func NewApp(cfg *config.Config, logger logging.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	outDir, err := filex.EnsureDir(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("preparing output directory: %w", err)
	}

	a := &App{
		config:      cfg,
		logger:      logger,
		session:     session.NewController(logger),
		boundary:    transfer.New(outDir, logger, transfer.WithOverwrite(cfg.Overwrite)),
		previews:    preview.NewRegistry(),
		editor:      NewExternalEditor(cfg.Editor),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Run prints the banner and blocks in the REPL until the user exits or the
// input ends.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "session started", "output_dir", a.boundary.Dir(), "interactive", a.interactive)

	if a.interactive {
		a.println("Welcome to DocConvert (type 'help' for commands)")
		a.printModeBanner(a.Mode())
	}

	runREPL(ctx, a, a.prompt, a.reader, a.out)

	a.logger.Info(ctx, "session finished")
}

// Mode returns the active conversion direction.
func (a *App) Mode() models.ConversionMode {
	return a.session.Mode()
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}

	s := string(a.Mode())
	if st := a.session.Snapshot(); st.Descriptor != nil {
		s += " " + st.Descriptor.Name
	} else if !st.Payload.IsEmpty() {
		s += " *"
	}
	return fmt.Sprintf("dc (%s)> ", s)
}

// opContext bounds a single operation: Ctrl-C cancels it and, when
// configured, so does the read timeout.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	if a.config.ReadTimeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.ReadTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, "[success] "+msg)
}

func (a *App) failure(msg string) {
	fmt.Fprintln(a.out, "[error] "+msg)
}

func (a *App) printModeBanner(m models.ConversionMode) {
	a.println(m.Title())
	a.println(m.Hint())
}

// requireMode reports a wrong-mode notification and returns false when the
// session is not in want.
func (a *App) requireMode(cmd string, want models.ConversionMode) bool {
	if a.Mode() == want {
		return true
	}
	a.failure(fmt.Sprintf("%s is only available in %s mode (type 'mode %s')", cmd, want, want))
	return false
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
