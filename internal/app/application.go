package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kk-code-lab/catter/internal/config"
	"github.com/kk-code-lab/catter/internal/document"
	pagerui "github.com/kk-code-lab/catter/internal/ui/pager"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrTerminalSize is returned when output goes to a terminal whose height
// cannot be read, so no display mode can be chosen.
var ErrTerminalSize = errors.New("cannot determine terminal height")

var terminalHeight = func() (int, error) {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	return height, err
}

var runPager = func(doc document.Document, cfg config.ViewerConfig, log *zap.Logger) error {
	return pagerui.NewPreviewPager(doc, cfg, log).Run()
}

// Application previews a list of files according to one ViewerConfig.
type Application struct {
	cfg    config.ViewerConfig
	log    *zap.Logger
	stdout io.Writer
}

func NewApplication(cfg config.ViewerConfig, log *zap.Logger, stdout io.Writer) *Application {
	if log == nil {
		log = zap.NewNop()
	}
	return &Application{cfg: cfg, log: log, stdout: stdout}
}

// Run aggregates paths and presents the result.
func (app *Application) Run(paths []string) error {
	doc := document.Aggregate(paths, app.log)

	height := 0
	if !app.cfg.LineCountOnly && !app.cfg.ForceInline {
		h, err := terminalHeight()
		if err != nil {
			app.log.Error("terminal size query failed", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrTerminalSize, err)
		}
		height = h
	}

	mode := SelectMode(doc, app.cfg, height)
	app.log.Debug("display mode selected",
		zap.Stringer("mode", mode),
		zap.Int("lines", doc.LineCount()),
		zap.Int("terminal_height", height),
	)

	switch mode {
	case LineCountOnly:
		_, err := fmt.Fprintf(app.stdout, "%d\n", doc.LineCount())
		return err
	case PlainPrint:
		return writeText(app.stdout, doc.Text())
	default:
		return runPager(doc, app.cfg, app.log)
	}
}

func writeText(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
