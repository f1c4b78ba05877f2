package pager

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/catter/internal/config"
	"github.com/kk-code-lab/catter/internal/document"
	statepkg "github.com/kk-code-lab/catter/internal/state"
	inputui "github.com/kk-code-lab/catter/internal/ui/input"
	renderui "github.com/kk-code-lab/catter/internal/ui/render"
	"go.uber.org/zap"
)

var (
	// ErrTerminalSize is returned when the terminal does not report a usable
	// size. Without one no page can be laid out.
	ErrTerminalSize = errors.New("terminal size unavailable")
	// ErrScreenClosed is returned when the terminal stops delivering events.
	ErrScreenClosed = errors.New("terminal event stream closed")
)

var newScreen = tcell.NewScreen

type eventSource interface {
	PollEvent() tcell.Event
}

// PreviewPager runs one interactive viewing session on the alternate screen.
type PreviewPager struct {
	doc      document.Document
	cfg      config.ViewerConfig
	log      *zap.Logger
	screen   tcell.Screen
	events   eventSource
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	view     *statepkg.ViewportState
}

func NewPreviewPager(doc document.Document, cfg config.ViewerConfig, log *zap.Logger) *PreviewPager {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreviewPager{
		doc:   doc,
		cfg:   cfg,
		log:   log,
		input: inputui.NewInputHandler(),
	}
}

// Run claims the terminal (raw mode and alternate screen), pages through the
// document until the user quits, and restores the terminal on every return
// path, panics included.
func (p *PreviewPager) Run() error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	p.attach(screen, screen)

	p.log.Debug("pager started", zap.Int("lines", p.doc.LineCount()), zap.Bool("start_at_end", p.cfg.StartAtEnd))
	err = p.loop()
	if err != nil {
		p.log.Error("pager stopped", zap.Error(err))
		return err
	}
	p.log.Debug("pager exited", zap.Int("offset", p.view.Offset))
	return nil
}

func (p *PreviewPager) attach(screen tcell.Screen, events eventSource) {
	p.screen = screen
	p.events = events
	p.renderer = renderui.NewRenderer(screen, p.cfg.TabWidth)
}

func (p *PreviewPager) loop() error {
	height, err := p.terminalHeight()
	if err != nil {
		return err
	}
	offset := statepkg.InitialOffset(p.doc.LineCount(), height, p.cfg.StartAtEnd)
	p.view = statepkg.NewViewportState(offset)

	for p.view.Session == statepkg.Running {
		if err := p.render(); err != nil {
			return err
		}
		if err := p.awaitRedraw(); err != nil {
			return err
		}
	}
	return nil
}

// render queries the terminal size and lays the page out from scratch. The
// size is never cached between frames: this query is how resizes that
// happened while waiting for input are picked up.
func (p *PreviewPager) render() error {
	height, err := p.terminalHeight()
	if err != nil {
		return err
	}
	p.view.Layout(p.doc.LineCount(), height)
	p.renderer.Render(p.doc, p.view)
	return nil
}

// awaitRedraw blocks until an event changes the screen or ends the session.
// Ignored keys keep waiting without drawing anything.
func (p *PreviewPager) awaitRedraw() error {
	for {
		ev := p.events.PollEvent()
		if ev == nil {
			return ErrScreenClosed
		}

		action, ok := p.input.ProcessEvent(ev)
		if !ok {
			continue
		}
		if _, resized := action.(statepkg.ResizeAction); resized {
			p.screen.Sync()
		}

		if redraw := statepkg.Reduce(p.view, action); redraw || p.view.Session == statepkg.Exiting {
			return nil
		}
	}
}

func (p *PreviewPager) terminalHeight() (int, error) {
	width, height := p.screen.Size()
	if width <= 0 || height <= 0 {
		p.log.Error("terminal size query failed", zap.Int("width", width), zap.Int("height", height))
		return 0, ErrTerminalSize
	}
	return height, nil
}
