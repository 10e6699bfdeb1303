// Package tui hosts the editor in a terminal.
//
// Each terminal cell stands for CellWidth x CellHeight virtual pixels at
// scale 1. Mouse events are reported at the center of their cell, hit-tested
// against the drawn items and forwarded to the controller. Terminals report
// no key releases, so space toggles the pan modifier instead of holding it.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// Cell size in virtual pixels.
const (
	CellWidth  = 10
	CellHeight = 20
)

// Option configures a [Model].
type Option func(*Model)

// WithLogger sets the logger for save and copy events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSizes sets the item size limits.
func WithSizes(p editor.SizeProvider) Option {
	return func(m *Model) { m.sizes = p }
}

// WithReadonly starts the editor in read-only mode.
func WithReadonly(readonly bool) Option {
	return func(m *Model) { m.readonly = readonly }
}

// WithTextOptions sets label layout options.
func WithTextOptions(opts ...textlayout.Option) Option {
	return func(m *Model) { m.textOpts = opts }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.clip = write }
}

// WithSaver replaces the function writing the document on "w".
func WithSaver(save func(*document.Document, string) error) Option {
	return func(m *Model) { m.save = save }
}

// Model is the bubbletea model of the terminal editor.
type Model struct {
	doc  *document.Document
	path string
	ctrl *editor.Controller

	cols, rows int
	status     string
	keys       keyMap
	help       help.Model
	showHelp   bool

	logger   *log.Logger
	sizes    editor.SizeProvider
	readonly bool
	textOpts []textlayout.Option
	measurer textlayout.CellMeasurer
	clip     func(string) error
	save     func(*document.Document, string) error
}

// New returns a model editing doc, saved to path on "w".
func New(doc *document.Document, path string, opts ...Option) Model {
	m := Model{
		doc:      doc,
		path:     path,
		logger:   log.New(io.Discard),
		measurer: textlayout.CellMeasurer{CellWidth: CellWidth},
		clip:     writeClipboard,
		save:     document.Export,
		keys:     defaultKeyMap,
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.ctrl = doc.Controller(
		editor.WithSizes(m.sizes),
		editor.WithReadonly(m.readonly),
		editor.WithLogger(m.logger),
		editor.WithSurface(m.measurer),
	)
	return m
}

// Controller returns the controller driven by the model.
func (m Model) Controller() *editor.Controller { return m.ctrl }

// Status returns the last status message.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		m.mouse(tea.MouseEvent(msg))
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Pan):
		if m.ctrl.SpaceDown() {
			m.ctrl.KeyUp(editor.KeyEvent{Code: editor.KeySpace})
			m.status = "pan off"
		} else {
			m.ctrl.KeyDown(editor.KeyEvent{Code: editor.KeySpace})
			m.status = "pan on"
		}
	case key.Matches(msg, k.Cancel):
		m.ctrl.Reset()
		m.status = ""
	case key.Matches(msg, k.ViewInit):
		m.ctrl.ViewInit()
	case key.Matches(msg, k.ViewFull):
		w, h := m.canvasSize()
		m.ctrl.ViewFull(float64(w*CellWidth), float64(h*CellHeight))
	case key.Matches(msg, k.Readonly):
		m.ctrl.SetReadonly(!m.ctrl.Readonly())
	case key.Matches(msg, k.Copy):
		m.status = m.copySelection()
	case key.Matches(msg, k.Write):
		m.status = m.write()
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) copySelection() string {
	sel := m.ctrl.Selection()
	if len(sel) == 0 {
		return "nothing selected"
	}
	if err := m.clip(strings.Join(sel, "\n")); err != nil {
		m.logger.Error("Copy failed", "error", err)
		return "copy failed: " + err.Error()
	}
	m.logger.Debug("Copied selection", "keys", len(sel))
	return "copied " + plural(len(sel), "key")
}

func (m Model) write() string {
	if m.path == "" {
		return "no file to write"
	}
	m.doc.SyncViewport(m.ctrl)
	if err := m.save(m.doc, m.path); err != nil {
		m.logger.Error("Write failed", "path", m.path, "error", err)
		return "write failed: " + err.Error()
	}
	m.logger.Info("Wrote document", "path", m.path, "items", len(m.doc.Items))
	return "wrote " + m.path
}

func (m Model) mouse(ev tea.MouseEvent) {
	px := float64(ev.X*CellWidth + CellWidth/2)
	py := float64(ev.Y*CellHeight + CellHeight/2)

	if ev.IsWheel() {
		m.wheel(ev, px, py)
		return
	}

	pe := editor.PointerEvent{
		X: px, Y: py, OffsetX: px, OffsetY: py,
		Shift: ev.Shift, Alt: ev.Alt, Ctrl: ev.Ctrl,
		Target: m.hitAt(ev.X, ev.Y),
	}
	switch ev.Action {
	case tea.MouseActionPress:
		b, ok := button(ev.Button)
		if !ok {
			return
		}
		pe.Button = b
		m.ctrl.PointerDown(pe)
	case tea.MouseActionMotion:
		pe.Button, _ = button(ev.Button)
		m.ctrl.PointerMove(pe)
	case tea.MouseActionRelease:
		pe.Button, _ = button(ev.Button)
		m.ctrl.PointerUp(pe)
	}
}

// wheel pans by one cell per notch, or zooms by 10% with ctrl held.
func (m Model) wheel(ev tea.MouseEvent, px, py float64) {
	var dx, dy float64
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		dy = -CellHeight
	case tea.MouseButtonWheelDown:
		dy = CellHeight
	case tea.MouseButtonWheelLeft:
		dx = -CellWidth
	case tea.MouseButtonWheelRight:
		dx = CellWidth
	}
	if ev.Ctrl {
		w, h := m.canvasSize()
		m.ctrl.Wheel(editor.WheelEvent{
			DeltaY:  dy / CellHeight * 100,
			Zoom:    true,
			OffsetX: px,
			OffsetY: py,
			Width:   float64(w * CellWidth),
			Height:  float64(h * CellHeight),
		})
		return
	}
	m.ctrl.Wheel(editor.WheelEvent{DeltaX: dx, DeltaY: dy})
}

func button(b tea.MouseButton) (editor.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return editor.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return editor.ButtonMiddle, true
	case tea.MouseButtonRight:
		return editor.ButtonRight, true
	}
	return editor.ButtonLeft, false
}

// canvasSize is the drawing area in cells, without the scrollbars and the
// status line.
func (m Model) canvasSize() (cols, rows int) {
	return max(0, m.cols-1), max(0, m.rows-2)
}

// Run starts the terminal editor and blocks until it quits.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
