package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	sberrors "github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/render/sink"
	"github.com/matzehuels/sketchboard/pkg/replay"
)

const (
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveWriteWait  = 10 * time.Second
)

// Client messages on /live.
const (
	liveLoad   = "load"   // replace the document
	liveStep   = "step"   // apply one replay step
	liveExport = "export" // return the document with its current viewport
	liveDrop   = "drop"   // create an item at a canvas position
)

type liveMessage struct {
	Type     string          `json:"type"`
	Document json.RawMessage `json:"document,omitempty"`
	Step     json.RawMessage `json:"step,omitempty"`
	Readonly bool            `json:"readonly,omitempty"`
	Width    float64         `json:"width,omitempty"`
	Height   float64         `json:"height,omitempty"`

	// drop
	ItemType string  `json:"item_type,omitempty"`
	Key      string  `json:"key,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// liveFrame is a server message. Every accepted message is answered with a
// "frame" carrying the redrawn scene, or with an "error".
type liveFrame struct {
	Type      string          `json:"type"`
	Session   string          `json:"session,omitempty"`
	Seq       int             `json:"seq"`
	Mode      string          `json:"mode,omitempty"`
	Selection []string        `json:"selection,omitempty"`
	Hover     string          `json:"hover,omitempty"`
	Scale     float64         `json:"scale,omitempty"`
	Offset    *geom.Point     `json:"offset,omitempty"`
	SVG       string          `json:"svg,omitempty"`
	Document  json.RawMessage `json:"document,omitempty"`
	Error     string          `json:"error,omitempty"`
	Code      string          `json:"code,omitempty"`
}

// liveHub tracks open connections so shutdown can close them; hijacked
// connections are not closed by http.Server.Shutdown.
type liveHub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newLiveHub() *liveHub {
	return &liveHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *liveHub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *liveHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

func (h *liveHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	deadline := time.Now().Add(liveWriteWait)
	for c := range h.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
		_ = c.Close()
	}
}

// liveSession is one controller driven by one connection.
type liveSession struct {
	id     string
	server *Server
	logger *log.Logger

	doc           *document.Document
	ctrl          *editor.Controller
	width, height float64
	seq           int
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.live.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		s.logger.Warn("Live upgrade failed", "error", err)
		return
	}
	s.live.add(conn)
	defer func() {
		s.live.remove(conn)
		conn.Close()
	}()

	sess := &liveSession{
		id:     uuid.NewString(),
		server: s,
		width:  s.cfg.Viewport.Width,
		height: s.cfg.Viewport.Height,
	}
	sess.logger = s.logger.With("session", sess.id)
	sess.load(&document.Document{Viewport: document.Viewport{Scale: 1}}, false)
	sess.logger.Info("Live session started", "remote", r.RemoteAddr)

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, done)

	if err := conn.WriteJSON(liveFrame{Type: "hello", Session: sess.id}); err != nil {
		return
	}
	for {
		var msg liveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var (
				syntax *json.SyntaxError
				typ    *json.UnmarshalTypeError
			)
			if errors.As(err, &syntax) || errors.As(err, &typ) {
				_ = conn.WriteJSON(errorFrame(sberrors.Wrap(sberrors.ErrCodeInvalidInput, err, "decode message")))
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.logger.Warn("Live session read failed", "error", err)
			}
			break
		}
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(sess.handle(msg)); err != nil {
			sess.logger.Warn("Live session write failed", "error", err)
			break
		}
	}
	sess.logger.Info("Live session ended", "messages", sess.seq)
}

func pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	t := time.NewTicker(livePingPeriod)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}

func (l *liveSession) handle(msg liveMessage) liveFrame {
	l.seq++
	if msg.Width > 0 && msg.Height > 0 {
		l.width, l.height = msg.Width, msg.Height
	}

	switch msg.Type {
	case liveLoad:
		doc, err := document.Read(bytes.NewReader(msg.Document))
		if err != nil {
			return l.fail(err)
		}
		l.load(doc, msg.Readonly)
		l.logger.Debug("Loaded document", "items", len(doc.Items))
	case liveStep:
		var st replay.Step
		if err := yaml.Unmarshal(msg.Step, &st); err != nil {
			return l.fail(sberrors.Wrap(sberrors.ErrCodeInvalidScript, err, "decode step"))
		}
		if err := replay.Apply(l.ctrl, st, l.width, l.height); err != nil {
			return l.fail(sberrors.Wrap(sberrors.ErrCodeInvalidScript, err, "%s", st.Kind))
		}
		if err := replay.Verify(l.ctrl, st.Expect); err != nil {
			return l.fail(err)
		}
	case liveDrop:
		if err := l.drop(msg); err != nil {
			return l.fail(err)
		}
	case liveExport:
		l.doc.SyncViewport(l.ctrl)
		var buf bytes.Buffer
		if err := document.Write(l.doc, &buf); err != nil {
			return l.fail(err)
		}
		f := l.frame()
		f.Document = json.RawMessage(bytes.TrimSpace(buf.Bytes()))
		return f
	default:
		return l.fail(sberrors.New(sberrors.ErrCodeUnsupported, "unknown message type %q", msg.Type))
	}
	return l.frame()
}

func (l *liveSession) load(doc *document.Document, readonly bool) {
	l.doc = doc
	l.ctrl = doc.Controller(
		editor.WithSizes(l.server.cfg.Sizes()),
		editor.WithReadonly(readonly),
		editor.WithLogger(l.logger),
	)
}

// drop appends an item placed by the controller at the message's canvas
// position. A missing key gets a fresh uuid.
func (l *liveSession) drop(msg liveMessage) error {
	if l.ctrl.Readonly() {
		return sberrors.New(sberrors.ErrCodeInvalidInput, "session is read-only")
	}
	key := msg.Key
	if key == "" {
		key = uuid.NewString()
	}
	if err := sberrors.ValidateKey(key); err != nil {
		return err
	}
	if l.ctrl.Item(key) != nil {
		return sberrors.New(sberrors.ErrCodeDuplicateKey, "duplicate item key %q", key)
	}
	r := l.ctrl.Placement(msg.ItemType, msg.X, msg.Y)
	l.doc.Items = append(l.doc.Items, editor.Item{
		Key: key, X: r.X, Y: r.Y, W: r.W, H: r.H, Type: msg.ItemType,
	})
	l.ctrl.SetItems(l.doc.Items)
	l.logger.Debug("Dropped item", "key", key, "type", msg.ItemType, "x", r.X, "y", r.Y)
	return nil
}

func (l *liveSession) frame() liveFrame {
	off := l.ctrl.Offset()
	scene := sink.SceneOf(l.ctrl, l.doc.Connections, l.width, l.height)
	svg := sink.RenderSVG(scene,
		sink.WithFontSize(l.server.cfg.Text.FontSize),
		sink.WithTextOptions(l.server.cfg.TextOptions()...),
	)
	return liveFrame{
		Type:      "frame",
		Seq:       l.seq,
		Mode:      l.ctrl.Mode().String(),
		Selection: l.ctrl.Selection(),
		Hover:     l.ctrl.Hover(),
		Scale:     l.ctrl.Scale(),
		Offset:    &off,
		SVG:       string(svg),
	}
}

func (l *liveSession) fail(err error) liveFrame {
	l.logger.Debug("Live message rejected", "seq", l.seq, "error", err)
	f := errorFrame(err)
	f.Seq = l.seq
	return f
}

func errorFrame(err error) liveFrame {
	return liveFrame{Type: "error", Error: sberrors.UserMessage(err), Code: string(sberrors.GetCode(err))}
}
