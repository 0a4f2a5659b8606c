package server

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	interrors "github.com/fieldwork-dev/fieldwork/internal/errors"
	"github.com/fieldwork-dev/fieldwork/pkg/event"
	"github.com/fieldwork-dev/fieldwork/pkg/form"
	"github.com/fieldwork-dev/fieldwork/pkg/middleware"
	"github.com/fieldwork-dev/fieldwork/pkg/toast"
)

// conn is one live connection. Each connection gets its own engine per
// registered form, so all field state is connection-local and events are
// handled on the single read goroutine. The only other writer is the
// success indicator's auto-hide timer, which flushes its patch itself.
type conn struct {
	server *Server
	ws     *websocket.Conn

	forms   map[string]*formInstance
	handler middleware.Handler

	// mu protects pending, handling and seq.
	mu       sync.Mutex
	pending  []Patch
	handling bool
	seq      uint64

	// writeMu serializes writes to the socket.
	writeMu sync.Mutex

	closed bool
}

// formInstance binds one engine to its event routing for this connection.
type formInstance struct {
	engine *form.Engine
	binder *event.Binder
}

// newConn builds per-connection engines for every registered form and the
// middleware chain around event handling.
func newConn(s *Server, ws *websocket.Conn) *conn {
	c := &conn{
		server: s,
		ws:     ws,
		forms:  make(map[string]*formInstance, len(s.specs)),
	}

	for _, name := range s.order {
		c.forms[name] = c.newFormInstance(s.specs[name])
	}

	c.handler = middleware.Chain(c.handleEvent, s.config.Middleware...)
	return c
}

// newFormInstance creates the engine, presenter and bindings for one form.
func (c *conn) newFormInstance(spec FormSpec) *formInstance {
	fields := make([]*form.Field, 0, len(spec.Fields))
	for _, fs := range spec.Fields {
		fields = append(fields, form.NewField(fs.Name, fs.Label, fs.Required))
	}

	presenter := &patchPresenter{conn: c, form: spec.Name, successText: spec.SuccessText}
	indicator := toast.New(spec.HideDelay)

	opts := []form.Option{
		form.WithIndicator(indicator),
		form.WithLogger(c.server.logger.With("form", spec.Name)),
	}
	if c.server.config.Observer != nil {
		opts = append(opts, form.WithObserver(c.server.config.Observer))
	}
	engine := form.New(spec.Name, fields, presenter, opts...)

	binder := event.NewBinder()
	binder.On("", event.TypeSubmit, event.PreventDefault(func(event.Event) {
		engine.Submit()
	}))
	for _, f := range fields {
		name := f.Name
		binder.On(name, event.TypeBlur, func(event.Event) {
			engine.HandleBlur(name)
		})
		binder.On(name, event.TypeInput, func(evt event.Event) {
			engine.HandleInput(name, evt.Value)
		})
	}

	return &formInstance{engine: engine, binder: binder}
}

// readLoop reads events until the connection closes.
func (c *conn) readLoop(ctx context.Context) {
	for {
		c.ws.SetReadDeadline(time.Now().Add(c.server.config.ReadTimeout))

		var evt event.Event
		if err := c.ws.ReadJSON(&evt); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.server.logger.Error("read error", "error", err)
			}
			return
		}

		c.dispatch(ctx, evt)
	}
}

// dispatch runs the event through the middleware chain and flushes the
// patches it produced as one frame.
func (c *conn) dispatch(ctx context.Context, evt event.Event) {
	c.mu.Lock()
	c.handling = true
	c.mu.Unlock()

	err := c.handler(ctx, evt)

	c.mu.Lock()
	c.handling = false
	c.mu.Unlock()

	c.flush()

	if err != nil {
		c.sendError(err)
	}
}

// handleEvent is the innermost handler: route the event to its form.
func (c *conn) handleEvent(_ context.Context, evt event.Event) error {
	inst, ok := c.forms[evt.Form]
	if !ok {
		return interrors.UnknownForm(evt.Form)
	}

	res := inst.binder.Dispatch(evt)
	if res.PreventDefault {
		c.queue(Patch{Op: OpPreventDefault, Form: evt.Form})
	}
	return nil
}

// queue appends a patch. Outside event handling (the auto-hide timer) the
// patch is flushed immediately.
func (c *conn) queue(p Patch) {
	c.mu.Lock()
	c.pending = append(c.pending, p)
	handling := c.handling
	c.mu.Unlock()

	if !handling {
		c.flush()
	}
}

// flush writes all pending patches as a single frame.
func (c *conn) flush() {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	patches := c.pending
	c.pending = nil
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.write(PatchFrame{Type: FrameTypePatches, Seq: seq, Patches: patches})
}

// sendError reports a handling error to the client.
func (c *conn) sendError(err error) {
	frame := ErrorFrame{Type: FrameTypeError, Message: err.Error()}
	if fe, ok := err.(*interrors.Error); ok {
		frame.Code = fe.Code
	}
	c.write(frame)
}

// write serializes one frame to the socket.
func (c *conn) write(frame any) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return
	}
	c.ws.SetWriteDeadline(time.Now().Add(c.server.config.WriteTimeout))
	if err := c.ws.WriteJSON(frame); err != nil {
		c.server.logger.Error("write error", "error", err)
	}
}

// close tears down the connection and its engines.
func (c *conn) close() {
	c.writeMu.Lock()
	c.closed = true
	c.writeMu.Unlock()

	for _, inst := range c.forms {
		inst.engine.Close()
	}
	c.ws.Close()
}
