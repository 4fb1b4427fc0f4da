package renderer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/workspace"
)

// TerminalRenderer renders terminal panes by connecting to a terminal
// multiplexing service over websocket.
type TerminalRenderer struct {
	logger zerolog.Logger
}

// NewTerminalRenderer creates a terminal renderer.
func NewTerminalRenderer(logger zerolog.Logger) *TerminalRenderer {
	return &TerminalRenderer{logger: logger.With().Str("renderer", "terminal").Logger()}
}

// Render resolves the multiplexer address for the pane. A scenario without a
// terminal base URL yields a placeholder, not an error.
func (r *TerminalRenderer) Render(pane entity.PaneSpec, scenario *entity.Scenario) Content {
	if scenario.TerminalBaseURL == "" {
		r.logger.Warn().Int("pane", pane.Index).Msg("no terminal base URL configured")
		return NewPlaceholder(pane, "no terminal connection URL")
	}
	return &TerminalContent{
		pane:   pane,
		addr:   TerminalAddress(scenario.TerminalBaseURL, pane),
		logger: r.logger,
	}
}

// TerminalAddress builds the multiplexer endpoint for a pane: the base URL
// plus one path-escaped target segment. A pane with a command attaches to
// "cmd:<command>"; otherwise its named session; otherwise a plain shell.
func TerminalAddress(baseURL string, pane entity.PaneSpec) string {
	target := "shell"
	switch {
	case pane.ContentRef != "":
		target = "cmd:" + pane.ContentRef
	case pane.SessionID != "":
		target = pane.SessionID
	}
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(target)
}

// TerminalContent is a live terminal connection bound to one panel.
type TerminalContent struct {
	failable
	pane   entity.PaneSpec
	addr   string
	logger zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *TerminalContent) Kind() string  { return string(entity.PaneTerminal) }
func (c *TerminalContent) Title() string { return c.pane.Title }

// Address returns the resolved multiplexer endpoint.
func (c *TerminalContent) Address() string { return c.addr }

// Connect dials the multiplexing service. The slot size is advisory for
// terminals; the multiplexer handles its own reflow.
func (c *TerminalContent) Connect(ctx context.Context, _ workspace.Rect) error {
	origin, err := originFor(c.addr)
	if err != nil {
		c.setErr(err)
		return err
	}

	cfg, err := websocket.NewConfig(c.addr, origin)
	if err != nil {
		c.setErr(err)
		return err
	}

	type dialResult struct {
		conn *websocket.Conn
		err  error
	}
	done := make(chan dialResult, 1)
	go func() {
		conn, dialErr := websocket.DialConfig(cfg)
		done <- dialResult{conn: conn, err: dialErr}
	}()

	select {
	case <-ctx.Done():
		c.setErr(ctx.Err())
		return ctx.Err()
	case res := <-done:
		if res.err != nil {
			c.logger.Warn().Err(res.err).Str("addr", c.addr).Msg("terminal dial failed")
			c.setErr(res.err)
			return res.err
		}
		c.mu.Lock()
		c.conn = res.conn
		c.mu.Unlock()
		return nil
	}
}

// Close tears down the connection if one was established.
func (c *TerminalContent) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// originFor derives the HTTP origin the websocket handshake reports from the
// ws/wss endpoint itself.
func originFor(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("parse terminal address: %w", err)
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}
	u.Path = "/"
	u.RawQuery = ""
	return u.String(), nil
}
