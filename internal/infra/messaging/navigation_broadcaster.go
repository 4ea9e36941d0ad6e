// Package messaging pushes navigation commands to connected UI shells.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// ErrBroadcasterClosed is returned by Replace after Close.
var ErrBroadcasterClosed = errors.New("navigation broadcaster closed")

// ShellClient is one connected UI shell.
type ShellClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// NavigationBroadcaster fans replace commands out to every connected shell.
// It implements service.Navigator.
type NavigationBroadcaster struct {
	clients    map[*ShellClient]bool
	register   chan *ShellClient
	unregister chan *ShellClient
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	logger     *slog.Logger
}

// BroadcasterParams defines the dependencies of the broadcaster.
type BroadcasterParams struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// NewNavigationBroadcaster creates the broadcaster and runs its loop for the
// lifetime of the application.
func NewNavigationBroadcaster(params BroadcasterParams) *NavigationBroadcaster {
	b := newNavigationBroadcaster(params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go b.Run()

			return nil
		},
		OnStop: func(context.Context) error {
			return b.Close()
		},
	})

	return b
}

func newNavigationBroadcaster(logger *slog.Logger) *NavigationBroadcaster {
	return &NavigationBroadcaster{
		clients:    make(map[*ShellClient]bool),
		register:   make(chan *ShellClient),
		unregister: make(chan *ShellClient),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the broadcaster's main loop. It returns after Close.
func (b *NavigationBroadcaster) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.Debug("Shell connected", "clients", b.ClientCount())

		case client := <-b.unregister:
			b.mu.Lock()
			if b.clients[client] {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Debug("Shell disconnected", "clients", b.ClientCount())

		case <-b.done:
			b.mu.Lock()
			for client := range b.clients {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()

			return
		}
	}
}

// Replace sends event to every connected shell. Shells with a full send
// buffer miss the event; with no shell connected the event is dropped.
func (b *NavigationBroadcaster) Replace(_ context.Context, event *service.NavigationEvent) error {
	select {
	case <-b.done:
		return ErrBroadcasterClosed
	default:
	}

	message, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal navigation event")
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.clients) == 0 {
		b.logger.Debug("No shell connected, dropping navigation", "path", event.Path)

		return nil
	}

	for client := range b.clients {
		select {
		case client.Send <- message:
		default:
			b.logger.Warn("Shell send buffer full, dropping navigation", "path", event.Path)
		}
	}

	return nil
}

// Close stops the loop and closes every client's send channel.
func (b *NavigationBroadcaster) Close() error {
	b.closeOnce.Do(func() { close(b.done) })

	return nil
}

// ClientCount returns the number of connected shells.
func (b *NavigationBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.clients)
}

// Attach serves conn until the shell disconnects or the broadcaster closes.
func (b *NavigationBroadcaster) Attach(conn *websocket.Conn) {
	client := &ShellClient{Conn: conn, Send: make(chan []byte, sendBufferSize)}

	select {
	case b.register <- client:
	case <-b.done:
		_ = conn.Close()

		return
	}

	go b.writePump(client)
	b.readPump(client)
}

// readPump only watches for the shell going away; shells do not send commands.
func (b *NavigationBroadcaster) readPump(client *ShellClient) {
	defer func() {
		select {
		case b.unregister <- client:
		case <-b.done:
		}
		_ = client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	_ = client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.logger.Warn("Shell connection lost", "error", err)
			}

			return
		}
	}
}

func (b *NavigationBroadcaster) writePump(client *ShellClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
