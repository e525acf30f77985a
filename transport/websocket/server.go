package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const (
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	Play(ctx context.Context, symbol string, position int) (*entity.PlayResult, error)
	Draw(ctx context.Context) entity.Board
	Reset(ctx context.Context) (*entity.ResetResult, error)
	Moves(ctx context.Context) ([]entity.Move, error)
	Status(ctx context.Context) entity.Outcome
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, msg *Message) error

type Server struct {
	logger *slog.Logger
	game   gameUseCase

	handlers map[string]handlerFunc

	// broadcastMutex keeps broadcasts in the order the game accepted the changes.
	broadcastMutex sync.Mutex

	connectionsMutex sync.RWMutex
	connections      map[*websocket.Conn]struct{}
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,

		handlers:    make(map[string]handlerFunc),
		connections: make(map[*websocket.Conn]struct{}),
	}

	server.handlers[ActionPlay] = server.handlePlay
	server.handlers[ActionDraw] = server.handleDraw
	server.handlers[ActionReset] = server.handleReset
	server.handlers[ActionMoves] = server.handleMoves
	server.handlers[ActionStatus] = server.handleStatus

	return server
}

// Routes - builds the handler serving /ws.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) upgradeToWebSocket(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	defer conn.Close(websocket.StatusGoingAway, "server closing websocket")

	that.connectionsMutex.Lock()
	that.connections[conn] = struct{}{}
	that.connectionsMutex.Unlock()

	defer func() {
		that.connectionsMutex.Lock()
		delete(that.connections, conn)
		that.connectionsMutex.Unlock()
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}

			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)

			if err = that.sendError(ctx, conn, "", "invalid message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)

			if err = that.sendError(ctx, conn, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = wsjson.Write(ctx, conn, Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(ctx context.Context, conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(ctx, conn, action, ResponsePayload{Error: reason})
}

// broadcast - sends the payload to every open connection.
func (that *Server) broadcast(ctx context.Context, action string, payload ResponsePayload) {
	that.connectionsMutex.RLock()
	conns := make([]*websocket.Conn, 0, len(that.connections))
	for conn := range that.connections {
		conns = append(conns, conn)
	}
	that.connectionsMutex.RUnlock()

	for _, conn := range conns {
		if err := that.sendMessage(ctx, conn, action, payload); err != nil {
			that.logger.Error("failed to send game update", "method", "broadcast", "error", err)
		}
	}
}
